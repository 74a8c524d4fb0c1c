package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const hotkeysMarkdown = `## Input
**Ctrl+Enter** Generate flashcards  
**Esc** Leave the text field  
**g** Generate (outside the text field)  

## Study
**←** Previous card  
**→** Next card  
**Space** Flip card  
**s** Shuffle deck  
**n** New deck / try again  

## Other
**x** Export deck to Anki  
**l** Show or hide log messages  
**h** Show hotkeys  
**q** Quit application  `

func (a *Application) onShowHotkeys() {
	content := widget.NewRichTextFromMarkdown(hotkeysMarkdown)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(420, 420))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)
	d.Show()
}
