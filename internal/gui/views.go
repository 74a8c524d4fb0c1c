package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/glossyflash/internal/gui/cardview"
	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/session"
)

func (a *Application) buildInputView() fyne.CanvasObject {
	a.languageSelect = widget.NewSelect(language.All(), func(lang string) {
		if a.rendering {
			return
		}
		a.dispatch(session.LanguageSelected{Language: lang})
	})

	a.glossEntry = NewGlossEntry()
	a.glossEntry.SetPlaceHolder("Words or phrases to learn, separated by commas or new lines.\ne.g. Chat, Chien, Oiseau")
	a.glossEntry.Wrapping = fyne.TextWrapWord
	a.glossEntry.SetMinRowsVisible(8)
	a.glossEntry.OnChanged = func(text string) {
		if a.rendering {
			return
		}
		a.dispatch(session.InputChanged{Text: text})
	}
	a.glossEntry.SetOnSubmit(a.onGenerate)
	a.glossEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	a.generateButton = ttwidget.NewButtonWithIcon("Generate flashcards", theme.ConfirmIcon(), a.onGenerate)
	a.generateButton.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Create a study deck", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Target language:"),
		a.languageSelect,
		widget.NewLabel("Glosses:"),
		a.glossEntry,
		a.generateButton,
	)
	return container.NewVScroll(form)
}

func (a *Application) buildLoadingView() fyne.CanvasObject {
	a.loadingBar = widget.NewProgressBarInfinite()
	a.loadingBar.Stop()

	return container.NewVBox(
		layout.NewSpacer(),
		widget.NewLabelWithStyle("Generating your flashcards...", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		a.loadingBar,
		layout.NewSpacer(),
	)
}

func (a *Application) buildStudyView() fyne.CanvasObject {
	a.cardView = cardview.New()

	a.positionLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	a.progressBar = widget.NewProgressBar()
	a.progressBar.TextFormatter = func() string { return "" }

	// Create navigation buttons (tooltips will be set after tooltip layer is created)
	a.prevButton = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.onPrevious)
	a.nextButton = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.onNext)
	a.flipButton = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onFlip)
	a.shuffleButton = ttwidget.NewButtonWithIcon("", theme.MediaReplayIcon(), a.onShuffle)
	a.newDeckButton = ttwidget.NewButtonWithIcon("New deck", theme.ContentAddIcon(), a.onNewDeck)

	header := container.NewVBox(a.positionLabel, a.progressBar)
	controls := container.NewHBox(
		layout.NewSpacer(),
		a.prevButton,
		a.flipButton,
		a.nextButton,
		widget.NewSeparator(),
		a.shuffleButton,
		a.newDeckButton,
		layout.NewSpacer(),
	)

	return container.NewBorder(header, controls, nil, nil, a.cardView)
}

func (a *Application) buildNoCardsView() fyne.CanvasObject {
	a.tryAgainButton = ttwidget.NewButtonWithIcon("Try again", theme.ContentUndoIcon(), a.onNewDeck)

	return container.NewVBox(
		layout.NewSpacer(),
		widget.NewLabelWithStyle("No cards were generated", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("The service returned nothing usable for this input.", fyne.TextAlignCenter, fyne.TextStyle{}),
		container.NewCenter(a.tryAgainButton),
		layout.NewSpacer(),
	)
}

// render brings every widget in line with the session model
func (a *Application) render() {
	a.rendering = true
	defer func() { a.rendering = false }()

	m := a.session.Model()

	visible := a.inputView
	switch {
	case m.Screen == session.ScreenLoading:
		visible = a.loadingView
	case m.NoCards():
		visible = a.noCardsView
	case m.Screen == session.ScreenStudy:
		visible = a.studyView
	}
	for _, page := range a.pages.Objects {
		if page == visible {
			page.Show()
		} else {
			page.Hide()
		}
	}

	if m.Screen == session.ScreenLoading {
		a.loadingBar.Start()
	} else {
		a.loadingBar.Stop()
	}

	a.renderInput(m)
	a.renderStudy(m)

	setEnabled(a.exportButton, m.Screen == session.ScreenStudy && !m.Deck.Empty())

	switch {
	case m.Screen == session.ScreenLoading:
	case m.NoCards():
		a.updateStatus("No cards were generated")
	case m.Screen == session.ScreenStudy:
		a.updateStatus(fmt.Sprintf("%d %s cards", m.Deck.Len(), m.Language))
	default:
		a.updateStatus("Ready")
	}

	if m.Alert != "" {
		a.showAlert(m.Alert)
	}
}

func (a *Application) renderInput(m session.Model) {
	if a.glossEntry.Text != m.Input {
		a.glossEntry.SetText(m.Input)
	}
	if a.languageSelect.Selected != m.Language {
		a.languageSelect.SetSelected(m.Language)
	}

	editable := m.Screen == session.ScreenInput
	setEnabled(a.glossEntry, editable)
	setEnabled(a.languageSelect, editable)
	setEnabled(a.generateButton, m.CanGenerate())
}

func (a *Application) renderStudy(m session.Model) {
	card, ok := m.Current()
	if !ok {
		return
	}
	a.cardView.SetCard(card)

	current, total := m.Position()
	a.positionLabel.SetText(fmt.Sprintf("Card %d / %d", current, total))
	a.progressBar.SetValue(m.Progress())

	setEnabled(a.prevButton, m.CanPrevious())
	setEnabled(a.nextButton, m.CanNext())
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
