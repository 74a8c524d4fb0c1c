package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/session"
)

const progressWidth = 30

func (t *App) buildInputPage() tview.Primitive {
	t.languageSelect = tview.NewDropDown().
		SetLabel("Target language ").
		SetOptions(language.All(), func(lang string, _ int) {
			if t.rendering || lang == "" {
				return
			}
			t.dispatch(session.LanguageSelected{Language: lang})
		})

	t.glossArea = tview.NewTextArea().
		SetLabel("Glosses ").
		SetPlaceholder("Words or phrases to learn, separated by commas or new lines")
	t.glossArea.SetChangedFunc(func() {
		if t.rendering {
			return
		}
		t.dispatch(session.InputChanged{Text: t.glossArea.GetText()})
	})

	t.form = tview.NewForm().
		AddFormItem(t.languageSelect).
		AddFormItem(t.glossArea).
		AddButton("Generate (Ctrl+G)", t.onGenerate)
	t.generateButton = t.form.GetButton(0)
	t.form.SetBorder(true).SetTitle(versionTitle())

	return t.form
}

func (t *App) buildLoadingPage() tview.Primitive {
	return tview.NewModal().SetText("Generating flashcards...")
}

func (t *App) buildStudyPage() tview.Primitive {
	t.cardText = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetWordWrap(true)
	t.cardText.SetBorder(true)

	t.positionText = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	t.statusText = tview.NewTextView().
		SetTextAlign(tview.AlignCenter)

	hints := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("←/→ navigate  space flip  s shuffle  n new deck  h help  q quit")

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.cardText, 0, 1, false).
		AddItem(t.positionText, 2, 0, false).
		AddItem(t.statusText, 1, 0, false).
		AddItem(hints, 1, 0, false)
}

func (t *App) buildNoCardsPage() tview.Primitive {
	return tview.NewModal().
		SetText("No cards were generated.\nThe service returned nothing usable for this input.").
		AddButtons([]string{"Try again"}).
		SetDoneFunc(func(int, string) {
			t.dispatch(session.NewDeck{})
		})
}

// render brings every primitive in line with the session model
func (t *App) render() {
	t.rendering = true
	defer func() { t.rendering = false }()

	m := t.session.Model()

	page := pageInput
	switch {
	case m.Screen == session.ScreenLoading:
		page = pageLoading
	case m.NoCards():
		page = pageNoCards
	case m.Screen == session.ScreenStudy:
		page = pageStudy
	}
	if name, _ := t.pages.GetFrontPage(); name != page && name != pageAlert && name != pageHelp {
		t.pages.SwitchToPage(page)
		t.app.SetFocus(t.pages)
	}

	t.renderInput(m)
	t.renderStudy(m)

	if m.Alert != "" {
		t.showAlert(m.Alert)
	}
}

func (t *App) renderInput(m session.Model) {
	if t.glossArea.GetText() != m.Input {
		t.glossArea.SetText(m.Input, true)
	}
	if _, current := t.languageSelect.GetCurrentOption(); current != m.Language {
		for i, lang := range language.All() {
			if lang == m.Language {
				t.languageSelect.SetCurrentOption(i)
			}
		}
	}
	t.generateButton.SetDisabled(!m.CanGenerate())
}

func (t *App) renderStudy(m session.Model) {
	card, ok := m.Current()
	if !ok {
		t.cardText.SetText("")
		t.positionText.SetText("")
		return
	}

	var b strings.Builder
	if t.flipped {
		b.WriteString("[green]DEFINITION[-]\n\n")
		fmt.Fprintf(&b, "[::b]%s[::-]\n", tview.Escape(card.Definition))
	} else {
		b.WriteString("[yellow]TERM[-]\n\n")
		fmt.Fprintf(&b, "[::b]%s[::-]\n", tview.Escape(card.Term))
	}
	if card.Context != "" {
		fmt.Fprintf(&b, "\n[gray]\"%s\"[-]\n", tview.Escape(card.Context))
	}
	b.WriteString("\n[darkgray](space to flip)[-]")
	t.cardText.SetText(b.String())

	current, total := m.Position()
	t.positionText.SetText(fmt.Sprintf("Card %d / %d\n%s", current, total, progressBar(m.Progress(), progressWidth)))
	t.setStatus(fmt.Sprintf("%d %s cards", total, m.Language))
}

// progressBar renders fraction in [0,1] as a bar of width cells
func progressBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[green]" + strings.Repeat("█", filled) + "[darkgray]" + strings.Repeat("░", width-filled) + "[-]"
}
