package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/glossyflash/internal/deck"
	"codeberg.org/snonux/glossyflash/internal/session"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

type stubGenerator struct {
	result translation.Result
	calls  int
}

func (g *stubGenerator) Translate(context.Context, string, string) translation.Result {
	g.calls++
	return g.result
}

func newTestApp(t *testing.T, gen *stubGenerator) (*App, func()) {
	t.Helper()
	a := New(&Config{Language: "Spanish", Translator: gen})
	t.Cleanup(a.cancel)

	var pending []func()
	a.async = func(f func()) { pending = append(pending, f) }
	a.post = func(f func()) { f() }

	return a, func() {
		jobs := pending
		pending = nil
		for _, f := range jobs {
			f()
		}
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func frontPage(a *App) string {
	name, _ := a.pages.GetFrontPage()
	return name
}

func studyDeck() deck.Deck {
	return deck.Deck{
		{ID: "card-1-0", Term: "Gato", Definition: "Cat", Context: "El gato duerme."},
		{ID: "card-1-1", Term: "Perro", Definition: "Dog"},
	}
}

func TestApp_InitialState(t *testing.T) {
	a, _ := newTestApp(t, &stubGenerator{})

	assert.Equal(t, pageInput, frontPage(a))
	_, lang := a.languageSelect.GetCurrentOption()
	assert.Equal(t, "Spanish", lang)
	assert.True(t, a.generateButton.IsDisabled())
}

func TestApp_GenerateAndStudy(t *testing.T) {
	gen := &stubGenerator{result: translation.Success(studyDeck())}
	a, runPending := newTestApp(t, gen)

	a.glossArea.SetText("Gato, Perro", true)
	assert.Equal(t, "Gato, Perro", a.Model().Input)
	assert.False(t, a.generateButton.IsDisabled())

	assert.Nil(t, a.handleKey(key(tcell.KeyCtrlG)))
	assert.Equal(t, session.ScreenLoading, a.Model().Screen)
	assert.Equal(t, pageLoading, frontPage(a))

	runPending()
	require.Equal(t, 1, gen.calls)
	assert.Equal(t, pageStudy, frontPage(a))

	text := a.cardText.GetText(true)
	assert.Contains(t, text, "TERM")
	assert.Contains(t, text, "Gato")
	assert.Contains(t, text, `"El gato duerme."`)
	assert.Contains(t, a.positionText.GetText(true), "Card 1 / 2")

	assert.Nil(t, a.handleKey(char(' ')))
	assert.Contains(t, a.cardText.GetText(true), "DEFINITION")
	assert.Contains(t, a.cardText.GetText(true), "Cat")

	assert.Nil(t, a.handleKey(key(tcell.KeyRight)))
	assert.Contains(t, a.cardText.GetText(true), "Perro")
	assert.Contains(t, a.cardText.GetText(true), "TERM")
	assert.Contains(t, a.positionText.GetText(true), "Card 2 / 2")

	assert.Nil(t, a.handleKey(key(tcell.KeyLeft)))
	assert.Contains(t, a.positionText.GetText(true), "Card 1 / 2")

	assert.Nil(t, a.handleKey(char('s')))
	assert.Equal(t, 0, a.Model().Cursor)
	assert.Equal(t, "Deck shuffled", a.statusText.GetText(true))

	assert.Nil(t, a.handleKey(char('n')))
	assert.Equal(t, session.ScreenInput, a.Model().Screen)
	assert.Equal(t, pageInput, frontPage(a))
	assert.Empty(t, a.glossArea.GetText())
}

func TestApp_FailureShowsAlert(t *testing.T) {
	gen := &stubGenerator{result: translation.TransportFailure(errors.New("boom"))}
	a, runPending := newTestApp(t, gen)

	a.glossArea.SetText("Gato", true)
	a.onGenerate()
	runPending()

	assert.Equal(t, session.ScreenInput, a.Model().Screen)
	assert.Equal(t, pageAlert, frontPage(a))
	assert.Equal(t, "Gato", a.glossArea.GetText())

	// Keys belong to the modal while it is shown
	ev := key(tcell.KeyCtrlG)
	assert.Same(t, ev, a.handleKey(ev))
}

func TestApp_MalformedShowsNoCards(t *testing.T) {
	gen := &stubGenerator{result: translation.MalformedResponse(errors.New("garbage"))}
	a, runPending := newTestApp(t, gen)

	a.glossArea.SetText("Gato", true)
	a.onGenerate()
	runPending()

	assert.True(t, a.Model().NoCards())
	assert.Equal(t, pageNoCards, frontPage(a))

	a.handleKey(char('n'))
	assert.Equal(t, pageInput, frontPage(a))
}

func TestApp_GenerateIgnoredWithoutInput(t *testing.T) {
	gen := &stubGenerator{}
	a, runPending := newTestApp(t, gen)

	a.handleKey(key(tcell.KeyCtrlG))
	runPending()

	assert.Equal(t, 0, gen.calls)
	assert.Equal(t, session.ScreenInput, a.Model().Screen)
}

func TestApp_RunesPassThroughOnInput(t *testing.T) {
	a, _ := newTestApp(t, &stubGenerator{})

	ev := char('n')
	assert.Same(t, ev, a.handleKey(ev))
	assert.Equal(t, session.ScreenInput, a.Model().Screen)
}

func TestApp_Help(t *testing.T) {
	a, _ := newTestApp(t, &stubGenerator{})

	a.handleKey(key(tcell.KeyF1))
	assert.Equal(t, pageHelp, frontPage(a))

	a.toggleHelp()
	assert.Equal(t, pageInput, frontPage(a))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[green][darkgray]░░░░[-]", progressBar(0, 4))
	assert.Equal(t, "[green]██[darkgray]░░[-]", progressBar(0.5, 4))
	assert.Equal(t, "[green]████[darkgray][-]", progressBar(1, 4))
}

