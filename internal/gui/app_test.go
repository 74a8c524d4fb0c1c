package gui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/session"
	"codeberg.org/snonux/glossyflash/internal/testutil"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

type stubGenerator struct {
	result translation.Result
	calls  []string
}

func (g *stubGenerator) Translate(_ context.Context, glosses, targetLanguage string) translation.Result {
	g.calls = append(g.calls, targetLanguage+": "+glosses)
	return g.result
}

// newTestApplication builds an application whose background work is queued
// until the test runs it
func newTestApplication(t *testing.T, gen *stubGenerator) (*Application, func()) {
	t.Helper()
	return newTestApplicationWith(t, &Config{Language: "French", Generator: gen})
}

func newTestApplicationWith(t *testing.T, config *Config) (*Application, func()) {
	t.Helper()
	fyneApp := test.NewTempApp(t)

	a, err := newApplication(fyneApp, config)
	require.NoError(t, err)
	t.Cleanup(a.cancel)

	var pending []func()
	a.async = func(f func()) { pending = append(pending, f) }
	a.post = func(f func()) { f() }
	a.logViewer.post = func(f func()) { f() }

	runPending := func() {
		jobs := pending
		pending = nil
		for _, f := range jobs {
			f()
		}
	}
	return a, runPending
}

func TestApplication_StartsOnInput(t *testing.T) {
	a, _ := newTestApplication(t, &stubGenerator{})

	m := a.Model()
	assert.Equal(t, session.ScreenInput, m.Screen)
	assert.Equal(t, "French", a.languageSelect.Selected)
	assert.True(t, a.inputView.Visible())
	assert.False(t, a.studyView.Visible())
	assert.True(t, a.generateButton.Disabled())
	assert.True(t, a.exportButton.Disabled())
}

func TestApplication_GenerateAndStudy(t *testing.T) {
	gen := &stubGenerator{result: translation.Success(new(testutil.TestDataGenerator).Deck(2))}
	a, runPending := newTestApplication(t, gen)

	a.glossEntry.SetText("Chat, Chien")
	assert.Equal(t, "Chat, Chien", a.Model().Input)
	assert.False(t, a.generateButton.Disabled())

	a.onGenerate()
	assert.Equal(t, session.ScreenLoading, a.Model().Screen)
	assert.True(t, a.loadingView.Visible())
	assert.True(t, a.glossEntry.Disabled())

	runPending()
	require.Equal(t, []string{"French: Chat, Chien"}, gen.calls)

	m := a.Model()
	assert.Equal(t, session.ScreenStudy, m.Screen)
	assert.True(t, a.studyView.Visible())
	assert.Equal(t, "term 1", a.cardView.Card().Term)
	assert.Equal(t, "Card 1 / 2", a.positionLabel.Text)
	assert.True(t, a.prevButton.Disabled())
	assert.False(t, a.nextButton.Disabled())
	assert.False(t, a.exportButton.Disabled())

	a.onFlip()
	assert.True(t, a.cardView.Flipped())

	a.handleShortcutKey(fyne.KeyRight)
	assert.Equal(t, "Card 2 / 2", a.positionLabel.Text)
	assert.False(t, a.cardView.Flipped())
	assert.True(t, a.nextButton.Disabled())

	a.handleShortcutKey(fyne.KeyLeft)
	assert.Equal(t, "Card 1 / 2", a.positionLabel.Text)

	a.handleShortcutKey(fyne.KeyN)
	m = a.Model()
	assert.Equal(t, session.ScreenInput, m.Screen)
	assert.Empty(t, a.glossEntry.Text)
	assert.Equal(t, "French", m.Language)
}

func TestApplication_FailureReturnsToInput(t *testing.T) {
	gen := &stubGenerator{result: translation.TransportFailure(errors.New("boom"))}
	a, runPending := newTestApplication(t, gen)

	a.glossEntry.SetText("Chat")
	a.onGenerate()
	runPending()

	m := a.Model()
	assert.Equal(t, session.ScreenInput, m.Screen)
	assert.Equal(t, "Chat", a.glossEntry.Text)
	assert.Equal(t, session.GenericFailureAlert, m.Alert)
	assert.True(t, a.alertShown)
	assert.False(t, a.glossEntry.Disabled())
}

func TestApplication_MalformedShowsNoCards(t *testing.T) {
	gen := &stubGenerator{result: translation.MalformedResponse(errors.New("not json"))}
	a, runPending := newTestApplication(t, gen)

	a.glossEntry.SetText("Chat")
	a.onGenerate()
	runPending()

	assert.True(t, a.Model().NoCards())
	assert.True(t, a.noCardsView.Visible())
	assert.False(t, a.studyView.Visible())
	assert.True(t, a.exportButton.Disabled())

	a.handleShortcutKey(fyne.KeyN)
	assert.Equal(t, session.ScreenInput, a.Model().Screen)
}

func TestApplication_StudyKeysIgnoredOnInput(t *testing.T) {
	a, _ := newTestApplication(t, &stubGenerator{})

	a.handleShortcutKey(fyne.KeyRight)
	a.handleShortcutKey(fyne.KeyS)
	a.handleShortcutKey(fyne.KeyN)
	assert.Equal(t, session.ScreenInput, a.Model().Screen)
}

func TestApplication_ToggleLogs(t *testing.T) {
	a, _ := newTestApplication(t, &stubGenerator{})

	assert.False(t, a.logViewer.Visible())
	a.handleShortcutKey(fyne.KeyL)
	assert.True(t, a.logViewer.Visible())
	a.handleShortcutKey(fyne.KeyL)
	assert.False(t, a.logViewer.Visible())
}

func TestGlossEntry_Shortcuts(t *testing.T) {
	test.NewTempApp(t)

	e := NewGlossEntry()
	var submitted, escaped int
	e.SetOnSubmit(func() { submitted++ })
	e.SetOnEscape(func() { escaped++ })

	e.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierControl})
	e.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyEnter, Modifier: fyne.KeyModifierControl})
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Equal(t, 2, submitted)
	assert.Equal(t, 1, escaped)
	assert.True(t, e.MultiLine)
}

func TestLogViewer_Write(t *testing.T) {
	test.NewTempApp(t)

	v := NewLogViewer()
	v.post = func(f func()) { f() }

	n, err := v.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)
	assert.Equal(t, len("first\nsecond\n"), n)
	assert.Equal(t, []string{"second", "first"}, v.Messages())
	assert.Equal(t, "second\nfirst", v.logEntry.Text)

	for i := 0; i < maxLogMessages+5; i++ {
		v.AddMessage("line")
	}
	assert.Len(t, v.Messages(), maxLogMessages)

	v.Clear()
	assert.Empty(t, v.Messages())
	assert.NoError(t, v.Sync())
}

func TestExportDeck(t *testing.T) {
	cards := new(testutil.TestDataGenerator).Deck(3)
	dir := t.TempDir()

	csvPath, err := exportDeck(cards, exportRequest{DeckName: "My Words", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My_Words.csv"), csvPath)
	testutil.AssertFileContains(t, csvPath, "term 3")

	apkgPath, err := exportDeck(cards, exportRequest{APKG: true, DeckName: "My Words", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My_Words.apkg"), apkgPath)
	testutil.AssertFileExists(t, apkgPath)
}

func TestApplication_TransportLogsReachLogViewer(t *testing.T) {
	var transportLogger *zap.Logger
	a, runPending := newTestApplicationWith(t, &Config{
		Language: "French",
		NewTransport: func(logger *zap.Logger) (translation.Transport, error) {
			transportLogger = logger
			failing := &testutil.StubTransport{Err: errors.New("service down")}
			return translation.NewBreakerTransport(failing, translation.BreakerSettings{MaxFailures: 1}, logger), nil
		},
	})
	require.Same(t, a.logger, transportLogger)

	a.glossEntry.SetText("Chat")
	a.onGenerate()
	runPending()

	assert.Equal(t, session.ScreenInput, a.Model().Screen)
	assert.True(t, containsMessage(a.logViewer.Messages(), "Circuit breaker state changed"))
}

func TestApplication_LogViewerWithoutLogger(t *testing.T) {
	a, _ := newTestApplication(t, &stubGenerator{})

	a.logger.Info("hello from the gui")
	assert.True(t, containsMessage(a.logViewer.Messages(), "hello from the gui"))
}

func TestApplication_RequiresTransport(t *testing.T) {
	_, err := newApplication(test.NewTempApp(t), &Config{})
	assert.Error(t, err)
}

func containsMessage(messages []string, want string) bool {
	for _, m := range messages {
		if strings.Contains(m, want) {
			return true
		}
	}
	return false
}
