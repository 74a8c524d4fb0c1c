package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal"
	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/session"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

// Page names
const (
	pageInput   = "input"
	pageLoading = "loading"
	pageStudy   = "study"
	pageNoCards = "nocards"
	pageAlert   = "alert"
	pageHelp    = "help"
)

// Generator produces a deck for the given glosses
type Generator interface {
	Translate(ctx context.Context, glosses, targetLanguage string) translation.Result
}

// Config holds terminal UI configuration
type Config struct {
	Language   string
	Translator Generator
	Logger     *zap.Logger
}

// App is the terminal study application
type App struct {
	app   *tview.Application
	pages *tview.Pages

	// Input page
	form           *tview.Form
	languageSelect *tview.DropDown
	glossArea      *tview.TextArea
	generateButton *tview.Button

	// Study page
	cardText     *tview.TextView
	positionText *tview.TextView
	statusText   *tview.TextView

	session    *session.Session
	generator  Generator
	flipped    bool
	alertShown bool
	rendering  bool
	logger     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	// async runs generation off the event loop; post brings results back
	async func(func())
	post  func(func())
}

// New creates the terminal application
func New(config *Config) *App {
	if config == nil {
		config = &Config{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := config.Language
	if lang == "" {
		lang = language.Default
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &App{
		app:       tview.NewApplication(),
		generator: config.Translator,
		logger:    logger.Named("tui"),
		ctx:       ctx,
		cancel:    cancel,
		async:     func(f func()) { go f() },
	}
	t.post = func(f func()) { t.app.QueueUpdateDraw(f) }
	t.session = session.New(t.logger, session.WithLanguage(lang))

	t.setupUI()
	t.render()
	return t
}

// Run blocks until the user quits
func (t *App) Run() error {
	defer t.cancel()
	t.logger.Info("Starting terminal UI", zap.String("version", internal.Version))
	return t.app.SetRoot(t.pages, true).EnableMouse(true).Run()
}

// Model returns the current session state
func (t *App) Model() session.Model {
	return t.session.Model()
}

func (t *App) setupUI() {
	t.pages = tview.NewPages()
	t.pages.AddPage(pageInput, t.buildInputPage(), true, true)
	t.pages.AddPage(pageLoading, t.buildLoadingPage(), true, false)
	t.pages.AddPage(pageStudy, t.buildStudyPage(), true, false)
	t.pages.AddPage(pageNoCards, t.buildNoCardsPage(), true, false)

	t.app.SetInputCapture(t.handleKey)
}

// dispatch feeds msg into the session, re-renders and runs the resulting
// command. It must be called on the event loop.
func (t *App) dispatch(msg session.Msg) {
	switch msg.(type) {
	case session.NextCard, session.PreviousCard, session.ShuffleDeck, session.GenerationFinished:
		t.flipped = false
	}

	cmd := t.session.Dispatch(msg)
	t.render()

	if cmd != nil {
		t.generate(cmd)
	}
}

func (t *App) generate(cmd *session.GenerateCmd) {
	t.async(func() {
		result := t.generator.Translate(t.ctx, cmd.Glosses, cmd.Language)
		if t.ctx.Err() != nil {
			return
		}
		t.post(func() {
			t.dispatch(session.GenerationFinished{Result: result})
		})
	})
}

func (t *App) onGenerate() {
	if !t.session.Model().CanGenerate() {
		return
	}
	t.dispatch(session.GenerateRequested{})
}

func (t *App) onFlip() {
	if _, ok := t.session.Model().Current(); ok {
		t.flipped = !t.flipped
		t.render()
	}
}

// showAlert overlays the pending session alert once
func (t *App) showAlert(message string) {
	if t.alertShown {
		return
	}
	t.alertShown = true

	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			t.pages.RemovePage(pageAlert)
			t.app.SetFocus(t.pages)
			t.alertShown = false
			t.dispatch(session.AlertDismissed{})
		})
	t.pages.AddPage(pageAlert, modal, true, true)
	t.app.SetFocus(modal)
}

func (t *App) toggleHelp() {
	if t.pages.HasPage(pageHelp) {
		t.pages.RemovePage(pageHelp)
		t.app.SetFocus(t.pages)
		t.render()
		return
	}

	modal := tview.NewModal().
		SetText(helpText).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(int, string) {
			t.toggleHelp()
		})
	t.pages.AddPage(pageHelp, modal, true, true)
	t.app.SetFocus(modal)
}

func (t *App) quit() {
	t.cancel()
	t.app.Stop()
}

// handleKey is the application wide key capture
func (t *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// Modals own the keyboard while shown
	if t.pages.HasPage(pageAlert) || t.pages.HasPage(pageHelp) {
		return event
	}

	m := t.session.Model()
	switch {
	case event.Key() == tcell.KeyF1:
		t.toggleHelp()
		return nil
	case m.Screen == session.ScreenInput:
		return t.handleInputKey(event)
	case m.Screen == session.ScreenStudy:
		return t.handleStudyKey(event, m)
	}
	return event
}

func (t *App) handleInputKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlG:
		t.onGenerate()
		return nil
	case tcell.KeyEscape:
		t.quit()
		return nil
	}
	return event
}

func (t *App) handleStudyKey(event *tcell.EventKey, m session.Model) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		t.dispatch(session.PreviousCard{})
		return nil
	case tcell.KeyRight:
		t.dispatch(session.NextCard{})
		return nil
	case tcell.KeyEscape:
		t.quit()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case ' ', 'f':
		t.onFlip()
	case 's':
		if !m.NoCards() {
			t.dispatch(session.ShuffleDeck{})
			t.setStatus("Deck shuffled")
		}
	case 'n':
		t.dispatch(session.NewDeck{})
	case 'h', '?':
		t.toggleHelp()
	case 'q':
		t.quit()
	default:
		return event
	}
	return nil
}

func (t *App) setStatus(message string) {
	t.statusText.SetText(tview.Escape(message))
}

const helpText = `Input
Ctrl+G  generate flashcards
Tab     next field
Esc     quit

Study
←/→     previous / next card
Space   flip card
s       shuffle deck
n       new deck
q       quit

F1 or h shows this help`

// versionTitle is shown in the input form border
func versionTitle() string {
	return fmt.Sprintf(" Glossy Flash v%s ", internal.Version)
}
