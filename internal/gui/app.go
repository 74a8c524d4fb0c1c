package gui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal"
	"codeberg.org/snonux/glossyflash/internal/gui/cardview"
	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/logging"
	"codeberg.org/snonux/glossyflash/internal/session"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

// Generator produces a deck for the given glosses; *translation.Translator
// satisfies it
type Generator interface {
	Translate(ctx context.Context, glosses, targetLanguage string) translation.Result
}

// Config holds GUI application configuration
type Config struct {
	Language string
	DeckName string
	// NewTransport builds the transport with the application logger, so
	// its entries reach the log viewer
	NewTransport func(logger *zap.Logger) (translation.Transport, error)
	Logger       *zap.Logger

	// Generator overrides the translator built from Transport
	Generator Generator
}

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Input view
	glossEntry     *GlossEntry
	languageSelect *widget.Select
	generateButton *ttwidget.Button

	// Loading view
	loadingBar *widget.ProgressBarInfinite

	// Study view
	cardView       *cardview.CardView
	positionLabel  *widget.Label
	progressBar    *widget.ProgressBar
	prevButton     *ttwidget.Button
	nextButton     *ttwidget.Button
	shuffleButton  *ttwidget.Button
	flipButton     *ttwidget.Button
	newDeckButton  *ttwidget.Button
	tryAgainButton *ttwidget.Button

	// Toolbar
	exportButton *ttwidget.Button
	logsButton   *ttwidget.Button
	helpButton   *ttwidget.Button

	pages       *fyne.Container
	inputView   fyne.CanvasObject
	loadingView fyne.CanvasObject
	studyView   fyne.CanvasObject
	noCardsView fyne.CanvasObject
	logViewer   *LogViewer
	statusLabel *widget.Label

	// State management
	session    *session.Session
	generator  Generator
	alertShown bool
	rendering  bool

	config *Config
	logger *zap.Logger

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	// async runs generation off the UI goroutine; post brings results back
	async func(func())
	post  func(func())
}

// New creates a new GUI application
func New(config *Config) (*Application, error) {
	myApp := app.NewWithID("org.codeberg.snonux.glossyflash")
	myApp.SetIcon(theme.DocumentIcon())
	return newApplication(myApp, config)
}

func newApplication(fyneApp fyne.App, config *Config) (*Application, error) {
	if config == nil {
		config = &Config{}
	}
	if config.Language == "" {
		config.Language = language.Default
	}
	if config.DeckName == "" {
		config.DeckName = "Glossy Flash"
	}
	baseLogger := config.Logger
	if baseLogger == nil {
		// The log viewer still needs info entries without a console logger
		baseLogger = logging.New(logging.Options{Output: io.Discard})
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:    fyneApp,
		config: config,
		ctx:    ctx,
		cancel: cancel,
		async:  func(f func()) { go f() },
		post:   fyne.Do,
	}

	// Mirror every log entry in the log viewer
	a.logViewer = NewLogViewer()
	a.logger = logging.Tee(baseLogger, a.logViewer).Named("gui")

	a.generator = config.Generator
	if a.generator == nil {
		if config.NewTransport == nil {
			cancel()
			return nil, errors.New("gui: no transport configured")
		}
		transport, err := config.NewTransport(a.logger)
		if err != nil {
			cancel()
			return nil, err
		}
		a.generator = translation.NewTranslator(transport, a.logger)
	}
	a.session = session.New(a.logger, session.WithLanguage(config.Language))

	a.setupUI()
	a.render()
	return a, nil
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Glossy Flash v%s", internal.Version))
	a.window.Resize(fyne.NewSize(760, 620))

	a.inputView = a.buildInputView()
	a.loadingView = a.buildLoadingView()
	a.studyView = a.buildStudyView()
	a.noCardsView = a.buildNoCardsView()
	a.pages = container.NewStack(a.inputView, a.loadingView, a.studyView, a.noCardsView)

	// Create toolbar buttons (tooltips will be set after tooltip layer is created)
	a.exportButton = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExport)
	a.logsButton = ttwidget.NewButtonWithIcon("", theme.ListIcon(), a.onToggleLogs)
	a.helpButton = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	title := widget.NewLabelWithStyle("Glossy Flash", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	toolbar := container.NewBorder(nil, nil, title,
		container.NewHBox(a.exportButton, a.logsButton, widget.NewSeparator(), a.helpButton))

	a.statusLabel = widget.NewLabel("Ready")
	a.logViewer.Hide()

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		container.NewVBox(a.logViewer, widget.NewSeparator(), a.statusLabel),
		nil, nil,
		container.NewPadded(a.pages),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that tooltip layer is created, set all tooltips
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.cancel()
		_ = a.logger.Sync()
	})

	a.setupKeyboardShortcuts()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// Model returns the current session state
func (a *Application) Model() session.Model {
	return a.session.Model()
}

// dispatch feeds msg into the session, re-renders and runs the resulting
// command. It must be called on the UI goroutine.
func (a *Application) dispatch(msg session.Msg) {
	switch msg.(type) {
	case session.NextCard, session.PreviousCard, session.ShuffleDeck, session.GenerationFinished:
		a.cardView.Reset()
	}

	cmd := a.session.Dispatch(msg)
	a.render()

	if cmd != nil {
		a.generate(cmd)
	}
}

// generate runs one request in the background and feeds its result back
func (a *Application) generate(cmd *session.GenerateCmd) {
	a.updateStatus(fmt.Sprintf("Generating %s flashcards...", cmd.Language))
	a.async(func() {
		result := a.generator.Translate(a.ctx, cmd.Glosses, cmd.Language)
		if a.ctx.Err() != nil {
			// Window closed while the request was in flight
			return
		}
		a.post(func() {
			a.dispatch(session.GenerationFinished{Result: result})
		})
	})
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.generateButton.SetToolTip("Generate flashcards (Ctrl+Enter)")
	a.prevButton.SetToolTip("Previous card (←)")
	a.nextButton.SetToolTip("Next card (→)")
	a.flipButton.SetToolTip("Flip card (space)")
	a.shuffleButton.SetToolTip("Shuffle deck (s)")
	a.newDeckButton.SetToolTip("New deck (n)")
	a.tryAgainButton.SetToolTip("Back to input (n)")
	a.exportButton.SetToolTip("Export deck to Anki (x)")
	a.logsButton.SetToolTip("Show log messages (l)")
	a.helpButton.SetToolTip("Show hotkeys (h)")
}

func (a *Application) onToggleLogs() {
	if a.logViewer.Visible() {
		a.logViewer.Hide()
	} else {
		a.logViewer.Show()
	}
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

// showAlert displays the pending session alert once and dismisses it in the
// session when the dialog closes
func (a *Application) showAlert(message string) {
	if a.alertShown {
		return
	}
	a.alertShown = true

	d := dialog.NewError(errors.New(message), a.window)
	d.SetOnClosed(func() {
		a.alertShown = false
		a.dispatch(session.AlertDismissed{})
	})
	d.Show()
}
