package processor

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/cli"
	"codeberg.org/snonux/glossyflash/internal/gui"
	"codeberg.org/snonux/glossyflash/internal/logging"
	"codeberg.org/snonux/glossyflash/internal/tui"
)

// RunGUIMode launches the desktop application
func (p *Processor) RunGUIMode() error {
	app, err := gui.New(&gui.Config{
		Language:     cli.TargetLanguage(p.flags),
		DeckName:     cli.DeckName(p.flags),
		NewTransport: p.newTransport,
		Logger:       p.logger,
	})
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

// RunTerminalMode launches the terminal application. The terminal is owned
// by tview while it runs, so logs go to a file in the state directory.
func (p *Processor) RunTerminalMode() error {
	logger, closeLog, err := p.terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	translator, err := p.translatorFor(logger)
	if err != nil {
		return err
	}

	app := tui.New(&tui.Config{
		Language:   cli.TargetLanguage(p.flags),
		Translator: translator,
		Logger:     logger,
	})
	return app.Run()
}

func (p *Processor) terminalLogger() (*zap.Logger, func(), error) {
	dir := stateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, "tui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.Options{
		Debug:  p.flags.Debug,
		JSON:   p.flags.LogJSON,
		Output: f,
	})
	return logger, func() {
		_ = logger.Sync()
		f.Close()
	}, nil
}

// stateDir follows the XDG base directory layout
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "glossyflash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "glossyflash")
}
