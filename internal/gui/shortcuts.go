package gui

import (
	"fyne.io/fyne/v2"

	"codeberg.org/snonux/glossyflash/internal/session"
)

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		// Handle Escape key to unfocus any field
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}

		// Keys typed into the gloss entry are text, not shortcuts
		if a.window.Canvas().Focused() == a.glossEntry {
			return
		}

		a.handleShortcutKey(ev.Name)
	})
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	m := a.session.Model()
	studying := m.Screen == session.ScreenStudy

	switch key {
	case fyne.KeyLeft: // Previous card
		if studying {
			a.onPrevious()
		}

	case fyne.KeyRight: // Next card
		if studying {
			a.onNext()
		}

	case fyne.KeySpace: // Flip
		if studying {
			a.onFlip()
		}

	case fyne.KeyS: // Shuffle
		if studying {
			a.onShuffle()
		}

	case fyne.KeyN: // New deck, also "try again" without cards
		if studying {
			a.onNewDeck()
		}

	case fyne.KeyG: // Generate
		a.onGenerate()

	case fyne.KeyX: // Export
		if !a.exportButton.Disabled() {
			a.onExport()
		}

	case fyne.KeyL: // Log messages
		a.onToggleLogs()

	case fyne.KeyH: // Show hotkeys
		a.onShowHotkeys()

	case fyne.KeyQ: // Quit application
		a.window.Close()
	}
}
