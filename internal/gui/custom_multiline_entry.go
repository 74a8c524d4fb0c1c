package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// GlossEntry is the multi-line gloss input. Ctrl+Enter submits, Escape
// leaves the field; plain Enter inserts a new line.
type GlossEntry struct {
	widget.Entry
	onSubmit func()
	onEscape func()
}

// NewGlossEntry creates a new gloss entry
func NewGlossEntry() *GlossEntry {
	entry := &GlossEntry{}
	entry.MultiLine = true
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *GlossEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut handles Ctrl+Enter and passes everything else to the entry
func (e *GlossEntry) TypedShortcut(s fyne.Shortcut) {
	if isSubmitShortcut(s) && e.onSubmit != nil {
		e.onSubmit()
		return
	}
	e.Entry.TypedShortcut(s)
}

// SetOnSubmit sets the callback for Ctrl+Enter
func (e *GlossEntry) SetOnSubmit(f func()) {
	e.onSubmit = f
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *GlossEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

func isSubmitShortcut(s fyne.Shortcut) bool {
	cs, ok := s.(*desktop.CustomShortcut)
	if !ok {
		return false
	}
	isEnter := cs.KeyName == fyne.KeyReturn || cs.KeyName == fyne.KeyEnter
	return isEnter && (cs.Modifier == fyne.KeyModifierControl || cs.Modifier == fyne.KeyModifierSuper)
}
