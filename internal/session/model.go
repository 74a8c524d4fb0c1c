package session

import (
	"strings"

	"codeberg.org/snonux/glossyflash/internal/deck"
)

// Screen is the active view; exactly one is active at a time
type Screen int

const (
	ScreenInput Screen = iota
	ScreenLoading
	ScreenStudy
)

func (s Screen) String() string {
	switch s {
	case ScreenInput:
		return "input"
	case ScreenLoading:
		return "loading"
	case ScreenStudy:
		return "study"
	default:
		return "unknown"
	}
}

// GenericFailureAlert is shown when the generation service could not be reached
const GenericFailureAlert = "Something went wrong generating cards. Please try again."

// Model is the complete presentation state
type Model struct {
	Screen   Screen
	Input    string
	Language string
	Deck     deck.Deck
	Cursor   int
	// Alert is a pending blocking message for the user; empty when none
	Alert string
}

// CanGenerate reports whether the generate action is enabled
func (m Model) CanGenerate() bool {
	return m.Screen == ScreenInput && strings.TrimSpace(m.Input) != ""
}

// NoCards reports whether the study view has nothing to show and must offer
// "try again"
func (m Model) NoCards() bool {
	return m.Screen == ScreenStudy && m.Deck.Empty()
}

// Current returns the card under the cursor. ok is false outside the study
// view or when the deck is empty.
func (m Model) Current() (deck.Flashcard, bool) {
	if m.Screen != ScreenStudy {
		return deck.Flashcard{}, false
	}
	return m.Deck.At(m.Cursor)
}

// CanPrevious reports whether a previous card exists
func (m Model) CanPrevious() bool {
	return m.Screen == ScreenStudy && m.Cursor > 0
}

// CanNext reports whether a next card exists
func (m Model) CanNext() bool {
	return m.Screen == ScreenStudy && m.Cursor < m.Deck.Len()-1
}

// Position returns the 1-based position of the current card and the deck size
func (m Model) Position() (current, total int) {
	if m.Deck.Empty() {
		return 0, 0
	}
	return m.Cursor + 1, m.Deck.Len()
}

// Progress returns the fraction of the deck reached so far, in [0, 1]
func (m Model) Progress() float64 {
	current, total := m.Position()
	if total == 0 {
		return 0
	}
	return float64(current) / float64(total)
}
