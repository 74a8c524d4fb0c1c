package session

import "codeberg.org/snonux/glossyflash/internal/translation"

// Msg is a user action or adapter outcome fed into Session.Dispatch
type Msg interface {
	isMsg()
}

// InputChanged replaces the raw gloss text
type InputChanged struct {
	Text string
}

// LanguageSelected changes the target language
type LanguageSelected struct {
	Language string
}

// GenerateRequested asks for a deck to be generated from the current input
type GenerateRequested struct{}

// GenerationFinished delivers the adapter outcome for the request in flight
type GenerationFinished struct {
	Result translation.Result
}

// NextCard moves the cursor forward
type NextCard struct{}

// PreviousCard moves the cursor back
type PreviousCard struct{}

// ShuffleDeck randomly permutes the deck
type ShuffleDeck struct{}

// NewDeck discards input and deck and returns to the input view. It is also
// the "try again" action of the no-cards state.
type NewDeck struct{}

// AlertDismissed clears the pending alert
type AlertDismissed struct{}

func (InputChanged) isMsg()       {}
func (LanguageSelected) isMsg()   {}
func (GenerateRequested) isMsg()  {}
func (GenerationFinished) isMsg() {}
func (NextCard) isMsg()           {}
func (PreviousCard) isMsg()       {}
func (ShuffleDeck) isMsg()        {}
func (NewDeck) isMsg()            {}
func (AlertDismissed) isMsg()     {}

// GenerateCmd is the side effect a front end must run after GenerateRequested
type GenerateCmd struct {
	Glosses  string
	Language string
}
