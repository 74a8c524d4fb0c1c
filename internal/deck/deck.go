package deck

import (
	"math/rand"
	"strings"
)

// Flashcard is one term paired with its target-language definition and an
// optional usage example. Cards are created by the translation adapter and
// never modified afterwards.
type Flashcard struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Context    string `json:"context,omitempty"`
}

// HasContext reports whether the card carries a usage example
func (c Flashcard) HasContext() bool {
	return strings.TrimSpace(c.Context) != ""
}

// Deck is the ordered collection of flashcards generated from one request
type Deck []Flashcard

// Len returns the number of cards
func (d Deck) Len() int {
	return len(d)
}

// Empty reports whether the deck has no cards
func (d Deck) Empty() bool {
	return len(d) == 0
}

// At returns the card at index i. ok is false when i is out of range.
func (d Deck) At(i int) (Flashcard, bool) {
	if i < 0 || i >= len(d) {
		return Flashcard{}, false
	}
	return d[i], true
}

// IDs returns the card identifiers in deck order
func (d Deck) IDs() []string {
	ids := make([]string, len(d))
	for i, card := range d {
		ids[i] = card.ID
	}
	return ids
}

// Shuffled returns a randomly permuted copy of the deck. The receiver is left
// untouched.
func (d Deck) Shuffled(rng *rand.Rand) Deck {
	shuffled := make(Deck, len(d))
	copy(shuffled, d)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
