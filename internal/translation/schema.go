package translation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codeberg.org/snonux/glossyflash/internal"
	"codeberg.org/snonux/glossyflash/internal/deck"
)

// Field names of the structured-output schema shared by all providers
const (
	fieldFlashcards = "flashcards"
	fieldTerm       = "term"
	fieldDefinition = "definition"
	fieldContext    = "context"
)

// responseSchema is the JSON body the service is asked to produce
type responseSchema struct {
	Flashcards *[]cardSchema `json:"flashcards"`
}

// cardSchema is one element of the flashcards array. Pointers distinguish a
// missing field from an empty one.
type cardSchema struct {
	Term       *string `json:"term"`
	Definition *string `json:"definition"`
	Context    *string `json:"context,omitempty"`
}

// DecodeCards parses a response body into a deck. Any element missing a
// required field fails the whole batch. Identifiers are derived from
// generatedAt and the element position.
func DecodeCards(body string, generatedAt time.Time) (deck.Deck, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyResponse
	}

	var resp responseSchema
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Flashcards == nil {
		return nil, fmt.Errorf("response has no %q property", fieldFlashcards)
	}

	cards := make(deck.Deck, 0, len(*resp.Flashcards))
	for i, item := range *resp.Flashcards {
		term := trimmed(item.Term)
		definition := trimmed(item.Definition)
		if term == "" {
			return nil, fmt.Errorf("flashcard %d: missing %q", i, fieldTerm)
		}
		if definition == "" {
			return nil, fmt.Errorf("flashcard %d: missing %q", i, fieldDefinition)
		}

		cards = append(cards, deck.Flashcard{
			ID:         internal.GenerateCardID(generatedAt, i),
			Term:       term,
			Definition: definition,
			Context:    trimmed(item.Context),
		})
	}

	return cards, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
