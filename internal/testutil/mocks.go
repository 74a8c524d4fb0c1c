package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"codeberg.org/snonux/glossyflash/internal/deck"
)

// MockTransport mocks a generation service transport
type MockTransport struct {
	mock.Mock
}

// Complete mocks sending one prompt
func (m *MockTransport) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// Name returns the mock provider name
func (m *MockTransport) Name() string {
	return "mock"
}

// StubTransport answers every prompt with a fixed body or error and records
// the prompts it saw
type StubTransport struct {
	Body string
	Err  error

	mu      sync.Mutex
	Prompts []string
}

// Complete returns the configured body or error
func (s *StubTransport) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.Prompts = append(s.Prompts, prompt)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Body, nil
}

// Name returns the stub provider name
func (s *StubTransport) Name() string {
	return "stub"
}

// Calls returns the number of prompts received so far
func (s *StubTransport) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Prompts)
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// FrenchResponse returns the service body for the glosses "Chat, Chien"
func (g *TestDataGenerator) FrenchResponse() string {
	return `{"flashcards":[{"term":"Chat","definition":"Cat","context":"Le chat dort."},{"term":"Chien","definition":"Dog"}]}`
}

// Deck generates a deck of n cards with distinct ids
func (g *TestDataGenerator) Deck(n int) deck.Deck {
	cards := make(deck.Deck, n)
	for i := range cards {
		cards[i] = deck.Flashcard{
			ID:         fmt.Sprintf("card-1700000000000-%d", i),
			Term:       fmt.Sprintf("term %d", i+1),
			Definition: fmt.Sprintf("definition %d", i+1),
		}
	}
	return cards
}
