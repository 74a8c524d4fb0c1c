package anki

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/glossyflash/internal/deck"
)

// ErrEmptyDeck is returned when asked to export a deck without cards
var ErrEmptyDeck = errors.New("deck has no cards to export")

// CSVOptions configures the CSV export
type CSVOptions struct {
	IncludeHeaders bool
	// IncludeIDs adds the card id as the first column
	IncludeIDs bool
}

// DefaultCSVOptions returns the options used by the CLI
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{IncludeHeaders: true}
}

// WriteCSVFile writes cards to path
func WriteCSVFile(cards deck.Deck, path string, opts CSVOptions) error {
	if cards.Empty() {
		return ErrEmptyDeck
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, cards, opts); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes cards as Term, Definition, Context rows
func WriteCSV(w io.Writer, cards deck.Deck, opts CSVOptions) error {
	writer := csv.NewWriter(w)

	if opts.IncludeHeaders {
		headers := []string{"Term", "Definition", "Context"}
		if opts.IncludeIDs {
			headers = append([]string{"ID"}, headers...)
		}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range cards {
		record := []string{card.Term, card.Definition, card.Context}
		if opts.IncludeIDs {
			record = append([]string{card.ID}, record...)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card %s: %w", card.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
