package processor

import (
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/anki"
	"codeberg.org/snonux/glossyflash/internal/cli"
	"codeberg.org/snonux/glossyflash/internal/deck"
)

// export writes cards to the files requested by --anki and --csv
func (p *Processor) export(cards deck.Deck) error {
	if p.flags.AnkiPath != "" {
		writer := anki.NewAPKGWriter(cli.DeckName(p.flags))
		if err := writer.Write(cards, p.flags.AnkiPath); err != nil {
			return fmt.Errorf("failed to generate APKG: %w", err)
		}
		p.logger.Info("Exported deck",
			zap.String("format", "apkg"),
			zap.String("path", p.flags.AnkiPath),
			zap.Int("cards", cards.Len()),
		)
		fmt.Fprintf(p.out, "Anki package created: %s\n", p.flags.AnkiPath)
	}

	if p.flags.CSVPath != "" {
		if err := anki.WriteCSVFile(cards, p.flags.CSVPath, anki.DefaultCSVOptions()); err != nil {
			return fmt.Errorf("failed to generate CSV: %w", err)
		}
		p.logger.Info("Exported deck",
			zap.String("format", "csv"),
			zap.String("path", p.flags.CSVPath),
			zap.Int("cards", cards.Len()),
		)
		fmt.Fprintf(p.out, "CSV file created: %s\n", p.flags.CSVPath)
	}

	return nil
}
