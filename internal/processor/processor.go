package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/batch"
	"codeberg.org/snonux/glossyflash/internal/cli"
	"codeberg.org/snonux/glossyflash/internal/deck"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

// ErrNoGlosses is returned in headless mode when neither arguments nor a
// batch file yield any gloss
var ErrNoGlosses = errors.New("no glosses given")

// TransportFactory builds a transport whose logs go to logger
type TransportFactory func(logger *zap.Logger) (translation.Transport, error)

// Processor runs one glossyflash invocation
type Processor struct {
	flags        *cli.Flags
	logger       *zap.Logger
	newTransport TransportFactory
	translator   *translation.Translator
	out          io.Writer
}

// NewProcessor creates a processor for the provider configured by flags,
// the environment and the config file
func NewProcessor(flags *cli.Flags, logger *zap.Logger) (*Processor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := cli.TranslationConfig(flags)
	factory := func(logger *zap.Logger) (translation.Transport, error) {
		return translation.NewTransport(cfg, logger)
	}

	transport, err := factory(logger)
	if err != nil {
		return nil, err
	}
	p := newProcessor(flags, transport, logger, os.Stdout)
	p.newTransport = factory
	return p, nil
}

func newProcessor(flags *cli.Flags, transport translation.Transport, logger *zap.Logger, out io.Writer) *Processor {
	fixed := func(*zap.Logger) (translation.Transport, error) {
		return transport, nil
	}
	return &Processor{
		flags:        flags,
		logger:       logger,
		newTransport: fixed,
		translator:   translation.NewTranslator(transport, logger),
		out:          out,
	}
}

// translatorFor builds a translator whose transport, breaker included, logs
// to logger
func (p *Processor) translatorFor(logger *zap.Logger) (*translation.Translator, error) {
	transport, err := p.newTransport(logger)
	if err != nil {
		return nil, err
	}
	return translation.NewTranslator(transport, logger), nil
}

// CollectGlosses gathers the headless input: the batch file first, then the
// positional arguments, one gloss per line
func (p *Processor) CollectGlosses(args []string) (string, error) {
	var glosses []string

	if p.flags.BatchFile != "" {
		fromFile, err := batch.ReadGlossesFile(p.flags.BatchFile)
		if err != nil {
			return "", err
		}
		glosses = append(glosses, fromFile...)
	}

	for _, arg := range args {
		if arg = strings.TrimSpace(arg); arg != "" {
			glosses = append(glosses, arg)
		}
	}

	if len(glosses) == 0 {
		return "", ErrNoGlosses
	}
	return batch.Join(glosses), nil
}

// ProcessGlosses generates a deck from glosses, prints it and exports it if
// requested. Transport failures and invalid input are returned as errors;
// a malformed response or an empty deck only reports that no cards were
// generated.
func (p *Processor) ProcessGlosses(ctx context.Context, glosses string) error {
	lang := cli.TargetLanguage(p.flags)

	fmt.Fprintf(p.out, "Generating %s flashcards with %s...\n", lang, p.translator.Provider())
	result := p.translator.Translate(ctx, glosses, lang)

	switch result.Outcome {
	case translation.OutcomeSuccess:
	case translation.OutcomeMalformedResponse:
		p.logger.Warn("Discarding malformed response",
			zap.String("language", lang),
			zap.Error(result.Err),
		)
		fmt.Fprintln(p.out, "No cards were generated")
		return nil
	case translation.OutcomeInvalidInput:
		return result.Err
	default:
		p.logger.Error("Failed to generate deck",
			zap.String("language", lang),
			zap.Error(result.Err),
		)
		return fmt.Errorf("failed to generate deck: %w", result.Err)
	}

	if result.Cards.Empty() {
		fmt.Fprintln(p.out, "No cards were generated")
		return nil
	}

	if p.flags.JSON {
		if err := p.printJSON(result.Cards); err != nil {
			return err
		}
	} else {
		p.printDeck(result.Cards)
	}

	return p.export(result.Cards)
}

func (p *Processor) printDeck(cards deck.Deck) {
	fmt.Fprintln(p.out)
	for i, card := range cards {
		line := fmt.Sprintf("%d/%d  %s → %s", i+1, cards.Len(), card.Term, card.Definition)
		if card.HasContext() {
			line += fmt.Sprintf("  (%q)", card.Context)
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *Processor) printJSON(cards deck.Deck) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(struct {
		Flashcards deck.Deck `json:"flashcards"`
	}{cards}); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	return nil
}
