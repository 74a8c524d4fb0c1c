package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/language"
)

// Transport sends one prompt to a generation service and returns the raw
// response text. Implementations must not retry.
type Transport interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Translator turns gloss text into flashcards via a Transport
type Translator struct {
	transport Transport
	logger    *zap.Logger
	now       func() time.Time
}

// NewTranslator creates a translator on top of the given transport
func NewTranslator(transport Transport, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		transport: transport,
		logger:    logger.Named("translation"),
		now:       time.Now,
	}
}

// Provider returns the name of the underlying transport
func (t *Translator) Provider() string {
	return t.transport.Name()
}

// Translate asks the service for one flashcard per gloss in targetLanguage.
// It issues exactly one request and never panics on bad service output: every
// failure is reported through the returned Result.
func (t *Translator) Translate(ctx context.Context, glosses, targetLanguage string) Result {
	if strings.TrimSpace(glosses) == "" {
		return InvalidInput(ErrBlankGlosses)
	}
	if !language.Supported(targetLanguage) {
		return InvalidInput(fmt.Errorf("%w: %q", ErrUnsupportedLanguage, targetLanguage))
	}

	log := t.logger.With(
		zap.String("provider", t.transport.Name()),
		zap.String("language", targetLanguage),
	)
	log.Debug("Requesting flashcards", zap.Int("input_bytes", len(glosses)))

	started := t.now()
	body, err := t.transport.Complete(ctx, BuildPrompt(glosses, targetLanguage))
	if err != nil {
		return TransportFailure(err)
	}

	cards, err := DecodeCards(body, t.now())
	if err != nil {
		return MalformedResponse(err)
	}

	log.Debug("Flashcards generated",
		zap.Int("cards", len(cards)),
		zap.Duration("elapsed", t.now().Sub(started)),
	)
	return Success(cards)
}
