package session

import (
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/deck"
	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

// Session owns the Model. It is driven from a single UI goroutine and is not
// safe for concurrent use.
type Session struct {
	model  Model
	rng    *rand.Rand
	logger *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source used by shuffle
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithLanguage preselects the target language; unsupported names are ignored
func WithLanguage(lang string) Option {
	return func(s *Session) {
		if language.Supported(lang) {
			s.model.Language = lang
		}
	}
}

// New creates a session in the input state
func New(logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		model: Model{
			Screen:   ScreenInput,
			Language: language.Default,
		},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger.Named("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the current state
func (s *Session) Model() Model {
	return s.model
}

// Dispatch applies msg to the model. A non-nil GenerateCmd means a request
// must be issued; its Result comes back as GenerationFinished.
func (s *Session) Dispatch(msg Msg) *GenerateCmd {
	m := &s.model

	switch msg := msg.(type) {
	case InputChanged:
		if m.Screen == ScreenInput {
			m.Input = msg.Text
		}

	case LanguageSelected:
		if m.Screen != ScreenInput {
			return nil
		}
		if !language.Supported(msg.Language) {
			s.logger.Warn("Ignoring unsupported language", zap.String("language", msg.Language))
			return nil
		}
		m.Language = msg.Language

	case GenerateRequested:
		if !m.CanGenerate() {
			return nil
		}
		m.Screen = ScreenLoading
		m.Alert = ""
		return &GenerateCmd{Glosses: m.Input, Language: m.Language}

	case GenerationFinished:
		s.finishGeneration(msg.Result)

	case NextCard:
		if m.Screen == ScreenStudy && !m.Deck.Empty() {
			m.Cursor = deck.Next(m.Cursor, m.Deck.Len())
		}

	case PreviousCard:
		if m.Screen == ScreenStudy && !m.Deck.Empty() {
			m.Cursor = deck.Previous(m.Cursor, m.Deck.Len())
		}

	case ShuffleDeck:
		if m.Screen == ScreenStudy && !m.Deck.Empty() {
			m.Deck = m.Deck.Shuffled(s.rng)
			m.Cursor = 0
		}

	case NewDeck:
		if m.Screen == ScreenStudy {
			m.Screen = ScreenInput
			m.Input = ""
			m.Deck = nil
			m.Cursor = 0
		}

	case AlertDismissed:
		m.Alert = ""
	}

	return nil
}

func (s *Session) finishGeneration(result translation.Result) {
	m := &s.model
	if m.Screen != ScreenLoading {
		s.logger.Debug("Dropping generation result outside loading state",
			zap.Stringer("screen", m.Screen),
			zap.Stringer("outcome", result.Outcome),
		)
		return
	}

	log := s.logger.With(
		zap.String("language", m.Language),
		zap.Int("glosses", countGlosses(m.Input)),
		zap.Stringer("outcome", result.Outcome),
	)

	switch result.Outcome {
	case translation.OutcomeSuccess:
		log.Info("Deck generated", zap.Int("cards", result.Cards.Len()))
		m.Deck = result.Cards
		m.Cursor = 0
		m.Screen = ScreenStudy

	case translation.OutcomeMalformedResponse:
		log.Warn("Discarding malformed response", zap.Error(result.Err))
		m.Deck = nil
		m.Cursor = 0
		m.Screen = ScreenStudy

	case translation.OutcomeInvalidInput:
		log.Warn("Generation rejected", zap.Error(result.Err))
		m.Screen = ScreenInput
		m.Alert = result.Err.Error()

	default:
		log.Error("Failed to generate deck", zap.Error(result.Err))
		m.Screen = ScreenInput
		m.Alert = GenericFailureAlert
	}
}

// countGlosses estimates the number of glosses in free text separated by
// newlines or commas
func countGlosses(text string) int {
	count := 0
	for _, field := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ',' }) {
		if strings.TrimSpace(field) != "" {
			count++
		}
	}
	return count
}
