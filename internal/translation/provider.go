package translation

import (
	"fmt"

	"go.uber.org/zap"
)

// Supported provider names
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config selects and configures the generation service
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint; empty means the public API
	BaseURL string
	Breaker BreakerSettings
}

// DefaultConfig returns the Gemini configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
		Breaker:  DefaultBreakerSettings(),
	}
}

// NewTransport builds the configured provider transport wrapped in a circuit
// breaker
func NewTransport(cfg *Config, logger *zap.Logger) (Transport, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var base Transport
	switch cfg.Provider {
	case ProviderGemini, "":
		base = NewGeminiTransport(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case ProviderOpenAI:
		base = NewOpenAITransport(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: %s, %s)", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}

	return NewBreakerTransport(base, cfg.Breaker, logger), nil
}
