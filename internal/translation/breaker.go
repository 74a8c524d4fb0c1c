package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerSettings configures the circuit breaker in front of a transport
type BreakerSettings struct {
	// MaxFailures is the number of consecutive failures that opens the breaker
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before letting one request through
	OpenTimeout time.Duration
}

// DefaultBreakerSettings returns the settings used by NewTransport
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxFailures: 5,
		OpenTimeout: 30 * time.Second,
	}
}

// BreakerTransport fails fast once the wrapped transport keeps failing. It
// never retries; an open breaker surfaces as gobreaker.ErrOpenState.
type BreakerTransport struct {
	next Transport
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTransport wraps next with a circuit breaker
func NewBreakerTransport(next Transport, settings BreakerSettings, logger *zap.Logger) *BreakerTransport {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.MaxFailures == 0 {
		settings.MaxFailures = DefaultBreakerSettings().MaxFailures
	}

	maxFailures := settings.MaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// A cancelled request says nothing about the service.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("transport", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerTransport{next: next, cb: cb}
}

// Complete forwards to the wrapped transport unless the breaker is open
func (b *BreakerTransport) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Complete(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the wrapped transport's name
func (b *BreakerTransport) Name() string {
	return b.next.Name()
}

// State returns the current breaker state
func (b *BreakerTransport) State() gobreaker.State {
	return b.cb.State()
}
