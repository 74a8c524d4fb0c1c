package translation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/glossyflash/internal/testutil"
)

func TestBreakerTransport_PassesThrough(t *testing.T) {
	stub := &testutil.StubTransport{Body: `{"flashcards":[]}`}
	b := NewBreakerTransport(stub, DefaultBreakerSettings(), nil)

	body, err := b.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"flashcards":[]}`, body)
	assert.Equal(t, "stub", b.Name())
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerTransport_OpensAfterConsecutiveFailures(t *testing.T) {
	failure := errors.New("quota exceeded")
	stub := &testutil.StubTransport{Err: failure}
	b := NewBreakerTransport(stub, BreakerSettings{MaxFailures: 3, OpenTimeout: time.Minute}, nil)

	for i := 0; i < 3; i++ {
		_, err := b.Complete(context.Background(), "prompt")
		assert.ErrorIs(t, err, failure)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, stub.Calls(), "an open breaker must not reach the transport")
}

func TestBreakerTransport_OpenStateIsTransportFailure(t *testing.T) {
	stub := &testutil.StubTransport{Err: errors.New("unauthenticated")}
	b := NewBreakerTransport(stub, BreakerSettings{MaxFailures: 1, OpenTimeout: time.Minute}, nil)
	tr := NewTranslator(b, nil)

	first := tr.Translate(context.Background(), "Chat", "French")
	second := tr.Translate(context.Background(), "Chat", "French")

	assert.Equal(t, OutcomeTransportFailure, first.Outcome)
	assert.Equal(t, OutcomeTransportFailure, second.Outcome)
	assert.ErrorIs(t, second.Err, gobreaker.ErrOpenState)
}

func TestBreakerTransport_CancelledRequestsDoNotTrip(t *testing.T) {
	stub := &testutil.StubTransport{Err: context.Canceled}
	b := NewBreakerTransport(stub, BreakerSettings{MaxFailures: 1, OpenTimeout: time.Minute}, nil)

	for i := 0; i < 3; i++ {
		_, err := b.Complete(context.Background(), "prompt")
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
}
