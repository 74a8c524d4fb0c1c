package translation

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/glossyflash/internal/deck"
)

var (
	// ErrBlankGlosses is returned when the gloss text is empty after trimming
	ErrBlankGlosses = errors.New("glosses must not be blank")
	// ErrUnsupportedLanguage is returned for a target language outside the supported set
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	// ErrTransport wraps every network, quota or authentication failure
	ErrTransport = errors.New("generation service request failed")
	// ErrMalformedResponse wraps bodies that are not valid JSON or violate the schema
	ErrMalformedResponse = errors.New("malformed generation response")
	// ErrEmptyResponse is returned when the service answered with no text at all
	ErrEmptyResponse = errors.New("empty generation response")
)

// Outcome tags the variant of a Result
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeTransportFailure
	OutcomeMalformedResponse
	OutcomeInvalidInput
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTransportFailure:
		return "transport_failure"
	case OutcomeMalformedResponse:
		return "malformed_response"
	case OutcomeInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Translate call. Cards is only set for
// OutcomeSuccess (and may be empty); Err is only set for the failure variants.
type Result struct {
	Outcome Outcome
	Cards   deck.Deck
	Err     error
}

// Success wraps a generated deck
func Success(cards deck.Deck) Result {
	return Result{Outcome: OutcomeSuccess, Cards: cards}
}

// TransportFailure wraps err so that errors.Is(err, ErrTransport) holds
func TransportFailure(err error) Result {
	return Result{Outcome: OutcomeTransportFailure, Err: wrap(ErrTransport, err)}
}

// MalformedResponse wraps err so that errors.Is(err, ErrMalformedResponse) holds
func MalformedResponse(err error) Result {
	return Result{Outcome: OutcomeMalformedResponse, Err: wrap(ErrMalformedResponse, err)}
}

// InvalidInput reports a precondition violation before any request was sent
func InvalidInput(err error) Result {
	return Result{Outcome: OutcomeInvalidInput, Err: err}
}

// OK reports whether the result is a success
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

func wrap(sentinel, err error) error {
	switch {
	case err == nil:
		return sentinel
	case errors.Is(err, sentinel):
		return err
	default:
		return fmt.Errorf("%w: %w", sentinel, err)
	}
}
