package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("llm: circuit open")

// BreakerSettings tunes NewBreaker.
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenFor             time.Duration
	OnStateChange       func(name string, from, to string)
}

// Breaker guards a Completer with a circuit breaker. Client errors (4xx) and
// a missing key do not count as failures since retrying would not help either.
type Breaker struct {
	next Completer
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next.
func NewBreaker(next Completer, s BreakerSettings) *Breaker {
	if s.Name == "" {
		s.Name = "llm"
	}
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	if s.OpenFor <= 0 {
		s.OpenFor = 30 * time.Second
	}
	threshold := s.ConsecutiveFailures
	settings := gobreaker.Settings{
		Name:    s.Name,
		Timeout: s.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}
	if s.OnStateChange != nil {
		notify := s.OnStateChange
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			notify(name, from.String(), to.String())
		}
	}
	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Complete forwards to the wrapped Completer unless the circuit is open.
func (b *Breaker) Complete(ctx context.Context, transcript []Message) (string, error) {
	var passthrough error
	out, err := b.cb.Execute(func() (interface{}, error) {
		text, err := b.next.Complete(ctx, transcript)
		if err != nil && !countsAsFailure(err) {
			passthrough = err
			return "", nil
		}
		return text, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrCircuitOpen
	}
	if err != nil {
		return "", err
	}
	if passthrough != nil {
		return "", passthrough
	}
	text, _ := out.(string)
	return text, nil
}

// State reports the breaker state name.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

func countsAsFailure(err error) bool {
	if errors.Is(err, ErrMissingAPIKey) || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == 429
	}
	return true
}
