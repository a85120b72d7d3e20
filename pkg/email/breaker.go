package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/umerfilms/website/pkg/logger"
)

// BreakerSender stops calling the wrapped Sender after repeated provider
// failures. While open, Send fails fast with ErrCircuitOpen joined with
// ErrFailedToSendEmail. Invalid messages and cancelled contexts do not count
// against the provider.
type BreakerSender struct {
	next Sender
	cb   *gobreaker.CircuitBreaker[Receipt]
}

// BreakerOption tunes a BreakerSender.
type BreakerOption func(*gobreaker.Settings)

func WithBreakerLogger(l *slog.Logger) BreakerOption {
	return onStateChange(func(name string, from, to gobreaker.State) {
		l.Warn("email circuit breaker state changed",
			logger.Component("email"),
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})
}

// WithBreakerStateListener calls fn with the new state name ("closed",
// "half-open" or "open") on every transition.
func WithBreakerStateListener(fn func(state string)) BreakerOption {
	return onStateChange(func(_ string, _, to gobreaker.State) {
		fn(to.String())
	})
}

// onStateChange chains fn after any hook set by an earlier option.
func onStateChange(fn func(name string, from, to gobreaker.State)) BreakerOption {
	return func(s *gobreaker.Settings) {
		prev := s.OnStateChange
		s.OnStateChange = func(name string, from, to gobreaker.State) {
			if prev != nil {
				prev(name, from, to)
			}
			fn(name, from, to)
		}
	}
}

func NewBreakerSender(next Sender, cfg Config, opts ...BreakerOption) *BreakerSender {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := cfg.BreakerOpenTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	st := gobreaker.Settings{
		Name:        "email",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrInvalidMessage) ||
				errors.Is(err, context.Canceled)
		},
	}
	for _, opt := range opts {
		opt(&st)
	}

	return &BreakerSender{next: next, cb: gobreaker.NewCircuitBreaker[Receipt](st)}
}

func (b *BreakerSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	r, err := b.cb.Execute(func() (Receipt, error) {
		return b.next.Send(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Receipt{}, errors.Join(ErrFailedToSendEmail, ErrCircuitOpen, err)
	}
	return r, err
}

// State reports the breaker state name ("closed", "open", "half-open").
func (b *BreakerSender) State() string {
	return b.cb.State().String()
}
