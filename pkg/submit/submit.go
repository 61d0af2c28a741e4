// Package submit provides Submitter implementations for the widget. The
// default simulator stands in for a quote gateway: a fixed short latency
// followed by unconditional acceptance. Real transports keep the same
// contract shape, returning nil on logical acceptance and an error on
// failure.
package submit

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-quotewidget/pkg/widget"
)

// DefaultLatency approximates a round trip to a quote endpoint.
const DefaultLatency = 650 * time.Millisecond

// Option customises a Simulator.
type Option func(*Simulator)

// WithLatency overrides the simulated round-trip time. Zero submits
// immediately.
func WithLatency(latency time.Duration) Option {
	return func(s *Simulator) {
		if latency >= 0 {
			s.latency = latency
		}
	}
}

// WithFailure makes every attempt fail with err, for exercising the retry
// path in demos and tests.
func WithFailure(err error) Option {
	return func(s *Simulator) {
		s.failure = err
	}
}

// Simulator is the default stand-in transport. It waits its configured
// latency (honouring context cancellation) and then accepts the payload.
type Simulator struct {
	latency time.Duration
	failure error
}

var _ widget.Submitter = (*Simulator)(nil)

// NewSimulator constructs a Simulator with the default latency.
func NewSimulator(options ...Option) *Simulator {
	s := &Simulator{latency: DefaultLatency}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Submit waits out the simulated latency, then reports the configured
// outcome. Cancellation during the wait surfaces the context error.
func (s *Simulator) Submit(ctx context.Context, _ widget.Payload) error {
	if ctx == nil {
		return errors.New("submit: context is required")
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	return s.failure
}
