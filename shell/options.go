package shell

import (
	"time"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// Option defines a functional option for configuring the Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
//
// Debug level: every command start and no-op outcome
// Info level: committed changes and history restores
// Warn level: rejected transitions with their reason.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// It receives command durations and call counts as well as the current price and history size.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithClock sets the clock used to timestamp commands and events. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return ErrNilClock
		}

		s.now = now

		return nil
	}
}

// WithMaxPrice sets the initial advisory max price.
func WithMaxPrice(limit core.PriceLimit) Option {
	return func(s *Store) error {
		if amount, set := limit.Amount(); set && amount < 0 {
			return ErrNegativeMaxPrice
		}

		s.initialMaxPrice = limit

		return nil
	}
}
