package bench

import (
	"time"

	"github.com/agbru/fibbench/internal/logging"
)

// Option configures an Environment.
type Option func(*Environment)

// WithLogger sets the logger used for per-sample debug lines. A nil logger
// keeps the default, which discards everything.
func WithLogger(logger logging.Logger) Option {
	return func(e *Environment) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records every sample into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Environment) {
		e.metrics = m
	}
}

// WithClock replaces time.Now for the timed calls. Tests use it to make
// measured times deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Environment) {
		if now != nil {
			e.now = now
		}
	}
}
