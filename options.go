package chaincalc

import "log/slog"

// Option configures a Calculator.
type Option func(*Calculator)

// WithValue sets the initial register value.
// Leaving the option out is how callers ask for the default of 0.
func WithValue(v float64) Option {
	return func(c *Calculator) {
		c.value = v
	}
}

// WithFactorialCache makes the calculator use cache instead of the
// process-wide default. A nil cache is ignored.
//
// Example:
//
//	calc := chaincalc.New(chaincalc.WithFactorialCache(chaincalc.NewFactorialCache()))
func WithFactorialCache(cache *FactorialCache) Option {
	return func(c *Calculator) {
		if cache != nil {
			c.memo = cache
		}
	}
}

// WithLogger sets the logger used for debug output of every step.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHistoryLimit caps the number of undo steps kept. Once the cap is
// reached the oldest step is forgotten. 0, the default, keeps every step.
func WithHistoryLimit(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.historyLimit = n
		}
	}
}
