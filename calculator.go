package chaincalc

import (
	"log/slog"
	"strconv"
)

// Operation transforms the current register value into the next one.
// Extra arguments are captured by the closure.
type Operation func(value float64) float64

// Calculator is a numeric register with undo/redo history.
// Every mutating method returns the receiver so calls can be chained.
// A Calculator is not safe for concurrent use; the factorial cache it
// uses is.
type Calculator struct {
	value        float64
	undo         stack // values before each step, most recent last
	redo         stack // values superseded by Undo, last undone on top
	historyLimit int   // 0 means unbounded
	memo         *FactorialCache
	logger       *slog.Logger
}

// New creates a calculator. Without WithValue the register starts at 0.
func New(options ...Option) *Calculator {
	calc := &Calculator{
		memo:   DefaultFactorialCache(),
		logger: slog.New(slog.DiscardHandler),
	}

	// Apply options
	for _, option := range options {
		option(calc)
	}

	return calc
}

// Value returns the current register value.
func (c *Calculator) Value() float64 {
	return c.value
}

// String formats the current value the way strconv does for float64,
// so non-finite values print as +Inf, -Inf and NaN.
func (c *Calculator) String() string {
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}

// Apply records the current value, drops any pending redo history and
// replaces the value with op(value). Every built-in mutating method goes
// through Apply; callers can use it to add their own operations with the
// same history behavior. name is only used for logging.
func (c *Calculator) Apply(name string, op Operation) *Calculator {
	before := c.value

	c.undo.push(before)
	c.undo.trimTo(c.historyLimit)
	c.redo.reset()

	c.value = op(before)

	c.logger.Debug("apply",
		slog.String("op", name),
		slog.Float64("before", before),
		slog.Float64("after", c.value),
	)
	return c
}
