package chaincalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperations(t *testing.T) {
	testCases := []struct {
		name    string
		initial float64
		op      func(c *Calculator) *Calculator
		want    float64
	}{
		{"Add", 42, func(c *Calculator) *Calculator { return c.Add(8) }, 50},
		{"Subtract", 32, func(c *Calculator) *Calculator { return c.Subtract(22) }, 10},
		{"Multiply", 5, func(c *Calculator) *Calculator { return c.Multiply(4) }, 20},
		{"Divide", 100, func(c *Calculator) *Calculator { return c.Divide(10) }, 10},
		{"Pow", 2, func(c *Calculator) *Calculator { return c.Pow(10) }, 1024},
		{"Pow fractional", 9, func(c *Calculator) *Calculator { return c.Pow(0.5) }, 3},
		{"Sqrt", 81, func(c *Calculator) *Calculator { return c.Sqrt() }, 9},
		{"Sin", math.Pi / 2, func(c *Calculator) *Calculator { return c.Sin() }, 1},
		{"Cos", 0, func(c *Calculator) *Calculator { return c.Cos() }, 1},
		{"Tan", 0, func(c *Calculator) *Calculator { return c.Tan() }, 0},
		{"Clear", 123.5, func(c *Calculator) *Calculator { return c.Clear() }, 0},
		{"Factorial", 5, func(c *Calculator) *Calculator { return c.Factorial() }, 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc := newTestCalc(t, WithValue(tc.initial))
			tc.op(calc)

			assert.InDelta(t, tc.want, calc.Value(), 1e-12)
			assertDepths(t, calc, 1, 0)
			assert.Equal(t, []float64{tc.initial}, calc.History())
		})
	}
}

func TestTrigonometryUsesRadians(t *testing.T) {
	calc := newTestCalc(t, WithValue(math.Pi))

	calc.Cos()
	assert.InDelta(t, -1, calc.Value(), 1e-12)

	calc.Clear().Add(math.Pi / 4).Tan()
	assert.InDelta(t, 1, calc.Value(), 1e-12)

	calc.Clear().Add(math.Pi).Sin()
	assert.InDelta(t, 0, calc.Value(), 1e-12)
}

func TestChainedOperations(t *testing.T) {
	t.Run("Additions", func(t *testing.T) {
		assertValue(t, newTestCalc(t).Add(5).Add(10).Add(15), 30)
	})

	t.Run("Subtractions", func(t *testing.T) {
		assertValue(t, newTestCalc(t).Subtract(5).Subtract(10).Subtract(15), -30)
	})

	t.Run("Mixed", func(t *testing.T) {
		assertValue(t, newTestCalc(t).Add(5).Subtract(10).Multiply(2).Divide(4), -2.5)
	})

	t.Run("Clear then continue", func(t *testing.T) {
		calc := newTestCalc(t, WithValue(100))
		calc.Add(5).Subtract(10).Multiply(2).Divide(4).Clear()
		assertValue(t, calc, 0)

		calc.Add(5).Subtract(10).Multiply(2).Divide(2)
		assertValue(t, calc, -5)
	})

	t.Run("Factorial of a chained result", func(t *testing.T) {
		assertValue(t, newTestCalc(t).Add(2).Pow(2).Factorial(), 24)
	})
}

func TestNonFiniteResults(t *testing.T) {
	testCases := []struct {
		name    string
		initial float64
		op      func(c *Calculator) *Calculator
		check   func(t *testing.T, v float64)
	}{
		{
			name:    "Divide by zero",
			initial: 10,
			op:      func(c *Calculator) *Calculator { return c.Divide(0) },
			check:   func(t *testing.T, v float64) { assert.Equal(t, math.Inf(1), v) },
		},
		{
			name:    "Repeated divide by zero",
			initial: 10,
			op:      func(c *Calculator) *Calculator { return c.Divide(0).Divide(0).Divide(0) },
			check:   func(t *testing.T, v float64) { assert.Equal(t, math.Inf(1), v) },
		},
		{
			name:    "Negative divide by zero",
			initial: -10,
			op:      func(c *Calculator) *Calculator { return c.Divide(0) },
			check:   func(t *testing.T, v float64) { assert.Equal(t, math.Inf(-1), v) },
		},
		{
			name:    "Zero divided by zero",
			initial: 0,
			op:      func(c *Calculator) *Calculator { return c.Divide(0) },
			check:   func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) },
		},
		{
			name:    "Square root of negative",
			initial: -4,
			op:      func(c *Calculator) *Calculator { return c.Sqrt() },
			check:   func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) },
		},
		{
			name:    "Fractional power of negative",
			initial: -8,
			op:      func(c *Calculator) *Calculator { return c.Pow(1.0 / 3) },
			check:   func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) },
		},
		{
			name:    "Sine of infinity",
			initial: math.Inf(1),
			op:      func(c *Calculator) *Calculator { return c.Sin() },
			check:   func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) },
		},
		{
			name:    "Overflowing multiply",
			initial: math.MaxFloat64,
			op:      func(c *Calculator) *Calculator { return c.Multiply(2) },
			check:   func(t *testing.T, v float64) { assert.Equal(t, math.Inf(1), v) },
		},
		{
			name:    "NaN propagates",
			initial: math.NaN(),
			op:      func(c *Calculator) *Calculator { return c.Add(1).Multiply(0) },
			check:   func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc := newTestCalc(t, WithValue(tc.initial))
			tc.check(t, tc.op(calc).Value())
		})
	}
}

func TestFactorialDomain(t *testing.T) {
	testCases := []struct {
		name  string
		input float64
		want  float64
	}{
		{"Zero", 0, 1},
		{"One", 1, 1},
		{"Ten", 10, 3628800},
		{"Fraction is floored", 4.7, 24},
		{"Negative", -3, 1},
		{"Negative infinity", math.Inf(-1), 1},
		{"NaN", math.NaN(), 1},
		{"Largest finite", 170, 7.257415615307994e306},
		{"Overflow", 171, math.Inf(1)},
		{"Infinity", math.Inf(1), math.Inf(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc := newTestCalc(t, WithValue(tc.input))
			calc.Factorial()

			if math.IsInf(tc.want, 0) {
				assert.Equal(t, tc.want, calc.Value())
				return
			}
			assert.InEpsilon(t, tc.want, calc.Value(), 1e-12)
		})
	}
}
