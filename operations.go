package chaincalc

import "math"

// Add adds n to the value.
func (c *Calculator) Add(n float64) *Calculator {
	return c.Apply("add", func(v float64) float64 { return v + n })
}

// Subtract subtracts n from the value.
func (c *Calculator) Subtract(n float64) *Calculator {
	return c.Apply("subtract", func(v float64) float64 { return v - n })
}

// Multiply multiplies the value by n.
func (c *Calculator) Multiply(n float64) *Calculator {
	return c.Apply("multiply", func(v float64) float64 { return v * n })
}

// Divide divides the value by n. Division by zero yields ±Inf or NaN.
func (c *Calculator) Divide(n float64) *Calculator {
	return c.Apply("divide", func(v float64) float64 { return v / n })
}

// Pow raises the value to the power n.
func (c *Calculator) Pow(n float64) *Calculator {
	return c.Apply("pow", func(v float64) float64 { return math.Pow(v, n) })
}

// Sqrt replaces the value with its square root. Negative values give NaN.
func (c *Calculator) Sqrt() *Calculator {
	return c.Apply("sqrt", math.Sqrt)
}

// Sin replaces the value with its sine (radians).
func (c *Calculator) Sin() *Calculator {
	return c.Apply("sin", math.Sin)
}

// Cos replaces the value with its cosine (radians).
func (c *Calculator) Cos() *Calculator {
	return c.Apply("cos", math.Cos)
}

// Tan replaces the value with its tangent (radians).
func (c *Calculator) Tan() *Calculator {
	return c.Apply("tan", math.Tan)
}

// Clear resets the value to 0. Like every other step it can be undone.
func (c *Calculator) Clear() *Calculator {
	return c.Apply("clear", func(float64) float64 { return 0 })
}

// Factorial replaces the value with 1·2·…·value, looked up in the
// calculator's factorial cache.
//
// The value is treated as a non-negative integer: the product runs over
// every integer i with 1 <= i <= value, so fractions are effectively
// floored, and values below 1 (and NaN) give 1. Inputs above 170
// overflow float64 and give +Inf.
func (c *Calculator) Factorial() *Calculator {
	return c.Apply("factorial", c.memo.Get)
}
