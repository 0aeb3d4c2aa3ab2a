/*
Package chaincalc provides a chainable floating-point calculator with undo/redo history.

# Overview

A Calculator holds a single float64 register. Every mutating method returns the
calculator itself, so a computation reads as one expression:

	calc := chaincalc.New(chaincalc.WithValue(100))
	calc.Add(5).Subtract(10).Undo()
	fmt.Println(calc.Value()) // 105

# History

Mutating methods are plain value transforms that all pass through Calculator.Apply.
Apply records the current value on the undo stack, drops the redo stack and then
replaces the value. Undo and Redo move values between the two stacks directly and
are not recorded themselves:

  - Undo with an empty undo stack is a no-op
  - Redo with an empty redo stack is a no-op
  - Any new step after an Undo discards everything that could have been redone

Custom operations get the same behavior for free:

	calc.Apply("negate", func(v float64) float64 { return -v })

# Numeric Semantics

No operation returns an error. Division by zero and domain errors follow IEEE-754:

	chaincalc.New(chaincalc.WithValue(10)).Divide(0).Value() // +Inf
	chaincalc.New(chaincalc.WithValue(-1)).Sqrt().Value()    // NaN

Non-finite values are ordinary states; they can be chained further and undone.

# Factorial Cache

Factorial results are memoized in a FactorialCache keyed by the exact input value.
By default all calculators share DefaultFactorialCache. The cache is safe for
concurrent use, so it can be shared across goroutines even though a single
Calculator cannot:

	cache := chaincalc.NewFactorialCache()
	a := chaincalc.New(chaincalc.WithValue(10), chaincalc.WithFactorialCache(cache))
	b := chaincalc.New(chaincalc.WithValue(10), chaincalc.WithFactorialCache(cache))
	a.Factorial()
	b.Factorial() // served from cache
	fmt.Println(cache.Stats().Hits) // 1

# Configuration Options

	calc := chaincalc.New(
	    chaincalc.WithValue(42),
	    chaincalc.WithHistoryLimit(100),
	    chaincalc.WithLogger(slog.Default()),
	)
*/
package chaincalc
