package chaincalc

import (
	"os"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestMain(t *testing.M) {
	code := t.Run()

	os.Exit(code)
}

// newTestCalc creates a calculator with its own factorial cache so tests
// don't observe each other through the process-wide one.
func newTestCalc(t *testing.T, options ...Option) *Calculator {
	t.Helper()
	options = append([]Option{WithFactorialCache(NewFactorialCache())}, options...)
	return New(options...)
}

// assertValue checks the register and dumps the whole calculator on mismatch.
func assertValue(t *testing.T, c *Calculator, want float64) {
	t.Helper()
	if !assert.Equal(t, want, c.Value()) {
		t.Log(spew.Sdump(c.Snapshot(), c.History()))
	}
}

// assertDepths checks the sizes of both history stacks.
func assertDepths(t *testing.T, c *Calculator, undo, redo int) {
	t.Helper()
	if !assert.Equal(t, undo, c.UndoDepth(), "undo depth") || !assert.Equal(t, redo, c.RedoDepth(), "redo depth") {
		t.Log(spew.Sdump(c.Snapshot(), c.History()))
	}
}
