package chaincalc

import "log/slog"

// stack is a LIFO of register values.
type stack struct {
	items []float64
}

func (s *stack) push(v float64) {
	s.items = append(s.items, v)
}

// pop removes and returns the top value.
func (s *stack) pop() (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v, true
}

func (s *stack) depth() int {
	return len(s.items)
}

func (s *stack) reset() {
	s.items = nil
}

// trimTo drops the oldest values so at most limit remain.
// A limit of 0 or less keeps everything.
func (s *stack) trimTo(limit int) {
	if limit <= 0 || len(s.items) <= limit {
		return
	}
	excess := len(s.items) - limit
	s.items = append(s.items[:0:0], s.items[excess:]...)
}

// values returns a copy of the stack, bottom first.
func (s *stack) values() []float64 {
	out := make([]float64, len(s.items))
	copy(out, s.items)
	return out
}

// Undo restores the value held before the most recent step.
// With nothing to undo it leaves the calculator unchanged.
func (c *Calculator) Undo() *Calculator {
	prev, ok := c.undo.pop()
	if !ok {
		return c
	}
	c.redo.push(c.value)

	c.logger.Debug("undo", slog.Float64("before", c.value), slog.Float64("after", prev))
	c.value = prev
	return c
}

// Redo reapplies the most recently undone step.
// With nothing to redo it leaves the calculator unchanged.
func (c *Calculator) Redo() *Calculator {
	next, ok := c.redo.pop()
	if !ok {
		return c
	}
	c.undo.push(c.value)
	c.undo.trimTo(c.historyLimit)

	c.logger.Debug("redo", slog.Float64("before", c.value), slog.Float64("after", next))
	c.value = next
	return c
}

// CanUndo reports whether Undo would change the value.
func (c *Calculator) CanUndo() bool {
	return c.undo.depth() > 0
}

// CanRedo reports whether Redo would change the value.
func (c *Calculator) CanRedo() bool {
	return c.redo.depth() > 0
}

// UndoDepth returns the number of steps Undo can walk back.
func (c *Calculator) UndoDepth() int {
	return c.undo.depth()
}

// RedoDepth returns the number of steps Redo can replay.
func (c *Calculator) RedoDepth() int {
	return c.redo.depth()
}

// History returns the values recorded for undo, oldest first.
// The returned slice is a copy.
func (c *Calculator) History() []float64 {
	return c.undo.values()
}
