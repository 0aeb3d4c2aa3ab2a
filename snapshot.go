package chaincalc

// Snapshot is a read-only view of a calculator's state.
type Snapshot struct {
	Value     float64 `json:"value"`
	UndoDepth int     `json:"undoDepth"`
	RedoDepth int     `json:"redoDepth"`
}

// Snapshot captures the current value and history depths.
func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		Value:     c.value,
		UndoDepth: c.undo.depth(),
		RedoDepth: c.redo.depth(),
	}
}
