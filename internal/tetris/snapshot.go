package tetris

// StateType names the phase the engine is in.
type StateType string

const (
	StateEmpty    StateType = "empty"
	StateFalling  StateType = "falling"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete engine state for determinism testing.
type Snapshot struct {
	Cells        Board
	Kind         Kind
	Active       bool
	Anchor       int
	Rotation     int
	GravityBonus int
	Score        int
	Cleared      int
	Level        int
	State        StateType
}

// Snapshot returns a copy of the current engine state.
func (g *Grid) Snapshot() Snapshot {
	state := StateEmpty
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.active:
		state = StateFalling
	}

	return Snapshot{
		Cells:        g.cells,
		Kind:         g.kind,
		Active:       g.active,
		Anchor:       g.anchor,
		Rotation:     g.rotation,
		GravityBonus: g.gravityBonus,
		Score:        g.score,
		Cleared:      g.cleared,
		Level:        g.level,
		State:        state,
	}
}

// Filled returns the number of occupied cells on the board.
func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c {
			n++
		}
	}
	return n
}
