package quiztris

import "github.com/vovakirdan/quiztris/internal/tetris"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Mode          string
	Engine        tetris.Snapshot
	Question      int // deck index of the current question, -1 without one
	Correct       int
	Wrong         int
	Punishments   int
	Pieces        int
	AnswerElapsed int64 // nanoseconds
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.grid.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	question := -1
	if g.session != nil {
		if r, ok := g.session.Round(); ok {
			question = r.Index
		}
	}
	correct, wrong := g.QuizTally()

	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Engine:        g.grid.Snapshot(),
		Question:      question,
		Correct:       correct,
		Wrong:         wrong,
		Punishments:   g.punishments,
		Pieces:        g.pieces,
		AnswerElapsed: int64(g.answerElapsed),
		State:         state,
	}
}
