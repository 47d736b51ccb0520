// Package tetris implements the falling-block grid engine: the shape catalog,
// collision checks, gravity, line clearing, scoring and garbage injection.
//
// The engine is a pure state machine. It has no notion of terminals, keys or
// wall-clock time: callers advance it with Tick and drive it with the command
// methods, each of which reports whether it took effect.
package tetris

import (
	"math/rand"
	"time"
)

// Board dimensions.
const (
	Width     = 10
	Height    = 20
	BoardSize = Width * Height
)

// InitInterval is the time between forced descents.
const InitInterval = time.Second

// LinesPerLevel is the number of cleared lines needed to advance one level.
const LinesPerLevel = 10

// ScoreTable maps the number of rows cleared by one lock to its base score.
var ScoreTable = [5]int{0, 4, 10, 30, 120}

// Board is the flat grid of occupied cells, indexed row*Width + col.
type Board [BoardSize]bool

// Source is the entropy used for piece selection and garbage rows.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// FallResult describes what a call to Fall did.
type FallResult int

const (
	FallIgnored FallResult = iota // game over or no active piece
	FallMoved                     // piece descended one row
	FallLocked                    // piece could not descend and was locked
)

// String returns a readable name for the result.
func (r FallResult) String() string {
	switch r {
	case FallMoved:
		return "moved"
	case FallLocked:
		return "locked"
	default:
		return "ignored"
	}
}

// Grid is the engine state: board, active piece and score bookkeeping.
type Grid struct {
	cells Board
	rng   Source

	kind     Kind
	active   bool
	spawned  bool // set on every successful spawn, cleared by TakeSpawned
	anchor   int
	rotation int

	interval     time.Duration
	timer        time.Duration
	gravityBonus int
	score        int
	cleared      int
	level        int
	gameOver     bool
}

// New creates an empty grid. A nil source falls back to a time-seeded one.
func New(src Source) *Grid {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Grid{rng: src}
	g.Reset()
	return g
}

// Reset restores the grid to its freshly constructed state. The entropy
// source is kept.
func (g *Grid) Reset() {
	g.cells = Board{}
	g.kind = 0
	g.active = false
	g.spawned = false
	g.anchor = 0
	g.rotation = 0
	g.interval = InitInterval
	g.timer = 0
	g.gravityBonus = 0
	g.score = 0
	g.cleared = 0
	g.level = 0
	g.gameOver = false
}

// Tick advances the descent timer. Once the accumulated time reaches the
// interval, one step runs: the active piece falls by gravity, or a new piece
// spawns if none is active. The remainder past the interval is carried over.
// Returns true if a step ran.
func (g *Grid) Tick(elapsed time.Duration) bool {
	if g.gameOver {
		return false
	}

	g.timer += elapsed
	if g.timer < g.interval {
		return false
	}
	g.timer -= g.interval

	if g.active {
		g.Fall(true)
	} else {
		g.spawn()
	}
	return true
}

// Fall moves the active piece down one row. Gravity-driven descents count
// toward the gravity bonus; soft drops do not. When the piece cannot descend
// it locks, finished rows are cleared and the next piece spawns.
func (g *Grid) Fall(dueToGravity bool) FallResult {
	if g.gameOver || !g.active {
		return FallIgnored
	}

	if !g.tryMove(g.anchor+Width, g.rotation) {
		g.clearLines()
		g.spawn()
		return FallLocked
	}

	if dueToGravity {
		g.gravityBonus++
	}
	return FallMoved
}

// HorizontalMove shifts the active piece by offset columns.
func (g *Grid) HorizontalMove(offset int) bool {
	if g.gameOver || !g.active {
		return false
	}
	return g.tryMove(g.anchor+offset, g.rotation)
}

// Rotate turns the active piece to its next rotation state around the same
// anchor. There are no wall kicks: if the rotated piece does not fit, nothing
// happens.
func (g *Grid) Rotate() bool {
	if g.gameOver || !g.active {
		return false
	}
	return g.tryMove(g.anchor, (g.rotation+1)%4)
}

// tryMove relocates the active piece if every resulting cell is legal, and
// is the only path that moves a piece on the board.
func (g *Grid) tryMove(anchor, rotation int) bool {
	if anchor < 0 {
		return false
	}

	current := Resolve(g.kind, g.anchor, g.rotation)
	after := Resolve(g.kind, anchor, rotation)
	col := g.anchor % Width

	for _, c := range after {
		if c < 0 {
			// Above the top edge: neither checked nor written.
			continue
		}
		if c >= BoardSize {
			return false
		}
		if g.cells[c] && !contains(current, c) {
			return false
		}
		// A flat index cannot tell "off the left edge" from "last column of
		// the row above", so reject cells that landed on the far side.
		if c%Width == 0 && col >= Width/2 {
			return false
		}
		if c%Width == Width-1 && col < Width/2 {
			return false
		}
	}

	for _, c := range current {
		if c >= 0 {
			g.cells[c] = false
		}
	}
	for _, c := range after {
		if c >= 0 {
			g.cells[c] = true
		}
	}
	g.anchor = anchor
	g.rotation = rotation
	return true
}

// spawn activates a random piece at the top centre. If any of its cells is
// already occupied the game is over and the piece is not placed.
func (g *Grid) spawn() {
	g.kind = Kind(g.rng.Intn(KindCount))
	g.active = true
	g.rotation = 0
	g.anchor = Width/2 - 1
	g.gravityBonus = 0

	placement := Resolve(g.kind, g.anchor, g.rotation)
	for _, c := range placement {
		if c >= 0 && g.cells[c] {
			g.gameOver = true
			g.spawned = false
			return
		}
	}

	for _, c := range placement {
		if c >= 0 {
			g.cells[c] = true
		}
	}
	g.spawned = true
}

// clearLines removes every finished row, shifting the rows above it down,
// and scores the result.
func (g *Grid) clearLines() int {
	var finished [Height]bool
	for y := range Height {
		finished[y] = true
		for x := range Width {
			if !g.cells[y*Width+x] {
				finished[y] = false
				break
			}
		}
	}

	rows := 0
	for y := range Height {
		if !finished[y] {
			continue
		}
		for yy := y; yy > 0; yy-- {
			copy(g.cells[yy*Width:(yy+1)*Width], g.cells[(yy-1)*Width:yy*Width])
		}
		for x := range Width {
			g.cells[x] = false
		}
		rows++
	}

	if rows > 0 {
		g.updateScore(rows)
	}
	return rows
}

// updateScore credits a lock that cleared the given number of rows.
func (g *Grid) updateScore(rows int) {
	g.cleared += rows
	base := ScoreTable[min(rows, len(ScoreTable)-1)]
	g.score += base * g.gravityBonus * (g.level + 1)
	g.level = g.cleared / LinesPerLevel
}

// Cells returns a copy of the board.
func (g *Grid) Cells() Board {
	return g.cells
}

// Occupied reports whether the cell at (x, y) is filled. Out-of-range
// coordinates report false.
func (g *Grid) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g.cells[y*Width+x]
}

// Active returns the kind of the falling piece and whether one exists.
func (g *Grid) Active() (Kind, bool) {
	return g.kind, g.active
}

// PieceCells returns the board indices covered by the active piece. Only
// meaningful when a piece is active.
func (g *Grid) PieceCells() [4]int {
	return Resolve(g.kind, g.anchor, g.rotation)
}

// Anchor returns the anchor index of the active piece.
func (g *Grid) Anchor() int { return g.anchor }

// Rotation returns the rotation state of the active piece.
func (g *Grid) Rotation() int { return g.rotation }

// GravityBonus returns how many gravity descents the active piece has made.
func (g *Grid) GravityBonus() int { return g.gravityBonus }

// Score returns the cumulative score.
func (g *Grid) Score() int { return g.score }

// Cleared returns the number of lines cleared so far.
func (g *Grid) Cleared() int { return g.cleared }

// Level returns the current level.
func (g *Grid) Level() int { return g.level }

// GameOver reports whether the game has ended.
func (g *Grid) GameOver() bool { return g.gameOver }

// Interval returns the descent interval.
func (g *Grid) Interval() time.Duration { return g.interval }

// TakeSpawned reports whether a piece has spawned since the last call and
// clears the flag.
func (g *Grid) TakeSpawned() bool {
	s := g.spawned
	g.spawned = false
	return s
}
