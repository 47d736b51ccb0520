package tetris

// garbageStep is how much the fill probability (in percent) drops after each
// filled column of a garbage row.
const garbageStep = 100 / Width

// Punish pushes the stack up one row and fills the bottom row with a random
// garbage pattern. The active piece stays where it is. Rejected when the game
// is over or no piece is falling.
func (g *Grid) Punish() bool {
	if g.gameOver || !g.active {
		return false
	}

	piece := g.PieceCells()
	for i := 0; i < BoardSize-Width; i++ {
		if contains(piece, i) || contains(piece, i+Width) {
			continue
		}
		g.cells[i] = g.cells[i+Width]
	}

	row := g.garbageRow()
	base := BoardSize - Width
	for x, filled := range row {
		idx := base + x
		if contains(piece, idx) {
			continue
		}
		g.cells[idx] = filled
	}
	return true
}

// garbageRow builds a bottom row whose columns fill with a falling
// probability: the first always fills, and each filled column lowers the odds
// for the rest, so a complete row is very unlikely. The row is shuffled so the
// bias does not favour the left edge.
func (g *Grid) garbageRow() [Width]bool {
	var row [Width]bool
	ratio := 100
	for x := range row {
		if g.rng.Intn(100) < ratio {
			row[x] = true
			ratio -= garbageStep
		}
	}
	g.rng.Shuffle(len(row), func(i, j int) {
		row[i], row[j] = row[j], row[i]
	})
	return row
}
