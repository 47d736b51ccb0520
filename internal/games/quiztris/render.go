package quiztris

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/quiztris/internal/core"
	"github.com/vovakirdan/quiztris/internal/quiz"
	"github.com/vovakirdan/quiztris/internal/tetris"
)

// Layout: quiz | well | status.
const (
	quizPanelW = 32 // includes a two column gutter
	quizTextW  = quizPanelW - 2
	wellW      = 2 + tetris.Width*2 + 2
	statusGap  = 2
	statusW    = 16
	layoutH    = 1 + tetris.Height + 2 // title, cells, floor, base
	timerBarW  = 16
	maxQLines  = 6
)

var kindColors = [tetris.KindCount]core.Color{
	tetris.KindI: core.ColorCyan,
	tetris.KindO: core.ColorYellow,
	tetris.KindZ: core.ColorRed,
	tetris.KindS: core.ColorGreen,
	tetris.KindL: core.ColorOrange,
	tetris.KindJ: core.ColorBlue,
	tetris.KindT: core.ColorMagenta,
}

func (g *Game) minSize() (int, int) {
	w := wellW + statusGap + statusW
	if g.mode == ModeQuiz {
		w += quizPanelW
	}
	return w, layoutH
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.minSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize to continue", w, h))
		return
	}

	totalW, _ := g.minSize()
	x0 := (dst.Width() - totalW) / 2
	y0 := (dst.Height() - layoutH) / 2

	wellX := x0
	if g.mode == ModeQuiz {
		wellX += quizPanelW
		g.renderQuiz(dst, x0, y0+1)
	}
	dst.DrawTextColored(wellX+(wellW-len(g.Title()))/2, y0, strings.ToUpper(g.Title()), core.ColorBrightWhite)
	g.renderWell(dst, wellX, y0+1)
	g.renderStatus(dst, wellX+wellW+statusGap, y0+1)

	switch {
	case g.grid.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %s  Press R to restart", humanize.Comma(int64(g.grid.Score()))))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWell draws the board between its walls, with the floor and base.
func (g *Game) renderWell(dst *core.Screen, x, y int) {
	cells := g.grid.Cells()

	var piece [4]int
	kind, active := g.grid.Active()
	active = active && !g.grid.GameOver()
	if active {
		piece = g.grid.PieceCells()
	}

	for row := range tetris.Height {
		py := y + row
		dst.DrawTextColored(x, py, "<!", core.ColorGray)
		for col := range tetris.Width {
			idx := row*tetris.Width + col
			px := x + 2 + col*2
			switch {
			case active && isPieceCell(piece, idx):
				dst.DrawTextColored(px, py, "[]", kindColors[kind])
			case cells[idx]:
				dst.DrawTextColored(px, py, "[]", core.ColorWhite)
			default:
				dst.DrawTextColored(px, py, " .", core.ColorGray)
			}
		}
		dst.DrawTextColored(x+2+tetris.Width*2, py, "!>", core.ColorGray)
	}

	floorY := y + tetris.Height
	dst.DrawTextColored(x, floorY, "<!", core.ColorGray)
	dst.DrawTextColored(x+2, floorY, strings.Repeat("*", tetris.Width*2), core.ColorGray)
	dst.DrawTextColored(x+2+tetris.Width*2, floorY, "!>", core.ColorGray)
	dst.DrawTextColored(x+2, floorY+1, strings.Repeat(`\/`, tetris.Width), core.ColorGray)
}

func isPieceCell(piece [4]int, idx int) bool {
	for _, c := range piece {
		if c == idx {
			return true
		}
	}
	return false
}

type statusLine struct {
	label string
	value string
}

// renderStatus draws the score column next to the well.
func (g *Game) renderStatus(dst *core.Screen, x, y int) {
	best := max(g.highScore, g.grid.Score())

	lines := []statusLine{
		{"SCORE:", humanize.Comma(int64(g.grid.Score()))},
		{"LEVEL:", fmt.Sprint(g.grid.Level())},
		{"LINES:", fmt.Sprint(g.grid.Cleared())},
		{"BEST:", humanize.Comma(int64(best))},
		{"PIECES:", fmt.Sprint(g.pieces)},
	}
	if g.mode == ModeQuiz {
		lines = append(lines, statusLine{"GARBAGE:", fmt.Sprint(g.punishments)})
	}

	// Bottom-aligned with the well, one blank row between entries.
	sy := y + tetris.Height - len(lines)*2
	for i, l := range lines {
		dst.DrawTextColored(x, sy+i*2, l.label, core.ColorGray)
		dst.DrawTextColored(x+len(l.label)+1, sy+i*2, l.value, core.ColorBrightWhite)
	}
}

// renderQuiz draws the question panel left of the well.
func (g *Game) renderQuiz(dst *core.Screen, x, y int) {
	row := y
	correct, wrong := g.QuizTally()

	round, ok := g.session.Round()
	if !ok {
		dst.DrawTextColored(x, row, "NO QUESTIONS LOADED", core.ColorRed)
		return
	}

	dst.DrawTextColored(x, row, fmt.Sprintf("QUESTION %d", correct+wrong+1), core.ColorBrightYellow)
	row += 2

	qLines := strings.Split(ansi.Wordwrap(round.Quiz.Question, quizTextW, ""), "\n")
	if len(qLines) > maxQLines {
		qLines = qLines[:maxQLines]
		qLines[maxQLines-1] = ansi.Truncate(qLines[maxQLines-1], quizTextW-1, "") + "…"
	}
	for _, l := range qLines {
		dst.DrawTextColored(x, row, ansi.Truncate(l, quizTextW, "…"), core.ColorWhite)
		row++
	}
	row++

	for i, choice := range round.Choices {
		text := ansi.Truncate(fmt.Sprintf("%d) %s", i+1, choice), quizTextW, "…")
		dst.DrawTextColored(x, row, text, core.ColorBrightCyan)
		row++
	}
	row++

	switch g.session.Last() {
	case quiz.OutcomeCorrect:
		dst.DrawTextColored(x, row, "Correct!", core.ColorBrightGreen)
	case quiz.OutcomeWrong:
		msg := ansi.Truncate("Wrong! It was: "+g.session.LastAnswer(), quizTextW, "…")
		dst.DrawTextColored(x, row, msg, core.ColorBrightRed)
	}
	row += 2

	if g.answerLimit > 0 {
		g.renderTimer(dst, x, row)
		row += 2
	}

	dst.DrawTextColored(x, row, fmt.Sprintf("RIGHT %d  WRONG %d", correct, wrong), core.ColorGray)

	if g.loadErr != nil {
		dst.DrawTextColored(x, y+tetris.Height-1, "! config error, using defaults", core.ColorRed)
	}
}

// renderTimer draws the remaining answer time as a shrinking bar.
func (g *Game) renderTimer(dst *core.Screen, x, y int) {
	left := g.timeLeft()
	frac := core.ClampF(float64(left)/float64(g.answerLimit), 0, 1)
	filled := core.Clamp(int(frac*timerBarW+0.5), 0, timerBarW)

	color := core.ColorGreen
	switch {
	case frac < 0.25:
		color = core.ColorRed
	case frac < 0.5:
		color = core.ColorYellow
	}

	dst.DrawTextColored(x, y, "TIME ", core.ColorGray)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", timerBarW-filled)
	dst.DrawTextColored(x+5, y, bar, color)
	secs := int(left.Seconds() + 0.999)
	dst.DrawTextColored(x+6+timerBarW, y, fmt.Sprintf("%2ds", secs), color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(ansi.StringWidth(line1), ansi.StringWidth(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
