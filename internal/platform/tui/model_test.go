package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiztris/internal/core"
	"github.com/vovakirdan/quiztris/internal/registry"
	"github.com/vovakirdan/quiztris/internal/storage"
)

// stubGame ends after overAt steps with a fixed score.
type stubGame struct {
	overAt    int
	score     int
	steps     int
	lastFrame core.InputFrame
	resized   [2]int
	best      int
	questions bool
}

func (g *stubGame) ID() string                      { return "stub" }
func (g *stubGame) Title() string                   { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)        { g.steps = 0 }
func (g *stubGame) Resize(w, h int)                 { g.resized = [2]int{w, h} }
func (g *stubGame) SetHighScore(score int)          { g.best = score }
func (g *stubGame) QuizTally() (correct, wrong int) { return 3, 2 }
func (g *stubGame) AsksQuestions() bool             { return g.questions }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastFrame = in.Clone()
	if in.Has(core.ActionRestart) {
		g.steps = 0
	} else {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    7,
		GameOver: g.steps >= g.overAt,
	}
}

func (g *stubGame) Render(*core.Screen) {}

func init() {
	registry.Register("stub", func() registry.Game {
		return &stubGame{overAt: 5, score: 100}
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// tick delivers one tick addressed to m.
func tick(m Model) Model {
	next, _ := m.Update(TickMsg{ID: m.tickID})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 3, score: 250}
	m := NewModel(game, store, testConfig(), WithPlayer("alice"))
	m.Init()

	for range 10 {
		m = tick(m)
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}

	got := scores[0]
	if got.Player != "alice" || got.Score != 250 || got.Lines != 7 {
		t.Errorf("saved %+v", got.Result)
	}
	if got.Correct != 3 || got.Wrong != 2 {
		t.Errorf("quiz tally = %d/%d, expected 3/2", got.Correct, got.Wrong)
	}
	if game.best != 250 {
		t.Errorf("high score pushed to game = %d, expected 250", game.best)
	}
}

func TestModelSavesAgainAfterRestart(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 2, score: 50}
	m := NewModel(game, store, testConfig())
	m.Init()

	for range 3 {
		m = tick(m)
	}
	m, _ = press(m, runes("r"))
	for range 3 {
		m = tick(m)
	}

	stats, err := store.GetGameStats("stub")
	if err != nil {
		t.Fatalf("GetGameStats() error: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := NewModel(&stubGame{overAt: 1}, store, testConfig())
	m.Init()
	m = tick(m)

	if best, _ := store.HighScore("stub"); best != 0 {
		t.Errorf("zero score should not be recorded, best = %d", best)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, testConfig())
	m.Init()

	next, cmd := m.Update(TickMsg{ID: m.tickID + 1})
	m = next.(Model)
	if game.steps != 0 {
		t.Error("tick from another model should be ignored")
	}
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}

	m = tick(m)
	if game.steps != 1 {
		t.Errorf("steps = %d, expected 1", game.steps)
	}
}

func TestModelKeysReachGame(t *testing.T) {
	game := &stubGame{overAt: 100, questions: true}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, runes("3"))
	m = tick(m)

	if n := game.lastFrame.Count(core.ActionMoveLeft); n != 2 {
		t.Errorf("MoveLeft count = %d, expected 2", n)
	}
	if !game.lastFrame.Has(core.ActionAnswer3) {
		t.Error("answer key not delivered")
	}

	m = tick(m)
	if game.lastFrame.Has(core.ActionMoveLeft) {
		t.Error("input frame should be cleared after each tick")
	}
}

func TestModelClassicIgnoresAnswerKeys(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = press(m, runes("1"))
	tick(m)

	if game.lastFrame.Has(core.ActionAnswer1) {
		t.Error("answer keys should be disabled without questions")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{overAt: 100}, nil, testConfig())
	m.Init()

	m, cmd := press(m, runes("q"))
	if !m.Done() {
		t.Error("q should end the game")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitEmbedded(t *testing.T) {
	m := NewModel(&stubGame{overAt: 100}, nil, testConfig(), Embedded())
	m.Init()

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Done() {
		t.Error("esc should end the game")
	}
	if cmd != nil {
		t.Error("embedded model should leave quitting to its parent")
	}
}

func TestModelResizeReservesHelpRow(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, testConfig())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resized != [2]int{100, 29} {
		t.Errorf("game resized to %v, expected [100 29]", game.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
