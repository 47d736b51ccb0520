// Package quiztris glues the falling-block engine and the quiz session into a
// playable game for the platform. Wrong answers push garbage rows into the
// well; the classic mode plays the engine alone.
package quiztris

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/quiztris/internal/config"
	"github.com/vovakirdan/quiztris/internal/core"
	"github.com/vovakirdan/quiztris/internal/quiz"
	"github.com/vovakirdan/quiztris/internal/registry"
	"github.com/vovakirdan/quiztris/internal/tetris"
)

// Mode selects whether questions are asked.
type Mode string

const (
	ModeQuiz    Mode = "quiz"
	ModeClassic Mode = "classic"
)

// Package-level settings applied by the CLI before a game is created.
var (
	configPath       string
	deckPath         string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDeckPath sets the custom question deck path. It takes precedence over
// the deck named in the config file.
func SetDeckPath(path string) {
	deckPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for both modes.
type Game struct {
	mode Mode
	rng  *rand.Rand

	grid    *tetris.Grid
	deck    *quiz.Deck
	session *quiz.Session

	cfg        config.QuiztrisConfig
	difficulty *config.DifficultyManager
	loadErr    error // config/deck problem shown in the HUD

	tick    uint64
	tickDur time.Duration

	answerElapsed time.Duration
	answerLimit   time.Duration
	punishments   int
	pieces        int

	highScore int
	paused    bool
	tooSmall  bool
}

// New creates a quiz mode game.
func New() *Game {
	return &Game{mode: ModeQuiz}
}

// NewClassic creates a game without questions.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("quiztris", func() registry.Game {
		return New()
	})
	registry.Register("tetris", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "tetris"
	}
	return "quiztris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic)"
	}
	return "Quiztris"
}

// AsksQuestions reports whether the quiz panel is active.
func (g *Game) AsksQuestions() bool {
	return g.mode == ModeQuiz
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.loadErr = nil

	cfg, err := config.LoadQuiztris(configPath)
	if err != nil {
		g.loadErr = err
	}
	if difficultyPreset != "" {
		config.ApplyQuiztrisPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if g.mode == ModeQuiz {
		path := deckPath
		if path == "" {
			path = cfg.Quiz.Deck
		}
		deck, err := quiz.LoadDeck(path)
		if err != nil {
			g.loadErr = errors.Join(g.loadErr, err)
			deck = quiz.DefaultDeck()
		}
		g.deck = deck
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(tickRate)

	g.grid = tetris.New(g.rng)
	if g.mode == ModeQuiz {
		g.session = quiz.NewSession(g.deck, g.rng)
	}
	g.start()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// start clears per-game counters. The engine and session are reset by the
// caller or freshly built.
func (g *Game) start() {
	g.tick = 0
	g.answerElapsed = 0
	g.punishments = 0
	g.pieces = 0
	g.paused = false
	g.answerLimit = g.currentTimeout()
}

// restart begins a new game keeping the loaded config, deck and RNG stream.
func (g *Game) restart() {
	g.grid.Reset()
	if g.session != nil {
		g.session.Reset()
	}
	g.start()
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.tooSmall = !core.NewRect(0, 0, w, h).Fits(g.minSize())
}

// SetHighScore sets the best score shown in the status panel.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.grid.GameOver() {
		g.paused = !g.paused
	}

	if g.grid.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	linesBefore := g.grid.Cleared()

	g.applyMoves(in)

	punished := false
	if g.session != nil {
		punished = g.updateQuiz(in)
	}

	g.grid.Tick(g.tickDur)
	if g.grid.TakeSpawned() {
		g.pieces++
	}

	return core.StepResult{
		State:    g.State(),
		Punished: punished,
		Cleared:  g.grid.Cleared() - linesBefore,
	}
}

// applyMoves forwards piece movement to the engine. Repeated key presses
// within one frame each count.
func (g *Game) applyMoves(in core.InputFrame) {
	for range in.Count(core.ActionMoveLeft) {
		g.grid.HorizontalMove(-1)
	}
	for range in.Count(core.ActionMoveRight) {
		g.grid.HorizontalMove(1)
	}
	for range in.Count(core.ActionRotate) {
		g.grid.Rotate()
	}
	for range in.Count(core.ActionSoftDrop) {
		if g.grid.Fall(false) == tetris.FallLocked && g.grid.TakeSpawned() {
			g.pieces++
		}
	}
}

// updateQuiz evaluates at most one answer per frame and runs the answer
// timer. Returns true if the well was punished.
func (g *Game) updateQuiz(in core.InputFrame) bool {
	for i, a := range core.AnswerActions {
		if !in.Has(a) {
			continue
		}
		switch g.session.Answer(i) {
		case quiz.OutcomeCorrect:
			g.nextQuestion()
			return false
		case quiz.OutcomeWrong:
			g.nextQuestion()
			return g.punish()
		}
		// Out-of-range choice: ignored, try the next pressed key.
	}

	if g.answerLimit <= 0 {
		return false
	}
	g.answerElapsed += g.tickDur
	if g.answerElapsed < g.answerLimit {
		return false
	}
	g.session.Expire()
	g.nextQuestion()
	if g.cfg.Quiz.PunishOnTimeout {
		return g.punish()
	}
	return false
}

func (g *Game) punish() bool {
	if g.grid.Punish() {
		g.punishments++
		return true
	}
	return false
}

// nextQuestion restarts the answer timer using the current difficulty.
func (g *Game) nextQuestion() {
	g.answerElapsed = 0
	g.answerLimit = g.currentTimeout()
}

func (g *Game) currentTimeout() time.Duration {
	if g.mode != ModeQuiz {
		return 0
	}
	ticks := int(g.tick)
	return g.difficulty.Timeout(g.cfg.Quiz.Timeout(), g.grid.Score(), ticks)
}

// timeLeft returns the remaining answer time, or zero when untimed.
func (g *Game) timeLeft() time.Duration {
	if g.answerLimit <= 0 {
		return 0
	}
	return max(g.answerLimit-g.answerElapsed, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.grid.Score(),
		Level:    g.grid.Level(),
		Lines:    g.grid.Cleared(),
		GameOver: g.grid.GameOver(),
		Paused:   g.paused,
	}
}

// QuizTally returns the right and wrong answer counts.
func (g *Game) QuizTally() (correct, wrong int) {
	if g.session == nil {
		return 0, 0
	}
	return g.session.Correct(), g.session.Wrong()
}

// LoadError returns the config or deck problem hit during Reset, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}
