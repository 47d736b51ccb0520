package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiztris/internal/core"
	"github.com/vovakirdan/quiztris/internal/registry"
	"github.com/vovakirdan/quiztris/internal/storage"
)

// helpRows is the number of terminal rows kept for the key help line.
const helpRows = 1

// Optional capabilities a game may implement. The platform checks for them
// so registry.Game stays minimal.
type (
	resizer interface {
		Resize(w, h int)
	}
	highScorer interface {
		SetHighScore(score int)
	}
	quizTallier interface {
		QuizTally() (correct, wrong int)
	}
	questioner interface {
		AsksQuestions() bool
	}
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // whether the score was saved for the current game over
	embedded   bool // quit hands control back to a parent model
	tickID     uint64
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer sets the player name recorded with scores.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// Embedded makes the quit key end the game without quitting the program.
// The parent model checks Done.
func Embedded() ModelOption {
	return func(m *Model) {
		m.embedded = true
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultGameKeyMap()
	if q, ok := game.(questioner); !ok || !q.AsksQuestions() {
		keys = ClassicKeyMap()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickID:     nextTickID(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func gameRows(h int) int {
	return max(h-helpRows, 0)
}

// gameConfig is the runtime config the game sees: the help row is not
// available to it.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameRows(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.refreshHighScore()
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; it
// freezes itself while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, gameRows(msg.Height))
	}
	return m, nil
}

// handleTick steps the game once with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Punished {
		m.logger.Debug("garbage row added", "game", m.game.ID(), "score", m.gameState.Score)
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		// Restarted.
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// saveScore records the finished game on the leaderboard. Failures are
// logged; the game goes on regardless.
func (m *Model) saveScore() {
	st := m.gameState
	logger := m.logger.With("game", m.game.ID(), "score", st.Score, "lines", st.Lines, "level", st.Level)

	if m.store == nil || st.Score <= 0 {
		logger.Info("game over")
		return
	}

	res := storage.Result{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  st.Score,
		Lines:  st.Lines,
		Level:  st.Level,
	}
	if q, ok := m.game.(quizTallier); ok {
		res.Correct, res.Wrong = q.QuizTally()
	}

	if _, err := m.store.SaveScore(res); err != nil {
		logger.Warn("cannot save score", "error", err)
		return
	}
	rank, err := m.store.Rank(res.GameID, res.Score)
	if err != nil {
		logger.Warn("cannot rank score", "error", err)
	}
	logger.Info("game over", "rank", rank, "correct", res.Correct, "wrong", res.Wrong)
	m.refreshHighScore()
}

// refreshHighScore passes the leaderboard best to games that show it.
func (m Model) refreshHighScore() {
	hs, ok := m.game.(highScorer)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot load high score", "game", m.game.ID(), "error", err)
		return
	}
	hs.SetHighScore(best)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Done reports whether the player asked to leave the game.
func (m Model) Done() bool {
	return m.quitting
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
