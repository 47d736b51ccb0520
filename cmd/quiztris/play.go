package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/config"
	"github.com/vovakirdan/quiztris/internal/games/quiztris"
	"github.com/vovakirdan/quiztris/internal/platform/tui"
	"github.com/vovakirdan/quiztris/internal/registry"
	"github.com/vovakirdan/quiztris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDeck       string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (quiztris if omitted).

Controls:
  Left/H, Right/L  - Move the piece
  Up/K             - Rotate
  Down/J           - Drop one row
  1-4              - Answer the question
  P                - Pause
  R                - Restart
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer answer time, no penalty for running out of time
  normal - Answer time shrinks as your score grows
  hard   - Short answer time that keeps shrinking
  fixed  - Answer time never changes

Examples:
  quiztris play
  quiztris play tetris
  quiztris play --difficulty easy
  quiztris play --deck ./capitals.yaml
  quiztris play --config ./my-quiztris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape a game before it is created.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagDeck, "deck", "", "Path to a question deck YAML")
}

// applyGameFlags validates the game flags and hands them to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	quiztris.SetConfigPath(flagConfig)
	quiztris.SetDeckPath(flagDeck)
	quiztris.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "quiztris"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'quiztris list' to see available games", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	warnLoadError(game)

	logger, closer, err := gameLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openStore opens the session leaderboard. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open()
	if err != nil {
		cliLogger.Warn("scores will not be kept", "error", err)
		return nil
	}
	return store
}

// warnLoadError reports config or deck problems before the alt screen hides
// stderr. The game itself falls back to defaults.
func warnLoadError(game registry.Game) {
	probe, ok := game.(interface{ LoadError() error })
	if !ok {
		return
	}
	game.Reset(runtimeConfig())
	if err := probe.LoadError(); err != nil {
		cliLogger.Warn("using defaults", "error", err)
	}
}
