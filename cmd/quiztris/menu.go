package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/platform/tui"
	"github.com/vovakirdan/quiztris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab for the
scoreboard. After a game ends you return to the menu. Scores are kept until
the program exits.

Examples:
  quiztris menu
  quiztris menu --fps 30 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closer, err := gameLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			cliLogger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}

		// A zero seed makes every game different.
		cfg.Seed = flagSeed
		if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
	}
}
