// quiztris is a falling-block puzzle for the terminal where every wrong quiz
// answer pushes a garbage row into the well.
//
// Usage:
//
//	quiztris play [game]        - Play quiztris (default) or classic tetris
//	quiztris menu               - Pick a game interactively
//	quiztris list               - List available games
//	quiztris serve              - Start SSH server for remote play
//	quiztris deck validate      - Check a question deck
//	quiztris config             - Print the default config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write game events to a log file
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/quiztris/internal/games/quiztris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		cliLogger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quiztris",
	Short: "Quiztris - falling blocks with a quiz penalty",
	Long: `Quiztris is a falling-block puzzle played in the terminal. A question
is always on screen: answer it with keys 1-4. Every wrong answer, or a
question left to time out, pushes a garbage row up from the bottom of the
well.

Available commands:
  play     - Play a game directly
  menu     - Interactive game picker menu
  list     - Show all available games
  serve    - Start SSH server for remote play
  deck     - Question deck tools
  config   - Print the default configuration

Examples:
  quiztris play
  quiztris play tetris
  quiztris play --deck ./history.yaml --difficulty hard
  quiztris serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(configCmd)
}
