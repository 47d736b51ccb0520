package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/quiz"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Question deck tools",
	Long: `Inspect and check question decks.

A deck is a YAML file with a list of quizzes. Each quiz has a question, one
answer and one to three wrong answers:

  quizzes:
    - question: What is the capital of Australia?
      answer: Canberra
      wrong_answers: [Sydney, Melbourne, Perth]

Without --deck the game looks for ~/.quiztris/quizzes.yaml, then
./configs/quizzes.yaml, then uses the built-in deck.`,
}

var deckValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a deck and report every problem",
	Long: `Check a question deck. Without a path, checks the deck the game would
load from the default locations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeckValidate,
}

var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the built-in deck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.OutOrStdout().Write(quiz.DefaultDeckYAML())
	},
}

func init() {
	deckCmd.AddCommand(deckValidateCmd)
	deckCmd.AddCommand(deckShowCmd)
}

func runDeckValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		deck, err := quiz.LoadDeck("")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "ok: %d questions\n", deck.Len())
		return nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read deck: %w", err)
	}

	deck, err := quiz.ParseDeck(data)
	if err != nil {
		fmt.Fprintf(out, "%s: invalid deck\n", path)
		for _, e := range unwrapJoined(err) {
			fmt.Fprintf(out, "  - %v\n", e)
		}
		return errors.New("deck validation failed")
	}

	fmt.Fprintf(out, "%s: ok, %d questions\n", path, deck.Len())
	return nil
}

// unwrapJoined splits an errors.Join result into its parts.
func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
