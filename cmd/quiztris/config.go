package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration as YAML. Save it to
~/.quiztris/configs/quiztris.yaml or ./configs/quiztris.yaml and edit it,
or pass it to play with --config.

Examples:
  quiztris config > ~/.quiztris/configs/quiztris.yaml
  quiztris config validate ./my-quiztris.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.OutOrStdout().Write(config.DefaultYAML())
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadQuiztris(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, answer timeout %s\n", args[0], cfg.Quiz.Timeout())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
