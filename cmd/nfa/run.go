package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/internal/cli"
	"github.com/aretw0/nfa/internal/presentation/tui"
	"github.com/aretw0/nfa/pkg/observability"
)

var runCmd = &cobra.Command{
	Use:   "run <input>...",
	Short: "Simulate the automaton on each input",
	Long: `Prints ACCEPT or REJECT and the maximum number of simultaneously active
states for every input. Pass ε for the empty string.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trace, _ := cmd.Flags().GetBool("trace")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		a, err := loadAutomaton(cmd, logger, observability.LoggingHooks(logger))
		if err != nil {
			return err
		}

		_, err = cli.RunInputs(cmd.Context(), cmd.OutOrStdout(), a, cli.ParseInputs(args), cli.RunOptions{
			Trace:  trace,
			Styles: tui.NewStyles(),
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("trace", false, "Print the active set after every symbol")
}
