package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/pkg/domain"
)

var dfaCmd = &cobra.Command{
	Use:   "dfa",
	Short: "Report whether the automaton is deterministic",
	Long:  `Prints true when no state has an epsilon edge and no state has two destinations on one symbol.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		a, err := loadAutomaton(cmd, logger, domain.Hooks{})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.IsDFA())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dfaCmd)
}
