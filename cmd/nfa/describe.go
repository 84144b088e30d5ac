package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/internal/cli"
	"github.com/aretw0/nfa/pkg/domain"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe states, alphabet and transitions",
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
		return cli.Describe(cmd.OutOrStdout(), a)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
