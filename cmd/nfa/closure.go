package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/pkg/domain"
)

var closureCmd = &cobra.Command{
	Use:   "closure <state>",
	Short: "Print the epsilon closure of a state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		a, err := loadAutomaton(cmd, logger, domain.Hooks{})
		if err != nil {
			return err
		}

		names, err := a.Closure(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "{%s}\n", strings.Join(names, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(closureCmd)
}
