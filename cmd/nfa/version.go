package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nfa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nfa version %s\n", strings.TrimSpace(nfa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
