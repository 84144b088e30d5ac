package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/cli"
	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/domain"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of states and transitions.
With --input, states active while simulating that input are highlighted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		a, err := loadAutomaton(cmd, logger, domain.Hooks{})
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("input") {
			raw, _ := cmd.Flags().GetString("input")
			run, err := a.Trace(cmd.Context(), cli.ParseInput(raw))
			if err != nil {
				return err
			}
			overlay = graph.OverlayFromRun(run)
		}

		return a.View(func(n *nfa.NFA) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(n, overlay))
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Highlight the states visited while simulating this input")
}
