package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/internal/cli"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/service"
)

var rootCmd = &cobra.Command{
	Use:   "nfa",
	Short: "nfa simulates nondeterministic finite automata",
	Long: `nfa loads an automaton with epsilon transitions from a YAML or JSON
definition and answers membership, epsilon closure and determinism queries,
from the command line or as an HTTP or MCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "nfa.yaml", "Automaton definition (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
}

// newLogger builds the stderr logger selected by --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// loadAutomaton compiles the --file definition and wraps it for shared use.
func loadAutomaton(cmd *cobra.Command, logger *slog.Logger, hooks domain.Hooks, opts ...service.Option) (*service.Automaton, error) {
	file, _ := cmd.Flags().GetString("file")
	n, err := cli.LoadAutomaton(cli.Config{File: file, Logger: logger, Hooks: hooks})
	if err != nil {
		return nil, err
	}
	return service.New(n, append([]service.Option{service.WithLogger(logger)}, opts...)...), nil
}
