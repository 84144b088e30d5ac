package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa/internal/testutils"
)

// execute runs the root command with args after restoring every flag to its
// default, since cobra commands are package globals.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nfa version ")
}

func TestRun(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)

	out, err := execute(t, "run", "-f", path, "1", "ε", "00")
	require.NoError(t, err)
	assert.Contains(t, out, "ACCEPT")
	assert.Contains(t, out, `"1" (max copies 2)`)
	assert.Contains(t, out, "ε (max copies 1)")
	assert.Contains(t, out, `"00" (max copies 1)`)
}

func TestRun_Trace(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)

	out, err := execute(t, "run", "-f", path, "--trace", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "{a, b}")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, "run", "-f", t.TempDir()+"/none.yaml", "1")
	assert.ErrorContains(t, err, "failed to load automaton")
}

func TestClosure(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)

	out, err := execute(t, "closure", "-f", path, "b")
	require.NoError(t, err)
	assert.Equal(t, "{a, b}\n", out)

	_, err = execute(t, "closure", "-f", path, "ghost")
	assert.ErrorContains(t, err, "unknown state")
}

func TestDFA(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)

	out, err := execute(t, "dfa", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestGraph(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)

	out, err := execute(t, "graph", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.NotContains(t, out, "classDef")

	out, err = execute(t, "graph", "-f", path, "--input", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "class s1 active;")
}

func TestDescribe(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)

	out, err := execute(t, "describe", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# two-state")
}

func TestValidate(t *testing.T) {
	good := testutils.WriteFile(t, "good.yaml", testutils.TwoStateYAML)
	out, err := execute(t, "validate", "-f", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Definition is valid!")

	bad := testutils.WriteFile(t, "bad.yaml", "states: [a]\nstart: b\nfinal: [c]\n")
	out, err = execute(t, "validate", "-f", bad)
	assert.ErrorContains(t, err, "validation failed")
	assert.Contains(t, out, `start: unknown state (got "b")`)
	assert.Contains(t, out, `final[0]: unknown state (got "c")`)
}

func TestLogLevel(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)
	_, err := execute(t, "dfa", "-f", path, "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestMCP_UnknownTransport(t *testing.T) {
	path := testutils.WriteFile(t, "nfa.yaml", testutils.TwoStateYAML)
	_, err := execute(t, "mcp", "-f", path, "--transport", "carrier-pigeon")
	assert.ErrorContains(t, err, "unknown transport")
}
