package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/domain"
)

// Edge is a compact transition description used by the fixtures.
type Edge struct {
	From string
	To   []string
	On   domain.Symbol
}

// Fixture describes one scenario automaton.
type Fixture struct {
	Name   string
	Sigma  []rune
	States []string
	Start  string
	Final  []string
	Edges  []Edge
}

// Build constructs the fixture through the public mutation API and fails the
// test immediately if any legal mutation is rejected.
func (f Fixture) Build(t testing.TB, opts ...nfa.Option) *nfa.NFA {
	t.Helper()

	n := nfa.New(append([]nfa.Option{nfa.WithName(f.Name)}, opts...)...)
	for _, r := range f.Sigma {
		require.True(t, n.AddSigma(domain.Char(r)), "sigma %q", r)
	}
	for _, s := range f.States {
		require.True(t, n.AddState(s), "state %q", s)
	}
	if f.Start != "" {
		require.True(t, n.SetStart(f.Start), "start %q", f.Start)
	}
	for _, s := range f.Final {
		require.True(t, n.SetFinal(s), "final %q", s)
	}
	for _, e := range f.Edges {
		require.True(t, n.AddTransition(e.From, e.To, e.On), "edge %s -%s-> %v", e.From, e.On, e.To)
	}
	return n
}

// TwoState: a (start) loops on 0, moves to b (final) on 1; b falls back to a on epsilon.
var TwoState = Fixture{
	Name:   "two-state",
	Sigma:  []rune{'0', '1'},
	States: []string{"a", "b"},
	Start:  "a",
	Final:  []string{"b"},
	Edges: []Edge{
		{From: "a", To: []string{"a"}, On: domain.Char('0')},
		{From: "a", To: []string{"b"}, On: domain.Char('1')},
		{From: "b", To: []string{"a"}, On: domain.Epsilon},
	},
}

// Branching: q0 guesses where a trailing run of 1s starts.
var Branching = Fixture{
	Name:   "branching",
	Sigma:  []rune{'0', '1'},
	States: []string{"q0", "q1", "q2", "q3", "q4"},
	Start:  "q0",
	Final:  []string{"q3"},
	Edges: []Edge{
		{From: "q0", To: []string{"q0"}, On: domain.Char('0')},
		{From: "q0", To: []string{"q0"}, On: domain.Char('1')},
		{From: "q0", To: []string{"q1"}, On: domain.Char('1')},
		{From: "q1", To: []string{"q2"}, On: domain.Epsilon},
		{From: "q2", To: []string{"q4"}, On: domain.Char('0')},
		{From: "q2", To: []string{"q2", "q3"}, On: domain.Char('1')},
		{From: "q4", To: []string{"q1"}, On: domain.Char('0')},
	},
}

// Hash: W, L and I are chained by epsilon edges, N is reached on '#'.
var Hash = Fixture{
	Name:   "hash",
	Sigma:  []rune{'#', '0', '1'},
	States: []string{"W", "L", "I", "N"},
	Start:  "W",
	Final:  []string{"N"},
	Edges: []Edge{
		{From: "W", To: []string{"N"}, On: domain.Char('#')},
		{From: "W", To: []string{"L"}, On: domain.Epsilon},
		{From: "L", To: []string{"L", "N"}, On: domain.Char('0')},
		{From: "L", To: []string{"I"}, On: domain.Epsilon},
		{From: "I", To: []string{"I"}, On: domain.Char('1')},
		{From: "I", To: []string{"N"}, On: domain.Char('1')},
		{From: "N", To: []string{"W"}, On: domain.Char('#')},
	},
}

// EpsilonCycle: p -> q -> r -> p on epsilon; q loops on a, r loops on b.
var EpsilonCycle = Fixture{
	Name:   "epsilon-cycle",
	Sigma:  []rune{'a', 'b'},
	States: []string{"p", "q", "r"},
	Start:  "p",
	Final:  []string{"r"},
	Edges: []Edge{
		{From: "p", To: []string{"q"}, On: domain.Epsilon},
		{From: "q", To: []string{"r"}, On: domain.Epsilon},
		{From: "r", To: []string{"p"}, On: domain.Epsilon},
		{From: "q", To: []string{"q"}, On: domain.Char('a')},
		{From: "r", To: []string{"r"}, On: domain.Char('b')},
	},
}

// EpsilonChain: s -> t -> u -> v on epsilon; t loops on x, u loops on y.
var EpsilonChain = Fixture{
	Name:   "epsilon-chain",
	Sigma:  []rune{'x', 'y'},
	States: []string{"s", "t", "u", "v"},
	Start:  "s",
	Final:  []string{"v"},
	Edges: []Edge{
		{From: "s", To: []string{"t"}, On: domain.Epsilon},
		{From: "t", To: []string{"u"}, On: domain.Epsilon},
		{From: "u", To: []string{"v"}, On: domain.Epsilon},
		{From: "t", To: []string{"t"}, On: domain.Char('x')},
		{From: "u", To: []string{"u"}, On: domain.Char('y')},
	},
}

// Fork: x forks to y and z on a; y reaches z on b.
var Fork = Fixture{
	Name:   "fork",
	Sigma:  []rune{'a', 'b'},
	States: []string{"x", "y", "z"},
	Start:  "x",
	Final:  []string{"z"},
	Edges: []Edge{
		{From: "x", To: []string{"y"}, On: domain.Char('a')},
		{From: "x", To: []string{"z"}, On: domain.Char('a')},
		{From: "y", To: []string{"z"}, On: domain.Char('b')},
	},
}

// Linear: accepts exactly "01"; structurally a DFA.
var Linear = Fixture{
	Name:   "linear",
	Sigma:  []rune{'0', '1'},
	States: []string{"a", "b", "c"},
	Start:  "a",
	Final:  []string{"c"},
	Edges: []Edge{
		{From: "a", To: []string{"b"}, On: domain.Char('0')},
		{From: "b", To: []string{"c"}, On: domain.Char('1')},
	},
}

// All lists every fixture, for property tests.
var All = []Fixture{TwoState, Branching, Hash, EpsilonCycle, EpsilonChain, Fork, Linear}

// TwoStateYAML is TwoState as a definition document.
const TwoStateYAML = `name: two-state
sigma: ["0", "1"]
states: [a, b]
start: a
final: [b]
transitions:
  - {from: a, on: "0", to: [a]}
  - {from: a, on: "1", to: [b]}
  - {from: b, epsilon: true, to: [a]}
`

// WriteFile writes content to name inside a fresh temp dir and returns the
// absolute path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path, err := filepath.Abs(filepath.Join(dir, name))
	require.NoError(t, err, "Failed to get absolute path for temp file")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
