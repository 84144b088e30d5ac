package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/testutils"
	"github.com/aretw0/nfa/pkg/domain"
)

type expectation struct {
	input     string
	accepted  bool
	maxCopies int
}

func runExpectations(t *testing.T, n *nfa.NFA, cases []expectation) {
	t.Helper()
	for _, tc := range cases {
		assert.Equal(t, tc.accepted, n.Accepts(tc.input), "Accepts(%q)", tc.input)
		assert.Equal(t, tc.maxCopies, n.MaxCopies(tc.input), "MaxCopies(%q)", tc.input)

		verdict := n.Simulate(tc.input)
		assert.Equal(t, domain.Verdict{Input: tc.input, Accepted: tc.accepted, MaxCopies: tc.maxCopies}, verdict)
	}
}

func closureNames(t *testing.T, n *nfa.NFA, name string) []string {
	t.Helper()
	s, ok := n.GetState(name)
	require.True(t, ok, "state %q", name)
	return n.EClosure(s).Names()
}

func TestTwoState(t *testing.T) {
	n := testutils.TwoState.Build(t)

	t.Run("Rejected mutations", func(t *testing.T) {
		assert.False(t, n.AddState("a"))
		assert.False(t, n.SetStart("c"))
		assert.False(t, n.SetFinal("d"))
		assert.False(t, n.AddTransition("c", []string{"a"}, domain.Char('0')))
		assert.False(t, n.AddTransition("a", []string{"b"}, domain.Char('3')))
		assert.False(t, n.AddTransition("b", []string{"d", "c"}, domain.Epsilon))
	})

	t.Run("Correctness", func(t *testing.T) {
		a, ok := n.GetState("a")
		require.True(t, ok)
		assert.Equal(t, "a", a.Name())
		again, _ := n.GetState("a")
		assert.Same(t, a, again)
		assert.True(t, n.IsStart("a"))
		assert.True(t, n.IsFinal("b"))
		assert.False(t, n.IsStart("b"))
		assert.False(t, n.IsFinal("a"))
	})

	t.Run("IsDFA", func(t *testing.T) {
		assert.False(t, n.IsDFA())
	})

	t.Run("EClosure", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, closureNames(t, n, "a"))
		assert.Equal(t, []string{"a", "b"}, closureNames(t, n, "b"))
	})

	t.Run("Simulation", func(t *testing.T) {
		runExpectations(t, n, []expectation{
			{"0", false, 1},
			{"1", true, 2},
			{"00", false, 1},
			{"101", true, 2},
			{"e", false, 1},
			{"", false, 1},
			{"2", false, 1},
			{"11", true, 2},
		})
	})
}

func TestBranching(t *testing.T) {
	n := testutils.Branching.Build(t)

	assert.False(t, n.AddState("q3"))
	assert.False(t, n.SetStart("q5"))
	assert.False(t, n.SetFinal("q6"))
	assert.False(t, n.AddTransition("q0", []string{"q5"}, domain.Char('0')))
	assert.False(t, n.AddTransition("q0", []string{"q3"}, domain.Char('3')))
	assert.False(t, n.AddTransition("q5", []string{"q0", "q2"}, domain.Epsilon))

	_, ok := n.GetState("q5")
	assert.False(t, ok)
	assert.True(t, n.IsStart("q0"))
	assert.True(t, n.IsFinal("q3"))
	assert.False(t, n.IsFinal("q6"))
	assert.False(t, n.IsDFA())

	assert.Equal(t, []string{"q0"}, closureNames(t, n, "q0"))
	assert.Equal(t, []string{"q1", "q2"}, closureNames(t, n, "q1"))
	assert.Equal(t, []string{"q3"}, closureNames(t, n, "q3"))
	assert.Equal(t, []string{"q4"}, closureNames(t, n, "q4"))

	runExpectations(t, n, []expectation{
		{"1111", true, 4},
		{"e", false, 1},
		{"0001100", false, 4},
		{"010011", true, 4},
		{"0101", false, 3},
	})
}

func TestHash(t *testing.T) {
	n := testutils.Hash.Build(t)

	assert.False(t, n.AddState("N"))
	assert.False(t, n.SetStart("Z"))
	assert.False(t, n.SetFinal("Y"))
	assert.False(t, n.AddTransition("W", []string{"K"}, domain.Char('0')))
	assert.False(t, n.AddTransition("W", []string{"W"}, domain.Char('3')))
	assert.False(t, n.AddTransition("ZZ", []string{"W", "Z"}, domain.Epsilon))

	i, ok := n.GetState("I")
	require.True(t, ok)
	dest, ok := i.TransitionsOn(domain.Char('1'))
	require.True(t, ok)
	assert.Equal(t, []string{"I", "N"}, dest.Names())
	assert.False(t, n.IsFinal("I"))
	assert.False(t, n.IsDFA())

	assert.Equal(t, []string{"W", "L", "I"}, closureNames(t, n, "W"))
	assert.Equal(t, []string{"N"}, closureNames(t, n, "N"))
	assert.Equal(t, []string{"L", "I"}, closureNames(t, n, "L"))
	assert.Equal(t, []string{"I"}, closureNames(t, n, "I"))

	runExpectations(t, n, []expectation{
		{"###", true, 3},
		{"111#00", true, 3},
		{"01#11##", true, 3},
		{"#01000###", false, 3},
		{"011#00010#", false, 3},
		{"", false, 3},
		{"23", false, 3},
	})
}

func TestEpsilonCycle(t *testing.T) {
	n := testutils.EpsilonCycle.Build(t)

	assert.False(t, n.IsDFA())
	for _, name := range []string{"p", "q", "r"} {
		assert.Equal(t, []string{"p", "q", "r"}, closureNames(t, n, name), "closure of %s", name)
	}

	runExpectations(t, n, []expectation{
		{"", true, 3},
		{"a", true, 3},
		{"b", true, 3},
		{"ab", true, 3},
		{"ba", true, 3},
		{"c", false, 3},
		{"e", false, 3},
	})
}

func TestEpsilonChain(t *testing.T) {
	n := testutils.EpsilonChain.Build(t)

	assert.False(t, n.IsDFA())
	assert.Equal(t, []string{"s", "t", "u", "v"}, closureNames(t, n, "s"))
	assert.Equal(t, []string{"v"}, closureNames(t, n, "v"))

	runExpectations(t, n, []expectation{
		{"", true, 4},
		{"x", true, 4},
		{"xy", true, 4},
		{"xyz", false, 4},
		{"z", false, 4},
		{"yx", false, 4},
	})
}

func TestFork(t *testing.T) {
	n := testutils.Fork.Build(t)

	assert.False(t, n.IsDFA())
	for _, name := range []string{"x", "y", "z"} {
		assert.Equal(t, []string{name}, closureNames(t, n, name))
	}

	runExpectations(t, n, []expectation{
		{"a", true, 2},
		{"ab", true, 2},
		{"aa", false, 2},
		{"b", false, 1},
		{"ba", false, 1},
	})
}

func TestLinear(t *testing.T) {
	n := testutils.Linear.Build(t)

	assert.True(t, n.IsDFA())
	for _, name := range []string{"a", "b", "c"} {
		assert.Equal(t, []string{name}, closureNames(t, n, name))
	}

	runExpectations(t, n, []expectation{
		{"01", true, 1},
		{"a", false, 1},
		{"012", false, 1},
		{"1a0", false, 1},
		{"b", false, 1},
		{"01#", false, 1},
	})
}

func TestNoStartState(t *testing.T) {
	n := nfa.New()
	require.True(t, n.AddState("only"))
	require.True(t, n.SetFinal("only"))

	assert.False(t, n.Accepts(""))
	assert.Equal(t, domain.NoCopies, n.MaxCopies(""))
	assert.Equal(t, domain.NoCopies, n.Simulate("x").MaxCopies)

	_, err := n.Trace("")
	assert.ErrorIs(t, err, domain.ErrNoStartState)

	_, ok := n.StartState()
	assert.False(t, ok)
}

func TestStartAndFinalMayCoincide(t *testing.T) {
	n := nfa.New()
	require.True(t, n.AddState("s"))
	require.True(t, n.SetStart("s"))
	require.True(t, n.SetFinal("s"))

	assert.True(t, n.IsStart("s"))
	assert.True(t, n.IsFinal("s"))
	assert.True(t, n.Accepts(""))
	assert.Equal(t, 1, n.MaxCopies(""))
}

func TestSetStart_LatestWins(t *testing.T) {
	n := testutils.TwoState.Build(t)

	require.True(t, n.SetStart("b"))
	assert.True(t, n.IsStart("b"))
	assert.False(t, n.IsStart("a"), "only the latest start state is reported")

	start, ok := n.StartState()
	require.True(t, ok)
	assert.Equal(t, "b", start.Name())

	// b is final, so the empty string is now accepted.
	assert.True(t, n.Accepts(""))
}

func TestUnknownNames(t *testing.T) {
	n := testutils.TwoState.Build(t)

	assert.False(t, n.IsStart("zz"))
	assert.False(t, n.IsFinal("zz"))
	_, ok := n.GetState("zz")
	assert.False(t, ok)
}
