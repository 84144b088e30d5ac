/*
Package nfa models nondeterministic finite automata with epsilon transitions
and simulates them against input strings.

The simulation tracks the set of concurrently active states rather than a
single current state. Each input symbol steps every active state and then
epsilon-closes the result, so the automaton is never "stuck" in one branch.

# Usage

Build an automaton through the mutation API, then query it.

	n := nfa.New()
	n.AddSigmaRune('0')
	n.AddSigmaRune('1')
	n.AddState("a")
	n.AddState("b")
	n.SetStart("a")
	n.SetFinal("b")
	n.AddTransition("a", []string{"a"}, domain.Char('0'))
	n.AddTransition("a", []string{"b"}, domain.Char('1'))
	n.AddTransition("b", []string{"a"}, domain.Epsilon)

	n.Accepts("101")  // true
	n.MaxCopies("1")  // 2
	n.IsDFA()         // false, b has an epsilon edge

Mutations report failure through their boolean result and never leave a
partial change behind. The Try* variants return the reason as an error
wrapping one of the domain sentinel errors.

Package dsl offers a fluent builder and package schema compiles YAML or JSON
definition documents.
*/
package nfa
