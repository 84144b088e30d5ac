package dsl

import (
	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/domain"
)

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name    string
	final   bool
	builder *Builder
}

// Start makes this the start state. The last state marked wins.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.start = s.name
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On adds an edge on symbol to each target.
func (s *StateBuilder) On(symbol rune, targets ...string) *StateBuilder {
	return s.add(domain.Char(symbol), targets)
}

// Epsilon adds an epsilon edge to each target.
func (s *StateBuilder) Epsilon(targets ...string) *StateBuilder {
	return s.add(domain.Epsilon, targets)
}

// State continues with another state of the same builder.
func (s *StateBuilder) State(name string) *StateBuilder {
	return s.builder.State(name)
}

// Build finishes the whole automaton, not just this state.
func (s *StateBuilder) Build(opts ...nfa.Option) (*nfa.NFA, error) {
	return s.builder.Build(opts...)
}

func (s *StateBuilder) add(sym domain.Symbol, targets []string) *StateBuilder {
	s.builder.edges = append(s.builder.edges, edge{
		from:   s.name,
		to:     append([]string(nil), targets...),
		symbol: sym,
	})
	return s
}
