package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/domain"
)

type edge struct {
	from   string
	to     []string
	symbol domain.Symbol
}

// Builder manages the automaton construction.
// Nothing is validated until Build, so states may be referenced before
// they are declared.
type Builder struct {
	name   string
	sigma  []rune
	order  []string
	states map[string]*StateBuilder
	start  string
	edges  []edge
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Name labels the automaton.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Sigma declares input symbols.
func (b *Builder) Sigma(symbols ...rune) *Builder {
	b.sigma = append(b.sigma, symbols...)
	return b
}

// State declares a state. If the state already exists, it returns the
// existing builder.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Build replays the declarations through the automaton's mutation API, in
// this order: sigma, states, start, finals, transitions. Every rejected call
// is reported.
func (b *Builder) Build(opts ...nfa.Option) (*nfa.NFA, error) {
	n := nfa.New(append([]nfa.Option{nfa.WithName(b.name)}, opts...)...)
	var errs []error

	for _, r := range b.sigma {
		if err := n.TryAddSigma(domain.Char(r)); err != nil {
			errs = append(errs, fmt.Errorf("sigma %q: %w", r, err))
		}
	}
	for _, name := range b.order {
		if err := n.TryAddState(name); err != nil {
			errs = append(errs, fmt.Errorf("state %q: %w", name, err))
		}
	}
	if b.start != "" {
		if err := n.TrySetStart(b.start); err != nil {
			errs = append(errs, fmt.Errorf("start: %w", err))
		}
	}
	for _, name := range b.order {
		if !b.states[name].final {
			continue
		}
		if err := n.TrySetFinal(name); err != nil {
			errs = append(errs, fmt.Errorf("final: %w", err))
		}
	}
	for _, e := range b.edges {
		if err := n.TryAddTransition(e.from, e.to, e.symbol); err != nil {
			errs = append(errs, fmt.Errorf("transition %s -%s-> %v: %w", e.from, e.symbol, e.to, err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build automaton: %w", errors.Join(errs...))
	}
	return n, nil
}
