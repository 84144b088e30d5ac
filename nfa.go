package nfa

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/pkg/domain"
)

// NFA is a nondeterministic finite automaton with epsilon transitions.
//
// States live in an arena indexed by domain.StateID; the automaton keeps the
// index of its start state rather than a flag on each state, so there is a
// single source of truth for start-ness.
//
// NFA is not safe for concurrent use. Wrap it in service.Automaton when it
// has to be shared.
type NFA struct {
	name     string
	states   []*domain.State
	byName   map[string]domain.StateID
	sigma    map[rune]struct{}
	final    domain.StateSet
	start    domain.StateID
	revision uint64

	hooks  domain.Hooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the NFA.
type Option func(*NFA)

// WithName labels the automaton in logs, diagrams and API responses.
func WithName(name string) Option {
	return func(n *NFA) {
		n.name = name
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *NFA) {
		n.logger = logger
	}
}

// WithHooks registers observability hooks fired during simulations.
func WithHooks(hooks domain.Hooks) Option {
	return func(n *NFA) {
		n.hooks = hooks
	}
}

// New creates an empty automaton: no states, empty sigma, no start state.
func New(opts ...Option) *NFA {
	n := &NFA{
		byName: make(map[string]domain.StateID),
		sigma:  make(map[rune]struct{}),
		final:  make(domain.StateSet),
		start:  domain.NoState,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = logging.NewNop()
	}
	return n
}

// Name returns the label given with WithName.
func (n *NFA) Name() string {
	return n.name
}

// Revision increases on every successful mutation.
func (n *NFA) Revision() uint64 {
	return n.revision
}

// AddState registers a new state. It returns false, changing nothing, when
// the name is taken.
func (n *NFA) AddState(name string) bool {
	return n.TryAddState(name) == nil
}

// TryAddState is AddState reporting why a call was rejected.
func (n *NFA) TryAddState(name string) error {
	if name == "" {
		return n.reject("add_state", domain.ErrEmptyName)
	}
	if _, exists := n.byName[name]; exists {
		return n.reject("add_state", fmt.Errorf("%w: %q", domain.ErrDuplicateState, name))
	}
	id := domain.StateID(len(n.states))
	n.states = append(n.states, domain.NewState(id, name))
	n.byName[name] = id
	n.revision++
	return nil
}

// AddSigma declares an input symbol. It is idempotent and refuses Epsilon.
func (n *NFA) AddSigma(sym domain.Symbol) bool {
	return n.TryAddSigma(sym) == nil
}

// AddSigmaRune declares the input symbol r.
func (n *NFA) AddSigmaRune(r rune) {
	n.AddSigma(domain.Char(r))
}

// TryAddSigma is AddSigma reporting why a call was rejected.
func (n *NFA) TryAddSigma(sym domain.Symbol) error {
	r, ok := sym.Rune()
	if !ok {
		return n.reject("add_sigma", domain.ErrEpsilonSigma)
	}
	if _, exists := n.sigma[r]; !exists {
		n.sigma[r] = struct{}{}
		n.revision++
	}
	return nil
}

// SetStart makes the named state the start state.
//
// Only the most recent call counts: a state stops being the start state
// as soon as another one is chosen. See IsStart.
func (n *NFA) SetStart(name string) bool {
	return n.TrySetStart(name) == nil
}

// TrySetStart is SetStart reporting why a call was rejected.
func (n *NFA) TrySetStart(name string) error {
	s, ok := n.GetState(name)
	if !ok {
		return n.reject("set_start", fmt.Errorf("%w: %q", domain.ErrUnknownState, name))
	}
	if n.start != s.ID() {
		n.start = s.ID()
		n.revision++
	}
	return nil
}

// SetFinal marks the named state as accepting.
func (n *NFA) SetFinal(name string) bool {
	return n.TrySetFinal(name) == nil
}

// TrySetFinal is SetFinal reporting why a call was rejected.
func (n *NFA) TrySetFinal(name string) error {
	s, ok := n.GetState(name)
	if !ok {
		return n.reject("set_final", fmt.Errorf("%w: %q", domain.ErrUnknownState, name))
	}
	if !n.final.Has(s) {
		n.final.Add(s)
		n.revision++
	}
	return nil
}

// AddTransition adds an edge labelled sym from one state to each of the
// target states.
//
// The call fails without changing anything when from or any target is
// unknown, or when sym is neither Epsilon nor declared in sigma. On success
// the symbol is registered into sigma as a side effect.
func (n *NFA) AddTransition(from string, to []string, sym domain.Symbol) bool {
	return n.TryAddTransition(from, to, sym) == nil
}

// TryAddTransition is AddTransition reporting why a call was rejected.
func (n *NFA) TryAddTransition(from string, to []string, sym domain.Symbol) error {
	// 1. Validate everything before the first edge is written.
	src, ok := n.GetState(from)
	if !ok {
		return n.reject("add_transition", fmt.Errorf("%w: %q", domain.ErrUnknownState, from))
	}
	if r, isChar := sym.Rune(); isChar {
		if _, declared := n.sigma[r]; !declared {
			return n.reject("add_transition", fmt.Errorf("%w: %q", domain.ErrUndeclaredSymbol, r))
		}
	}
	targets := make([]*domain.State, 0, len(to))
	for _, name := range to {
		dst, ok := n.GetState(name)
		if !ok {
			return n.reject("add_transition", fmt.Errorf("%w: %q", domain.ErrUnknownState, name))
		}
		targets = append(targets, dst)
	}

	// 2. Apply.
	for _, dst := range targets {
		src.AddTransition(sym, dst)
	}
	if r, isChar := sym.Rune(); isChar {
		n.sigma[r] = struct{}{}
	}
	n.revision++
	return nil
}

func (n *NFA) reject(op string, err error) error {
	n.logger.Debug("mutation rejected", "automaton", n.name, "op", op, "err", err)
	return err
}

// GetState looks a state up by name.
func (n *NFA) GetState(name string) (*domain.State, bool) {
	id, ok := n.byName[name]
	if !ok {
		return nil, false
	}
	return n.states[id], true
}

// IsStart reports whether name is the current start state. Unknown names
// report false.
func (n *NFA) IsStart(name string) bool {
	id, ok := n.byName[name]
	return ok && id == n.start
}

// IsFinal reports whether name is an accepting state. Unknown names report
// false.
func (n *NFA) IsFinal(name string) bool {
	s, ok := n.GetState(name)
	return ok && n.final.Has(s)
}

// StartState returns the start state, if one was set.
func (n *NFA) StartState() (*domain.State, bool) {
	if n.start == domain.NoState {
		return nil, false
	}
	return n.states[n.start], true
}

// FinalStates returns a copy of the accepting set.
func (n *NFA) FinalStates() domain.StateSet {
	return n.final.Clone()
}

// States returns every state in declaration order.
func (n *NFA) States() []*domain.State {
	out := make([]*domain.State, len(n.states))
	copy(out, n.states)
	return out
}

// Len returns the number of states.
func (n *NFA) Len() int {
	return len(n.states)
}

// Sigma returns the declared alphabet in ascending order.
func (n *NFA) Sigma() []rune {
	out := make([]rune, 0, len(n.sigma))
	for r := range n.sigma {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasSymbol reports whether r is declared in sigma.
func (n *NFA) HasSymbol(r rune) bool {
	_, ok := n.sigma[r]
	return ok
}

// Edges lists every transition ordered by source, symbol and target.
func (n *NFA) Edges() []domain.Edge {
	var edges []domain.Edge
	for _, src := range n.states {
		for _, sym := range src.Symbols() {
			dest, _ := src.TransitionsOn(sym)
			for _, dst := range dest.Sorted() {
				edges = append(edges, domain.Edge{From: src, To: dst, Symbol: sym})
			}
		}
	}
	return edges
}
