package domain

import "sort"

// StateID is the index of a state inside its automaton's arena.
type StateID int

// NoState marks the absence of a state, e.g. an unset start state.
const NoState StateID = -1

// State is a named vertex of the automaton and owns its outgoing edges.
// Epsilon edges share the transition map under the Epsilon key.
type State struct {
	id          StateID
	name        string
	transitions map[Symbol]StateSet
}

// NewState creates a vertex with the given arena ID and name.
// States are created by the automaton; edges are only added through it.
func NewState(id StateID, name string) *State {
	return &State{
		id:          id,
		name:        name,
		transitions: make(map[Symbol]StateSet),
	}
}

// ID returns the arena index of the state.
func (s *State) ID() StateID {
	return s.id
}

// Name returns the unique name of the state.
func (s *State) Name() string {
	return s.name
}

func (s *State) String() string {
	return s.name
}

// AddTransition adds target to the destination set for sym.
func (s *State) AddTransition(sym Symbol, target *State) {
	dest, ok := s.transitions[sym]
	if !ok {
		dest = make(StateSet)
		s.transitions[sym] = dest
	}
	dest.Add(target)
}

// TransitionsOn returns the destinations for sym. The boolean is false when
// the state has no edge labelled sym; the returned set must not be modified.
func (s *State) TransitionsOn(sym Symbol) (StateSet, bool) {
	dest, ok := s.transitions[sym]
	if !ok || len(dest) == 0 {
		return nil, false
	}
	return dest, true
}

// Epsilons returns the destinations reachable by one epsilon edge.
func (s *State) Epsilons() (StateSet, bool) {
	return s.TransitionsOn(Epsilon)
}

// Symbols lists the labels that have at least one edge, runes ascending
// and Epsilon last.
func (s *State) Symbols() []Symbol {
	out := make([]Symbol, 0, len(s.transitions))
	for sym, dest := range s.transitions {
		if len(dest) > 0 {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool { return compareSymbols(out[i], out[j]) < 0 })
	return out
}
