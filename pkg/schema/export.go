package schema

import (
	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/domain"
)

// Export describes n as a Definition. Edges that share a source and a
// symbol are grouped into one Transition, and empty destination sets are
// omitted. Compiling the result yields an automaton with the same behaviour.
func Export(n *nfa.NFA) *Definition {
	d := &Definition{
		Name:   n.Name(),
		Sigma:  make([]string, 0),
		States: make([]string, 0, n.Len()),
	}

	for _, r := range n.Sigma() {
		d.Sigma = append(d.Sigma, string(r))
	}
	for _, s := range n.States() {
		d.States = append(d.States, s.Name())
	}
	if start, ok := n.StartState(); ok {
		d.Start = start.Name()
	}
	d.Final = n.FinalStates().Names()

	for _, s := range n.States() {
		for _, sym := range s.Symbols() {
			dest, _ := s.TransitionsOn(sym)
			t := Transition{From: s.Name(), To: dest.Names()}
			if r, isChar := sym.Rune(); isChar {
				t.On = string(r)
			} else {
				t.Epsilon = true
			}
			d.Transitions = append(d.Transitions, t)
		}
	}
	return d
}

// Symbol returns the transition label as shown in diagrams and tables.
func (t Transition) Symbol() string {
	if t.Epsilon {
		return domain.EpsilonLabel
	}
	return t.On
}
