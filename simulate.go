package nfa

import (
	"github.com/aretw0/nfa/pkg/domain"
)

// EClosure returns every state reachable from s through epsilon edges only,
// s included. Epsilon cycles terminate: the visited set is local to the call.
func (n *NFA) EClosure(s *domain.State) domain.StateSet {
	closure := domain.NewStateSet(s)
	stack := []*domain.State{s}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		eps, ok := current.Epsilons()
		if !ok {
			continue
		}
		for _, next := range eps {
			if closure.Has(next) {
				continue
			}
			closure.Add(next)
			stack = append(stack, next)
		}
	}
	return closure
}

// Step returns the union of the destinations on r of every state in set.
// Symbols outside sigma yield the empty set.
func (n *NFA) Step(set domain.StateSet, r rune) domain.StateSet {
	next := make(domain.StateSet)
	if !n.HasSymbol(r) {
		return next
	}
	sym := domain.Char(r)
	for _, s := range set {
		if dest, ok := s.TransitionsOn(sym); ok {
			next.Union(dest)
		}
	}
	return next
}

// Accepts reports whether the automaton accepts s. It is false when no
// start state is set.
func (n *NFA) Accepts(s string) bool {
	run, err := n.Trace(s)
	if err != nil {
		return false
	}
	return run.Accepted
}

// MaxCopies returns the largest active set seen while simulating s, counting
// the start closure before any input is read. It returns domain.NoCopies
// when no start state is set.
func (n *NFA) MaxCopies(s string) int {
	run, err := n.Trace(s)
	if err != nil {
		return domain.NoCopies
	}
	return run.MaxCopies
}

// Simulate runs s once and reports both membership and max copies.
func (n *NFA) Simulate(s string) domain.Verdict {
	run, err := n.Trace(s)
	if err != nil {
		return domain.Verdict{Input: s, MaxCopies: domain.NoCopies}
	}
	return run.Verdict
}

// Trace simulates s and records the active set after every symbol.
//
// Acceptance is only checked once the whole input is consumed. An empty
// active set stays empty, so the remaining input is still recorded but no
// longer stepped.
func (n *NFA) Trace(s string) (*domain.Run, error) {
	start, ok := n.StartState()
	if !ok {
		n.logger.Debug("simulation without start state", "automaton", n.name)
		return nil, domain.ErrNoStartState
	}

	run := &domain.Run{Verdict: domain.Verdict{Input: s}}
	active := n.EClosure(start)
	n.record(run, domain.Frame{Index: -1, Symbol: domain.Epsilon, Active: active})

	for i, r := range []rune(s) {
		next := make(domain.StateSet)
		if active.Len() > 0 {
			for _, t := range n.Step(active, r) {
				next.Union(n.EClosure(t))
			}
		}
		active = next
		n.record(run, domain.Frame{Index: i, Symbol: domain.Char(r), Active: active})
	}

	run.Accepted = active.Intersects(n.final)
	if n.hooks.OnRunEnd != nil {
		n.hooks.OnRunEnd(&domain.RunEvent{Verdict: run.Verdict, Frames: len(run.Frames)})
	}
	return run, nil
}

func (n *NFA) record(run *domain.Run, frame domain.Frame) {
	run.Frames = append(run.Frames, frame)
	if size := frame.Active.Len(); size > run.MaxCopies {
		run.MaxCopies = size
	}
	if n.hooks.OnStep != nil {
		n.hooks.OnStep(&domain.StepEvent{Input: run.Input, Frame: frame})
	}
}

// IsDFA reports whether the transition structure is deterministic: no
// epsilon edges anywhere and at most one destination per state and declared
// symbol. It does not compare languages.
func (n *NFA) IsDFA() bool {
	for _, s := range n.states {
		if _, ok := s.Epsilons(); ok {
			return false
		}
		for r := range n.sigma {
			if dest, ok := s.TransitionsOn(domain.Char(r)); ok && dest.Len() > 1 {
				return false
			}
		}
	}
	return true
}
