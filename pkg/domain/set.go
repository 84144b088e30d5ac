package domain

import "sort"

// StateSet is a set of states keyed by their arena ID.
// The zero value (nil) is a valid empty set for reads; use NewStateSet
// or make before calling Add.
type StateSet map[StateID]*State

// NewStateSet returns a set holding the given states.
func NewStateSet(states ...*State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set.Add(s)
	}
	return set
}

// Add inserts s. Adding a state twice is a no-op.
func (set StateSet) Add(s *State) {
	set[s.id] = s
}

// Has reports whether s is a member.
func (set StateSet) Has(s *State) bool {
	if s == nil {
		return false
	}
	_, ok := set[s.id]
	return ok
}

// Len returns the cardinality of the set.
func (set StateSet) Len() int {
	return len(set)
}

// Union adds every member of other to set.
func (set StateSet) Union(other StateSet) {
	for id, s := range other {
		set[id] = s
	}
}

// Intersects reports whether the two sets share at least one state.
func (set StateSet) Intersects(other StateSet) bool {
	small, large := set, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if _, ok := large[id]; ok {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same states.
func (set StateSet) Equal(other StateSet) bool {
	if len(set) != len(other) {
		return false
	}
	for id := range set {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (set StateSet) Clone() StateSet {
	out := make(StateSet, len(set))
	out.Union(set)
	return out
}

// Sorted returns the members ordered by ID, which is declaration order.
func (set StateSet) Sorted() []*State {
	out := make([]*State, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Names returns the member names in declaration order.
func (set StateSet) Names() []string {
	sorted := set.Sorted()
	names := make([]string, len(sorted))
	for i, s := range sorted {
		names[i] = s.name
	}
	return names
}
