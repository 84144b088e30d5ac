package domain

// NoCopies is the MaxCopies result when no start state is configured.
// It can never be confused with a real count, which is always positive.
const NoCopies = -1

// Edge is a single labelled transition, used for introspection.
type Edge struct {
	From   *State
	To     *State
	Symbol Symbol
}

// Frame is the active set after consuming Input[:Index+1].
// The first frame of a run has Index -1 and holds the start closure.
type Frame struct {
	Index  int
	Symbol Symbol
	Active StateSet
}

// Verdict summarizes a simulation.
type Verdict struct {
	Input     string `json:"input"`
	Accepted  bool   `json:"accepted"`
	MaxCopies int    `json:"max_copies"`
}

// Run is the full record of a simulation.
type Run struct {
	Frames []Frame
	Verdict
}

// Final returns the active set after the whole input was consumed.
func (r *Run) Final() StateSet {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1].Active
}
