package domain

// StepEvent is emitted once per simulation frame.
type StepEvent struct {
	Input string
	Frame Frame
}

// RunEvent is emitted when a simulation has consumed its whole input.
type RunEvent struct {
	Verdict Verdict
	Frames  int
}

// Hooks are synchronous callbacks for observing simulations.
// Nil callbacks are skipped.
type Hooks struct {
	OnStep   func(*StepEvent)
	OnRunEnd func(*RunEvent)
}
