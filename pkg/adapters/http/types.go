package http

import "github.com/aretw0/nfa/pkg/domain"

// StateRequest names one state.
type StateRequest struct {
	Name string `json:"name"`
}

// SigmaRequest declares one input symbol.
type SigmaRequest struct {
	Symbol string `json:"symbol"`
}

// TransitionRequest adds edges from one state. Exactly one of On and
// Epsilon must be set.
type TransitionRequest struct {
	From    string   `json:"from"`
	On      string   `json:"on,omitempty"`
	Epsilon bool     `json:"epsilon,omitempty"`
	To      []string `json:"to"`
}

// SimulateRequest runs one input. Trace adds every frame to the response.
type SimulateRequest struct {
	Input string `json:"input"`
	Trace bool   `json:"trace,omitempty"`
}

// SimulateResponse is a verdict, optionally with its frames.
type SimulateResponse struct {
	domain.Verdict
	Frames []FrameResponse `json:"frames,omitempty"`
}

// FrameResponse is one step of a trace. The first frame has index -1 and
// no symbol.
type FrameResponse struct {
	Index  int      `json:"index"`
	Symbol string   `json:"symbol,omitempty"`
	Active []string `json:"active"`
}

// ClosureResponse lists the epsilon closure of a state.
type ClosureResponse struct {
	State   string   `json:"state"`
	Closure []string `json:"closure"`
}

// MutationResponse reports the revision after a successful mutation.
type MutationResponse struct {
	Revision uint64 `json:"revision"`
}

// ErrorResponse carries a rejection reason.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newTraceResponse(run *domain.Run) SimulateResponse {
	resp := SimulateResponse{
		Verdict: run.Verdict,
		Frames:  make([]FrameResponse, 0, len(run.Frames)),
	}
	for _, f := range run.Frames {
		frame := FrameResponse{Index: f.Index, Active: f.Active.Names()}
		if f.Index >= 0 {
			frame.Symbol = f.Symbol.String()
		}
		resp.Frames = append(resp.Frames, frame)
	}
	return resp
}
