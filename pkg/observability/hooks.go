package observability

import (
	"log/slog"

	"github.com/aretw0/nfa/pkg/domain"
)

// LoggingHooks logs every frame and run at Debug.
func LoggingHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("simulation_step",
				"input", e.Input,
				"index", e.Frame.Index,
				"symbol", e.Frame.Symbol.String(),
				"active", e.Frame.Active.Names(),
			)
		},
		OnRunEnd: func(e *domain.RunEvent) {
			logger.Debug("simulation_end",
				"input", e.Verdict.Input,
				"accepted", e.Verdict.Accepted,
				"max_copies", e.Verdict.MaxCopies,
				"frames", e.Frames,
			)
		},
	}
}

// Combine fans each event out to every non-nil callback, in order.
func Combine(hooks ...domain.Hooks) domain.Hooks {
	var steps []func(*domain.StepEvent)
	var ends []func(*domain.RunEvent)
	for _, h := range hooks {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnRunEnd != nil {
			ends = append(ends, h.OnRunEnd)
		}
	}

	var combined domain.Hooks
	if len(steps) > 0 {
		combined.OnStep = func(e *domain.StepEvent) {
			for _, fn := range steps {
				fn(e)
			}
		}
	}
	if len(ends) > 0 {
		combined.OnRunEnd = func(e *domain.RunEvent) {
			for _, fn := range ends {
				fn(e)
			}
		}
	}
	return combined
}
