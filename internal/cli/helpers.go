package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/aretw0/nfa/pkg/domain"
)

// ParseInput maps a command-line argument to simulation input. The literal
// epsilon sign stands for the empty string, which shells cannot pass
// reliably on their own.
func ParseInput(arg string) string {
	if arg == domain.EpsilonLabel {
		return ""
	}
	return arg
}

// ParseInputs applies ParseInput to every argument.
func ParseInputs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = ParseInput(arg)
	}
	return out
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, http.ErrServerClosed)
}
