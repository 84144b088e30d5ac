package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/nfa/internal/presentation/tui"
	"github.com/aretw0/nfa/pkg/service"
)

// RunOptions controls RunInputs output.
type RunOptions struct {
	Trace  bool
	Styles tui.Styles
}

// RunInputs simulates every input and prints one verdict per line, or a full
// trace per input. It reports whether all inputs were accepted.
func RunInputs(ctx context.Context, w io.Writer, a *service.Automaton, inputs []string, opts RunOptions) (bool, error) {
	all := true
	for _, input := range inputs {
		if opts.Trace {
			run, err := a.Trace(ctx, input)
			if err != nil {
				return false, err
			}
			all = all && run.Accepted
			fmt.Fprint(w, opts.Styles.Run(run))
			continue
		}

		v, err := a.Simulate(ctx, input)
		if err != nil {
			return false, err
		}
		all = all && v.Accepted
		fmt.Fprintln(w, opts.Styles.Verdict(v))
	}
	return all, nil
}

// Describe writes the automaton description. Markdown is rendered with
// glamour when w is a terminal and printed raw otherwise.
func Describe(w io.Writer, a *service.Automaton) error {
	md := tui.Describe(a.Snapshot())
	if !tui.IsTerminal(w) {
		_, err := io.WriteString(w, md)
		return err
	}

	render, err := tui.NewRenderer(tui.Width(w, 80))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render description: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
