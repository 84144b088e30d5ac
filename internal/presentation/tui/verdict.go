package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/nfa/pkg/domain"
)

// Styles colours verdicts for one terminal profile.
type Styles struct {
	profile termenv.Profile
}

// NewStyles detects the colour profile of stdout.
func NewStyles() Styles {
	return Styles{profile: termenv.ColorProfile()}
}

// NewStylesWithProfile fixes the colour profile. termenv.Ascii disables colour.
func NewStylesWithProfile(p termenv.Profile) Styles {
	return Styles{profile: p}
}

// Verdict formats one simulation result on a single line.
func (s Styles) Verdict(v domain.Verdict) string {
	label := s.profile.String("REJECT").Foreground(s.profile.Color("#fb7185"))
	if v.Accepted {
		label = s.profile.String("ACCEPT").Foreground(s.profile.Color("#34d399"))
	}

	copies := fmt.Sprintf("max copies %d", v.MaxCopies)
	if v.MaxCopies == domain.NoCopies {
		copies = "no start state"
	}
	return fmt.Sprintf("%s %s (%s)", label.Bold(), quoteInput(v.Input), copies)
}

// Run formats a trace, one frame per line, followed by the verdict.
func (s Styles) Run(run *domain.Run) string {
	var sb strings.Builder
	for _, frame := range run.Frames {
		step := s.profile.String(fmt.Sprintf("%3d", frame.Index)).Foreground(s.profile.Color("#818cf8"))
		symbol := "start"
		if frame.Index >= 0 {
			symbol = frame.Symbol.String()
		}
		sb.WriteString(fmt.Sprintf("%s %-5s {%s}\n", step, symbol, strings.Join(frame.Active.Names(), ", ")))
	}
	sb.WriteString(s.Verdict(run.Verdict))
	sb.WriteString("\n")
	return sb.String()
}

func quoteInput(input string) string {
	if input == "" {
		return domain.EpsilonLabel
	}
	return fmt.Sprintf("%q", input)
}
