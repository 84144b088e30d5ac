package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/service"
)

// Describe renders a snapshot as markdown.
func Describe(snap service.Snapshot) string {
	var sb strings.Builder

	title := snap.Name
	if title == "" {
		title = "automaton"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	final := make(map[string]bool, len(snap.Final))
	for _, name := range snap.Final {
		final[name] = true
	}

	states := make([]string, 0, len(snap.States))
	for _, name := range snap.States {
		var tags []string
		if name == snap.Start {
			tags = append(tags, "start")
		}
		if final[name] {
			tags = append(tags, "final")
		}
		entry := "`" + name + "`"
		if len(tags) > 0 {
			entry += " (" + strings.Join(tags, ", ") + ")"
		}
		states = append(states, entry)
	}

	sigma := make([]string, 0, len(snap.Sigma))
	for _, sym := range snap.Sigma {
		sigma = append(sigma, "`"+sym+"`")
	}

	deterministic := "no"
	if snap.IsDFA {
		deterministic = "yes"
	}

	sb.WriteString(fmt.Sprintf("- **States:** %s\n", listOrNone(states)))
	sb.WriteString(fmt.Sprintf("- **Alphabet:** %s\n", listOrNone(sigma)))
	if snap.Start == "" {
		sb.WriteString("- **Start:** none\n")
	}
	sb.WriteString(fmt.Sprintf("- **Deterministic:** %s\n", deterministic))
	sb.WriteString(fmt.Sprintf("- **Revision:** %d\n", snap.Revision))

	if len(snap.Transitions) == 0 {
		return sb.String()
	}

	sb.WriteString("\n## Transitions\n\n")
	sb.WriteString("| From | On | To |\n")
	sb.WriteString("|---|---|---|\n")
	for _, t := range snap.Transitions {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", t.From, t.Symbol(), strings.Join(t.To, ", ")))
	}
	return sb.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
