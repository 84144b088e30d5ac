package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/domain"
)

// GraphOverlay contains simulation data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string // Every state active at some frame
	ActiveStates  []string // The active set after the whole input
}

// OverlayFromRun builds an overlay from a simulation record.
func OverlayFromRun(run *domain.Run) *GraphOverlay {
	visited := make(domain.StateSet)
	for _, frame := range run.Frames {
		visited.Union(frame.Active)
	}
	return &GraphOverlay{
		VisitedStates: visited.Names(),
		ActiveStates:  run.Final().Names(),
	}
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Final: (((Double circle)))
// - Default: ((Circle))
// - Start: an unlabelled entry arrow
// - Epsilon edges: dotted
// Edges between the same pair of states are merged into one labelled arrow.
// It also applies overlay styles (Visited/Active) if provided.
func GenerateMermaid(n *nfa.NFA, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range n.States() {
		opener, closer := "((", "))"
		if n.IsFinal(s.Name()) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", mermaidID(s), opener, escapeLabel(s.Name()), closer))
	}

	if start, ok := n.StartState(); ok {
		sb.WriteString("    __start__[ ] --> " + mermaidID(start) + "\n")
		sb.WriteString("    style __start__ fill:none,stroke:none\n")
	}

	for _, e := range mergeEdges(n.Edges()) {
		label := escapeLabel(strings.Join(e.labels, ","))
		if e.epsilon {
			sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", mermaidID(e.from), label, mermaidID(e.to)))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", mermaidID(e.from), label, mermaidID(e.to)))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		active := make(map[string]bool, len(overlay.ActiveStates))
		for _, name := range overlay.ActiveStates {
			active[name] = true
		}
		seen := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			s, ok := n.GetState(name)
			if !ok || seen[name] || active[name] {
				continue
			}
			seen[name] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(s)))
		}
		for _, name := range overlay.ActiveStates {
			if s, ok := n.GetState(name); ok {
				sb.WriteString(fmt.Sprintf("    class %s active;\n", mermaidID(s)))
			}
		}
	}

	return sb.String()
}

type mergedEdge struct {
	from, to *domain.State
	epsilon  bool
	labels   []string
}

// mergeEdges groups edges by source, target and kind, keeping first-seen order.
func mergeEdges(edges []domain.Edge) []*mergedEdge {
	type key struct {
		from, to domain.StateID
		epsilon  bool
	}
	var out []*mergedEdge
	index := make(map[key]*mergedEdge)
	for _, e := range edges {
		k := key{e.From.ID(), e.To.ID(), e.Symbol.IsEpsilon()}
		m, ok := index[k]
		if !ok {
			m = &mergedEdge{from: e.From, to: e.To, epsilon: k.epsilon}
			index[k] = m
			out = append(out, m)
		}
		m.labels = append(m.labels, e.Symbol.String())
	}
	return out
}

// mermaidID derives node ids from the arena index, since state names may
// hold any character.
func mermaidID(s *domain.State) string {
	return fmt.Sprintf("s%d", s.ID())
}

func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
