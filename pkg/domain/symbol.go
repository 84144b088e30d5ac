package domain

import "fmt"

// EpsilonLabel is how epsilon is rendered in diagrams and traces.
const EpsilonLabel = "ε"

// Symbol labels a transition. It is either an input character or Epsilon.
// Epsilon is a separate tag rather than a reserved rune, so no alphabet
// symbol (not even 'e' or 'ε') can ever be mistaken for it.
type Symbol struct {
	r       rune
	epsilon bool
}

// Epsilon labels transitions taken without consuming input.
var Epsilon = Symbol{epsilon: true}

// Char returns the symbol for the input character r.
func Char(r rune) Symbol {
	return Symbol{r: r}
}

// IsEpsilon reports whether s is the epsilon symbol.
func (s Symbol) IsEpsilon() bool {
	return s.epsilon
}

// Rune returns the input character of s. The boolean is false for Epsilon.
func (s Symbol) Rune() (rune, bool) {
	if s.epsilon {
		return 0, false
	}
	return s.r, true
}

func (s Symbol) String() string {
	if s.epsilon {
		return EpsilonLabel
	}
	return string(s.r)
}

// GoString makes %#v output readable in test failures.
func (s Symbol) GoString() string {
	if s.epsilon {
		return "domain.Epsilon"
	}
	return fmt.Sprintf("domain.Char(%q)", s.r)
}

// compareSymbols orders runes ascending with Epsilon last.
func compareSymbols(a, b Symbol) int {
	switch {
	case a.epsilon && b.epsilon:
		return 0
	case a.epsilon:
		return 1
	case b.epsilon:
		return -1
	case a.r < b.r:
		return -1
	case a.r > b.r:
		return 1
	}
	return 0
}
