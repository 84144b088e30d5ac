package schema

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks that the definition describes a buildable automaton.
// It returns an *AggregateError holding every failure found.
func (d *Definition) Validate() error {
	var errs []error
	fail := func(field, reason string, value any) {
		errs = append(errs, &ValidationError{Field: field, Reason: reason, Value: value})
	}

	// 1. Alphabet
	sigma := make(map[string]bool, len(d.Sigma))
	for i, sym := range d.Sigma {
		if utf8.RuneCountInString(sym) != 1 {
			fail(fmt.Sprintf("sigma[%d]", i), "symbol must be exactly one character", sym)
			continue
		}
		sigma[sym] = true
	}

	// 2. States
	states := make(map[string]bool, len(d.States))
	for i, name := range d.States {
		field := fmt.Sprintf("states[%d]", i)
		switch {
		case name == "":
			fail(field, "state name is required", nil)
		case states[name]:
			fail(field, "duplicate state", name)
		default:
			states[name] = true
		}
	}
	ref := func(field, name string) {
		if !states[name] {
			fail(field, "unknown state", name)
		}
	}

	// 3. Start and final states
	if d.Start != "" {
		ref("start", d.Start)
	}
	for i, name := range d.Final {
		ref(fmt.Sprintf("final[%d]", i), name)
	}

	// 4. Transitions
	for i, t := range d.Transitions {
		field := fmt.Sprintf("transitions[%d]", i)
		ref(field+".from", t.From)

		switch {
		case t.Epsilon && t.On != "":
			fail(field, "use either on or epsilon, not both", t.On)
		case !t.Epsilon && t.On == "":
			fail(field, "on or epsilon is required", nil)
		case !t.Epsilon && utf8.RuneCountInString(t.On) != 1:
			fail(field+".on", "symbol must be exactly one character", t.On)
		case !t.Epsilon && !sigma[t.On]:
			fail(field+".on", "symbol is not declared in sigma", t.On)
		}

		if len(t.To) == 0 {
			fail(field+".to", "at least one target is required", nil)
		}
		for j, name := range t.To {
			ref(fmt.Sprintf("%s.to[%d]", field, j), name)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
