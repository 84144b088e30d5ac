package schema

import (
	"fmt"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/dsl"
)

// Compile validates the definition and builds the automaton it describes.
func Compile(d *Definition, opts ...nfa.Option) (*nfa.NFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := dsl.New().Name(d.Name)
	for _, sym := range d.Sigma {
		b.Sigma([]rune(sym)[0])
	}
	for _, name := range d.States {
		b.State(name)
	}
	if d.Start != "" {
		b.State(d.Start).Start()
	}
	for _, name := range d.Final {
		b.State(name).Final()
	}
	for _, t := range d.Transitions {
		from := b.State(t.From)
		if t.Epsilon {
			from.Epsilon(t.To...)
			continue
		}
		from.On([]rune(t.On)[0], t.To...)
	}

	n, err := b.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %q: %w", d.Name, err)
	}
	return n, nil
}

// Open loads, validates and compiles the definition at path. The
// definition name falls back to the file name.
func Open(path string, opts ...nfa.Option) (*nfa.NFA, error) {
	def, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = baseName(path)
	}
	n, err := Compile(def, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
