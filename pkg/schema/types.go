package schema

// Definition describes an automaton as a document. Compile turns one into an
// automaton; Export describes an existing automaton for display.
type Definition struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Sigma       []string     `json:"sigma" yaml:"sigma" mapstructure:"sigma"`
	States      []string     `json:"states" yaml:"states" mapstructure:"states"`
	Start       string       `json:"start,omitempty" yaml:"start,omitempty" mapstructure:"start"`
	Final       []string     `json:"final,omitempty" yaml:"final,omitempty" mapstructure:"final"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`
}

// Transition is one edge group: from a state, on a symbol or epsilon, to
// one or more states.
type Transition struct {
	From    string   `json:"from" yaml:"from" mapstructure:"from"`
	On      string   `json:"on,omitempty" yaml:"on,omitempty" mapstructure:"on"`
	Epsilon bool     `json:"epsilon,omitempty" yaml:"epsilon,omitempty" mapstructure:"epsilon"`
	To      []string `json:"to" yaml:"to" mapstructure:"to"`
}
