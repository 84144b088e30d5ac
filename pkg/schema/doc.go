/*
Package schema reads automaton definitions from YAML or JSON documents.

A definition lists the alphabet, the states, the start and final states and
the transitions. Decode and LoadFile parse a document, Validate reports every
structural problem as an *AggregateError of *ValidationError, and Compile
builds the automaton through package dsl.

	name: two-state
	sigma: ["0", "1"]
	states: [a, b]
	start: a
	final: [b]
	transitions:
	  - {from: a, on: "0", to: [a]}
	  - {from: a, on: "1", to: [b]}
	  - {from: b, epsilon: true, to: [a]}

Definitions are one-way: automata are never serialized back to documents.
*/
package schema
