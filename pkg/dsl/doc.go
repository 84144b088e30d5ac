/*
Package dsl provides a fluent builder for constructing automata in Go code.

It is a thin layer over the mutation API of package nfa: declarations are
recorded first and replayed in a fixed order on Build, so forward references
to states are allowed and every rejected mutation is reported at once.

Example usage:

	n, err := dsl.New().
		Name("two-state").
		Sigma('0', '1').
		State("a").Start().On('0', "a").On('1', "b").
		State("b").Final().Epsilon("a").
		Build()
	if err != nil {
		log.Fatal(err)
	}
	n.Accepts("101") // true
*/
package dsl
