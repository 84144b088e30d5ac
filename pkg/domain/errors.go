package domain

import "errors"

// ErrDuplicateState is returned when a state name is already registered.
var ErrDuplicateState = errors.New("duplicate state")

// ErrUnknownState is returned when a name does not resolve to a state.
var ErrUnknownState = errors.New("unknown state")

// ErrUndeclaredSymbol is returned when a transition uses a symbol outside sigma.
var ErrUndeclaredSymbol = errors.New("undeclared symbol")

// ErrEpsilonSigma is returned when epsilon is offered as an alphabet symbol.
var ErrEpsilonSigma = errors.New("epsilon cannot be part of sigma")

// ErrNoStartState is returned when a simulation runs before a start state is set.
var ErrNoStartState = errors.New("no start state")

// ErrEmptyName is returned when a state is registered without a name.
var ErrEmptyName = errors.New("empty state name")
