/*
Package ports defines the driven ports (interfaces) used around the automaton.

The core package nfa is pure and never blocks. Anything that talks to the
outside world, such as a result cache shared between server replicas, sits
behind an interface declared here.

# Key Interfaces

  - ResultCache: stores simulation verdicts keyed by automaton revision and input.

RunResultCacheContract is a reusable suite that every adapter runs in its own tests.
*/
package ports
