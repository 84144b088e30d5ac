/*
Package domain contains the core types of the automaton model.

It is kept pure and free of I/O so every adapter (CLI, HTTP, MCP, caches)
can share it.

# Key Entities

  - Symbol: a transition label, either an input character or Epsilon.
  - State: a named vertex owning its per-symbol destination sets.
  - StateSet: a set of states, also used for active sets during simulation.
  - Run / Frame / Verdict: the record of simulating an input string.
  - Hooks: synchronous callbacks for observing simulations.
*/
package domain
