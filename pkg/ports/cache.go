package ports

import (
	"context"

	"github.com/aretw0/nfa/pkg/domain"
)

// ResultCache stores simulation verdicts so repeated queries against an
// unchanged automaton skip the simulation.
//
// Keys are opaque to the cache. Callers make them unique per automaton
// revision, so a cache never has to be told about mutations.
type ResultCache interface {
	// Get returns the verdict stored under key. The boolean reports a hit.
	Get(ctx context.Context, key string) (domain.Verdict, bool, error)

	// Set stores the verdict under key, replacing any previous value.
	Set(ctx context.Context, key string, verdict domain.Verdict) error

	// Purge drops every entry written by this cache.
	Purge(ctx context.Context) error
}
