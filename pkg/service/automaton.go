package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/observability"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/aretw0/nfa/pkg/schema"
)

// Automaton shares one NFA between goroutines.
//
// Every call into the wrapped automaton holds a single mutex. Simulation
// verdicts may be cached; cache keys carry the automaton revision, so any
// successful mutation makes earlier entries unreachable.
type Automaton struct {
	mu  sync.Mutex
	nfa *nfa.NFA

	cache   ports.ResultCache
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Option configures the Automaton.
type Option func(*Automaton)

// WithCache enables verdict caching.
func WithCache(cache ports.ResultCache) Option {
	return func(a *Automaton) {
		a.cache = cache
	}
}

// WithMetrics records cache outcomes. Simulation metrics come from the
// hooks given to the NFA itself.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(a *Automaton) {
		a.metrics = metrics
	}
}

// WithLogger configures a logger for cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		a.logger = logger
	}
}

// New wraps n. The caller must not use n directly afterwards.
func New(n *nfa.NFA, opts ...Option) *Automaton {
	a := &Automaton{
		nfa:    n,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the automaton label.
func (a *Automaton) Name() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.Name()
}

// Revision returns the current mutation counter.
func (a *Automaton) Revision() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.Revision()
}

// AddState declares a new state.
func (a *Automaton) AddState(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.TryAddState(name)
}

// AddSigma declares an input symbol.
func (a *Automaton) AddSigma(r rune) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.TryAddSigma(domain.Char(r))
}

// SetStart marks name as the start state.
func (a *Automaton) SetStart(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.TrySetStart(name)
}

// SetFinal marks name as accepting.
func (a *Automaton) SetFinal(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.TrySetFinal(name)
}

// AddTransition adds edges from one state to several on sym.
func (a *Automaton) AddTransition(from string, to []string, sym domain.Symbol) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.TryAddTransition(from, to, sym)
}

// Simulate returns the verdict for input, from the cache when possible.
// Cache failures are logged and never fail the call.
func (a *Automaton) Simulate(ctx context.Context, input string) (domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, err
	}
	if a.cache == nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.nfa.Simulate(input), nil
	}

	// 1. Look up under the current revision
	key := cacheKey(a.Revision(), input)
	verdict, ok, err := a.cache.Get(ctx, key)
	switch {
	case err != nil:
		a.observeCache(observability.CacheError)
		a.logger.Warn("cache lookup failed", "key", key, "err", err)
	case ok:
		a.observeCache(observability.CacheHit)
		return verdict, nil
	default:
		a.observeCache(observability.CacheMiss)
	}

	// 2. Simulate. The revision is read again under the same lock, since a
	// mutation may have landed while the cache was consulted.
	a.mu.Lock()
	verdict = a.nfa.Simulate(input)
	key = cacheKey(a.nfa.Revision(), input)
	a.mu.Unlock()

	// 3. Store
	if err := a.cache.Set(ctx, key, verdict); err != nil {
		a.logger.Warn("cache store failed", "key", key, "err", err)
	}
	return verdict, nil
}

// Trace simulates input and returns every frame. Traces are never cached.
func (a *Automaton) Trace(ctx context.Context, input string) (*domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.Trace(input)
}

// Closure returns the names in the epsilon closure of the named state.
func (a *Automaton) Closure(name string) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.nfa.GetState(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownState, name)
	}
	return a.nfa.EClosure(s).Names(), nil
}

// IsDFA reports whether the automaton is structurally deterministic.
func (a *Automaton) IsDFA() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nfa.IsDFA()
}

// Snapshot is a point-in-time description of the automaton.
type Snapshot struct {
	Revision uint64 `json:"revision"`
	IsDFA    bool   `json:"is_dfa"`
	schema.Definition
}

// Snapshot describes the automaton as it is now.
func (a *Automaton) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Revision:   a.nfa.Revision(),
		IsDFA:      a.nfa.IsDFA(),
		Definition: *schema.Export(a.nfa),
	}
}

// View runs fn with the automaton locked. fn must not retain n or mutate it.
func (a *Automaton) View(fn func(n *nfa.NFA) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.nfa)
}

func (a *Automaton) observeCache(outcome string) {
	if a.metrics != nil {
		a.metrics.ObserveCache(outcome)
	}
}

func cacheKey(revision uint64, input string) string {
	return strconv.FormatUint(revision, 10) + ":" + input
}
