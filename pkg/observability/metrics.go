package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/nfa/pkg/domain"
)

// Cache outcomes recorded by ObserveCache.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds the Prometheus collectors for simulations and the result cache.
type Metrics struct {
	simulations   *prometheus.CounterVec
	activeStates  prometheus.Histogram
	maxCopies     prometheus.Histogram
	cacheRequests *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if they are already registered, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfa_simulations_total",
				Help: "Total number of simulations by result",
			},
			[]string{"result"},
		),
		activeStates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nfa_active_states",
				Help:    "Size of the active state set per simulation frame",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		maxCopies: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nfa_max_copies",
				Help:    "Largest active state set per simulation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		cacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfa_cache_requests_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.simulations, m.activeStates, m.maxCopies, m.cacheRequests)
	return m
}

// Hooks returns simulation hooks that feed the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnStep: func(e *domain.StepEvent) {
			m.activeStates.Observe(float64(e.Frame.Active.Len()))
		},
		OnRunEnd: func(e *domain.RunEvent) {
			result := "rejected"
			if e.Verdict.Accepted {
				result = "accepted"
			}
			m.simulations.WithLabelValues(result).Inc()
			m.maxCopies.Observe(float64(e.Verdict.MaxCopies))
		},
	}
}

// ObserveCache records one cache lookup.
func (m *Metrics) ObserveCache(outcome string) {
	m.cacheRequests.WithLabelValues(outcome).Inc()
}
