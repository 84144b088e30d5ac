package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/internal/testutils"
)

func sampleCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	n := testutils.TwoState.Build(t, nfa.WithHooks(m.Hooks()))
	n.Simulate("101")
	n.Simulate("0")
	n.Simulate("")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.simulations.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.simulations.WithLabelValues("rejected")))

	// One frame for the start closure plus one per rune: 4 + 2 + 1.
	assert.Equal(t, uint64(7), sampleCount(t, reg, "nfa_active_states"))
	assert.Equal(t, uint64(3), sampleCount(t, reg, "nfa_max_copies"))
}

func TestMetrics_Cache(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheMiss)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheRequests.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheRequests.WithLabelValues(CacheMiss)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.cacheRequests.WithLabelValues(CacheError)))
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestCombine(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	hooks := Combine(m.Hooks(), LoggingHooks(logging.NewWithWriter(&buf, slog.LevelDebug)))
	n := testutils.Fork.Build(t, nfa.WithHooks(hooks))
	n.Simulate("ab")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.simulations.WithLabelValues("accepted")))
	out := buf.String()
	assert.Contains(t, out, "simulation_step")
	assert.Contains(t, out, "simulation_end")
	assert.Contains(t, out, "max_copies=2")
}

func TestCombine_Empty(t *testing.T) {
	hooks := Combine()
	assert.Nil(t, hooks.OnStep)
	assert.Nil(t, hooks.OnRunEnd)
}
