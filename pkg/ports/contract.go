package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa/pkg/domain"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache
// implementation adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + ":"

	t.Run("Miss", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, prefix+"absent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Set and Get", func(t *testing.T) {
		// 1. Store a verdict
		want := domain.Verdict{Input: "101", Accepted: true, MaxCopies: 2}
		require.NoError(t, cache.Set(ctx, prefix+"101", want))

		// 2. Read it back
		got, ok, err := cache.Get(ctx, prefix+"101")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("Empty input and no start", func(t *testing.T) {
		want := domain.Verdict{Input: "", Accepted: false, MaxCopies: domain.NoCopies}
		require.NoError(t, cache.Set(ctx, prefix+"empty", want))

		got, ok, err := cache.Get(ctx, prefix+"empty")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + "overwrite"
		require.NoError(t, cache.Set(ctx, key, domain.Verdict{Input: "x", MaxCopies: 1}))
		require.NoError(t, cache.Set(ctx, key, domain.Verdict{Input: "x", Accepted: true, MaxCopies: 3}))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, got.Accepted)
		assert.Equal(t, 3, got.MaxCopies)
	})

	t.Run("Purge", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"a", domain.Verdict{Input: "a", MaxCopies: 1}))
		require.NoError(t, cache.Set(ctx, prefix+"b", domain.Verdict{Input: "b", MaxCopies: 1}))

		require.NoError(t, cache.Purge(ctx))

		for _, key := range []string{"a", "b", "101"} {
			_, ok, err := cache.Get(ctx, prefix+key)
			require.NoError(t, err)
			assert.False(t, ok, "%s survived the purge", key)
		}

		// Purging an empty cache is fine.
		assert.NoError(t, cache.Purge(ctx))
	})
}
