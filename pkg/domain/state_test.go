package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa/pkg/domain"
)

func TestState_TransitionsOn(t *testing.T) {
	a := domain.NewState(0, "a")
	b := domain.NewState(1, "b")

	t.Run("Absent symbol reports no transition", func(t *testing.T) {
		dest, ok := a.TransitionsOn(domain.Char('0'))
		assert.False(t, ok)
		assert.Nil(t, dest)

		// Asking must not create anything.
		assert.Empty(t, a.Symbols())
	})

	t.Run("Add is idempotent", func(t *testing.T) {
		a.AddTransition(domain.Char('0'), b)
		a.AddTransition(domain.Char('0'), b)
		a.AddTransition(domain.Char('0'), a)

		dest, ok := a.TransitionsOn(domain.Char('0'))
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, dest.Names())
	})

	t.Run("Epsilon shares the map but not the key", func(t *testing.T) {
		_, ok := a.Epsilons()
		assert.False(t, ok)

		a.AddTransition(domain.Epsilon, b)
		eps, ok := a.Epsilons()
		require.True(t, ok)
		assert.Equal(t, []string{"b"}, eps.Names())

		_, ok = a.TransitionsOn(domain.Char('e'))
		assert.False(t, ok, "'e' is an ordinary symbol")
	})

	t.Run("Symbols lists runes then epsilon", func(t *testing.T) {
		a.AddTransition(domain.Char('#'), a)
		assert.Equal(t, []domain.Symbol{domain.Char('#'), domain.Char('0'), domain.Epsilon}, a.Symbols())
	})
}

func TestState_Identity(t *testing.T) {
	s := domain.NewState(7, "q7")
	assert.Equal(t, domain.StateID(7), s.ID())
	assert.Equal(t, "q7", s.Name())
	assert.Equal(t, "q7", s.String())
}
