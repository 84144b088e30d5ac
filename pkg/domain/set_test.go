package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/nfa/pkg/domain"
)

func TestStateSet_Algebra(t *testing.T) {
	p := domain.NewState(0, "p")
	q := domain.NewState(1, "q")
	r := domain.NewState(2, "r")

	left := domain.NewStateSet(r, p)
	right := domain.NewStateSet(q)

	assert.Equal(t, 2, left.Len())
	assert.True(t, left.Has(p))
	assert.False(t, left.Has(q))
	assert.False(t, left.Has(nil))
	assert.False(t, left.Intersects(right))

	union := left.Clone()
	union.Union(right)
	assert.Equal(t, []string{"p", "q", "r"}, union.Names(), "names follow declaration order")
	assert.Equal(t, 2, left.Len(), "Clone must not share storage")

	assert.True(t, union.Intersects(right))
	assert.True(t, union.Equal(domain.NewStateSet(q, r, p)))
	assert.False(t, union.Equal(left))
}

func TestStateSet_NilIsEmpty(t *testing.T) {
	var empty domain.StateSet
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Names())
	assert.False(t, empty.Intersects(domain.NewStateSet(domain.NewState(0, "x"))))
	assert.True(t, empty.Equal(domain.StateSet{}))
}

func TestRun_Final(t *testing.T) {
	var run domain.Run
	assert.Nil(t, run.Final())

	a := domain.NewState(0, "a")
	run.Frames = append(run.Frames, domain.Frame{Index: -1, Active: domain.NewStateSet(a)})
	assert.Equal(t, []string{"a"}, run.Final().Names())
}
