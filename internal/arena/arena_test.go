package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaAppendGet(t *testing.T) {
	a := New[int](0)
	idx0 := a.Append(10)
	idx1 := a.Append(20)

	assert.Equal(t, 0, idx0)
	assert.Equal(t, 1, idx1)
	assert.Equal(t, 10, a.Get(idx0))
	assert.Equal(t, 20, a.Get(idx1))
	assert.Equal(t, 2, a.Len())
}

func TestArenaGetPtrMutatesInPlace(t *testing.T) {
	type rec struct{ n int }
	a := New[rec](0)
	idx := a.Append(rec{n: 1})

	a.GetPtr(idx).n = 42

	assert.Equal(t, 42, a.Get(idx).n)
}

func TestArenaAllPreservesInsertionOrder(t *testing.T) {
	a := New[string](0)
	a.Append("a")
	a.Append("b")
	a.Append("c")

	assert.Equal(t, []string{"a", "b", "c"}, a.All())
}

func TestArenaStatsTracksGrowth(t *testing.T) {
	a := New[int](1)
	for i := 0; i < 10; i++ {
		a.Append(i)
	}
	s := a.Stats()
	assert.Equal(t, 10, s.Len)
	assert.GreaterOrEqual(t, s.Cap, 10)
	assert.Greater(t, s.GrowthEvents, uint64(0))
}
