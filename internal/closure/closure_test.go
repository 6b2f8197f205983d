package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(order []int, n int) int {
	for i, v := range order {
		if v == n {
			return i
		}
	}
	return -1
}

func TestTopoSortParentsFirst(t *testing.T) {
	// 0 <- 1 <- 2, 0 <- 1, and 1 <- 3 (0 is the root; 2 and 3 both depend on 1).
	parents := map[int][]int{
		0: {},
		1: {0},
		2: {1},
		3: {1},
	}
	order, err := TopoSortParentsFirst(4, func(i int) []int { return parents[i] })
	require.NoError(t, err)
	require.Len(t, order, 4)

	assert.Less(t, indexOf(order, 0), indexOf(order, 1))
	assert.Less(t, indexOf(order, 1), indexOf(order, 2))
	assert.Less(t, indexOf(order, 1), indexOf(order, 3))
}

func TestTopoSortDetectsCycle(t *testing.T) {
	parents := map[int][]int{
		0: {1},
		1: {0},
	}
	_, err := TopoSortParentsFirst(2, func(i int) []int { return parents[i] })
	require.ErrorIs(t, err, ErrCycle)
}

func TestTopoSortDisconnectedRoots(t *testing.T) {
	parents := map[int][]int{
		0: {},
		1: {},
		2: {0},
		3: {1},
	}
	order, err := TopoSortParentsFirst(4, func(i int) []int { return parents[i] })
	require.NoError(t, err)
	assert.Less(t, indexOf(order, 0), indexOf(order, 2))
	assert.Less(t, indexOf(order, 1), indexOf(order, 3))
}
