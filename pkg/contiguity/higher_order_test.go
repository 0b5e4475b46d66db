package contiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chainGraph() Graph {
	return Graph{
		{1},
		{0, 2},
		{1, 3},
		{2},
	}
}

func TestHigherOrder_ChainFrontierOnly(t *testing.T) {
	out, err := HigherOrder(chainGraph(), 2, false)
	assert.NoError(t, err)
	assert.Equal(t, Graph{{2}, {3}, {0}, {1}}, out)
}

func TestHigherOrder_ChainCumulative(t *testing.T) {
	out, err := HigherOrder(chainGraph(), 2, true)
	assert.NoError(t, err)
	assert.Equal(t, Graph{
		{2, 1},
		{3, 2, 0},
		{3, 1, 0},
		{2, 1},
	}, out)
}

func TestHigherOrder_OrderOneIsIdentityUpToSortDirection(t *testing.T) {
	w1 := chainGraph()
	out, err := HigherOrder(w1, 1, false)
	assert.NoError(t, err)
	for i, row := range out {
		assert.ElementsMatch(t, w1[i], row)
	}
}

func TestHigherOrder_InvalidOrder(t *testing.T) {
	_, err := HigherOrder(chainGraph(), 0, false)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestHigherOrder_Monotonicity(t *testing.T) {
	w1 := chainGraph()
	k1, err := HigherOrder(w1, 1, true)
	assert.NoError(t, err)
	k2, err := HigherOrder(w1, 2, true)
	assert.NoError(t, err)

	for i := range w1 {
		set1 := toSet(k1[i])
		set2 := toSet(k2[i])
		for v := range set1 {
			_, ok := set2[v]
			assert.True(t, ok, "node %d: %v should be subset of %v", i, k1[i], k2[i])
		}
	}
}
