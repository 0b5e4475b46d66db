package contiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Summary(t *testing.T) {
	g := Graph{
		{1, 2},
		{0},
		{0},
		{},
	}
	s := g.Summary()
	assert.Equal(t, 0, s.Min)
	assert.Equal(t, 2, s.Max)
	assert.InDelta(t, 1.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Median, 1e-9)
	assert.InDelta(t, 4.0/12.0, s.Sparsity, 1e-9)
}

func TestGraph_SummaryEmpty(t *testing.T) {
	g := Graph{}
	assert.Equal(t, Summary{}, g.Summary())
}

func TestGraph_Connected(t *testing.T) {
	connected := Graph{{1}, {0, 2}, {1}}
	assert.True(t, connected.Connected())

	disconnected := Graph{{1}, {0}, {3}, {2}, {}}
	assert.False(t, disconnected.Connected())
}

func TestGraph_ConnectedTrivial(t *testing.T) {
	assert.True(t, Graph{}.Connected())
	assert.True(t, Graph{{}}.Connected())
}
