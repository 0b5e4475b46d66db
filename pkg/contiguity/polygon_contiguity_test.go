package contiguity

import (
	"testing"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adjacentSquares() *geometry.Collection {
	return &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1, 2, 2, 1, 1},
		Y:     []float64{0, 0, 1, 1, 0, 0, 0, 1, 1, 0},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
}

func TestPolygonContiguity_ExactRook(t *testing.T) {
	g, err := PolygonContiguity(adjacentSquares(), false, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{{1}, {0}}, g)
}

func TestPolygonContiguity_HigherOrderPassthrough(t *testing.T) {
	g, err := PolygonContiguity(adjacentSquares(), false, 0, 2, false, telemetry.New())
	require.NoError(t, err)
	// order 2 from a 2-node fully connected graph: node i's 2nd layer is empty
	// (only its own index would appear, and the origin is always excluded).
	assert.Equal(t, Graph{{}, {}}, g)
}

func TestPolygonContiguity_EmptyCollection(t *testing.T) {
	g, err := PolygonContiguity(&geometry.Collection{}, true, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{}, g)
}

func TestPolygonContiguity_InvalidParams(t *testing.T) {
	_, err := PolygonContiguity(adjacentSquares(), true, -1, 0, false, telemetry.New())
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.ErrorIs(t, err, ErrNegativeThreshold)
}

func TestPolygonContiguity_InvalidGeometryWraps(t *testing.T) {
	bad := adjacentSquares()
	bad.Sizes[0] = -1
	_, err := PolygonContiguity(bad, true, 0, 1, false, telemetry.New())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPolygonContiguity_ToleranceRoute(t *testing.T) {
	geoms := &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1.0005, 2.0005, 2.0005, 1.0005, 1.0005},
		Y:     []float64{0, 0, 1, 1, 0, 0, 0, 1, 1, 0},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
	g, err := PolygonContiguity(geoms, false, 0.001, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{{1}, {0}}, g)
}
