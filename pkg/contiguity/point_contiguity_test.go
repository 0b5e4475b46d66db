package contiguity

import (
	"testing"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointContiguity_ThreeCollinear(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	g, err := PointContiguity(pts, false, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{{1}, {0, 2}, {1}}, g)
}

func TestPointContiguity_AllIdenticalIsDegenerate(t *testing.T) {
	pts := []geometry.Point{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}}
	g, err := PointContiguity(pts, true, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{{}, {}, {}}, g)
}

func TestPointContiguity_SingleSiteHasNoNeighbors(t *testing.T) {
	pts := []geometry.Point{{X: 3, Y: 3}}
	g, err := PointContiguity(pts, true, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{{}}, g)
}

func TestPointContiguity_DuplicateCoordinatesShareNeighborsNotEachOther(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}}
	g, err := PointContiguity(pts, false, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	// 0 and 1 coincide and both link to 2, but never to each other.
	assert.ElementsMatch(t, []uint32{2}, g[0])
	assert.ElementsMatch(t, []uint32{2}, g[1])
	assert.ElementsMatch(t, []uint32{0, 1}, g[2])
}

func TestPointContiguity_EmptyInput(t *testing.T) {
	g, err := PointContiguity(nil, true, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	assert.Equal(t, Graph{}, g)
}

func TestPointContiguity_InvalidParams(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	_, err := PointContiguity(pts, true, 0, -1, false, telemetry.New())
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestPointContiguity_QueenIncludesRook(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	rook, err := PointContiguity(pts, false, 0, 1, false, telemetry.New())
	require.NoError(t, err)
	queen, err := PointContiguity(pts, true, 0, 1, false, telemetry.New())
	require.NoError(t, err)

	for i := range pts {
		for _, v := range rook[i] {
			assert.Contains(t, queen[i], v)
		}
	}
}
