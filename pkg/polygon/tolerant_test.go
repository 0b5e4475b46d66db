package polygon

import (
	"testing"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"github.com/stretchr/testify/assert"
)

func slightlyOffsetSquares(offset float64) *geometry.Collection {
	return &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1 + offset, 2 + offset, 2 + offset, 1 + offset, 1 + offset},
		Y:     []float64{0, 0, 1, 1, 0, 0, 0, 1, 1, 0},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
}

func TestTolerant_RookMatchesWithinThreshold(t *testing.T) {
	geoms := slightlyOffsetSquares(0.0005)
	nbrs := Tolerant(geoms, false, 0.001, telemetry.New())
	assert.Equal(t, [][]uint32{{1}, {0}}, nbrs.ToSlices())
}

func TestTolerant_RookMissesBeyondThreshold(t *testing.T) {
	geoms := slightlyOffsetSquares(0.0005)
	nbrs := Tolerant(geoms, false, 0.0001, telemetry.New())
	assert.Equal(t, [][]uint32{{}, {}}, nbrs.ToSlices())
}

func TestTolerant_QueenCornerOnly(t *testing.T) {
	geoms := &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1.0003, 2, 2, 1.0003, 1.0003},
		Y:     []float64{0, 0, 1, 1, 0, 1, 1, 2, 2, 1},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
	nbrs := Tolerant(geoms, true, 0.001, telemetry.New())
	assert.Equal(t, [][]uint32{{1}, {0}}, nbrs.ToSlices())

	rookNbrs := Tolerant(geoms, false, 0.001, telemetry.New())
	assert.Equal(t, [][]uint32{{}, {}}, rookNbrs.ToSlices())
}

func TestTolerant_EmptyCollection(t *testing.T) {
	geoms := &geometry.Collection{}
	nbrs := Tolerant(geoms, true, 0.001, telemetry.New())
	assert.Empty(t, nbrs.ToSlices())
}

func TestBboxIntersects(t *testing.T) {
	a := geometry.BBox{Min: geometry.Point{X: 0, Y: 0}, Max: geometry.Point{X: 1, Y: 1}}
	b := geometry.BBox{Min: geometry.Point{X: 0.5, Y: 0.5}, Max: geometry.Point{X: 2, Y: 2}}
	c := geometry.BBox{Min: geometry.Point{X: 10, Y: 10}, Max: geometry.Point{X: 11, Y: 11}}
	assert.True(t, bboxIntersects(a, b))
	assert.False(t, bboxIntersects(a, c))
}
