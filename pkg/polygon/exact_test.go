package polygon

import (
	"testing"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func twoAdjacentSquares() *geometry.Collection {
	// S1: A = unit square at origin, B = unit square shifted right by 1,
	// sharing the edge x=1.
	return &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1, 2, 2, 1, 1},
		Y:     []float64{0, 0, 1, 1, 0, 0, 0, 1, 1, 0},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
}

func cornerTouchingSquares() *geometry.Collection {
	// S5: A = unit square at origin, B = unit square at (1,1)-(2,2),
	// touching only at the corner (1,1).
	return &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0, 1, 2, 2, 1, 1},
		Y:     []float64{0, 0, 1, 1, 0, 1, 1, 2, 2, 1},
		Parts: []int{0, 5},
		Sizes: []int{1, 1},
		Holes: []bool{false, false},
	}
}

func TestExactQueen_S1_AdjacentSquares(t *testing.T) {
	nbrs := ExactQueen(twoAdjacentSquares())
	assert.Equal(t, [][]uint32{{1}, {0}}, nbrs.ToSlices())
}

func TestExactRook_S1_AdjacentSquares(t *testing.T) {
	nbrs := ExactRook(twoAdjacentSquares())
	assert.Equal(t, [][]uint32{{1}, {0}}, nbrs.ToSlices())
}

func TestExactQueen_S5_CornerOnly(t *testing.T) {
	nbrs := ExactQueen(cornerTouchingSquares())
	assert.Equal(t, [][]uint32{{1}, {0}}, nbrs.ToSlices())
}

func TestExactRook_S5_CornerOnly(t *testing.T) {
	nbrs := ExactRook(cornerTouchingSquares())
	assert.Equal(t, [][]uint32{{}, {}}, nbrs.ToSlices())
}

func TestExactQueen_S6_SinglePolygon(t *testing.T) {
	geoms := &geometry.Collection{
		X:     []float64{0, 1, 1, 0, 0},
		Y:     []float64{0, 0, 1, 1, 0},
		Parts: []int{0},
		Sizes: []int{1},
		Holes: []bool{false},
	}
	nbrs := ExactQueen(geoms)
	assert.Equal(t, [][]uint32{{}}, nbrs.ToSlices())
}

func TestCanonicalEdge_OrientationIndependent(t *testing.T) {
	a := geometry.Point{X: 1, Y: 0}
	b := geometry.Point{X: 0, Y: 0}
	assert.Equal(t, canonicalEdge(a, b), canonicalEdge(b, a))
}

