package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *Collection {
	return &Collection{
		X:     []float64{0, 1, 1, 0, 0},
		Y:     []float64{0, 0, 1, 1, 0},
		Parts: []int{0},
		Sizes: []int{1},
		Holes: []bool{false},
	}
}

func TestCollection_Accessors(t *testing.T) {
	c := square()
	assert.Equal(t, 1, c.NumGeoms())
	assert.Equal(t, 1, c.NumParts(0))
	assert.Equal(t, 5, c.NumPoints(0))
	assert.Equal(t, Point{0, 0}, c.Point(0, 0))
	assert.Equal(t, Point{1, 1}, c.Point(0, 2))
}

func TestCollection_EmptyGeometryOccupiesOneSlot(t *testing.T) {
	c := &Collection{
		X:     []float64{0, 1, 1, 0, 0},
		Y:     []float64{0, 0, 1, 1, 0},
		Parts: []int{0, 5},
		Sizes: []int{1, 0},
		Holes: []bool{false, false},
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, 0, c.NumPoints(1))
}

func TestCollection_BBoxAndCentroid(t *testing.T) {
	c := square()
	box := c.BBox(0)
	assert.Equal(t, Point{0, 0}, box.Min)
	assert.Equal(t, Point{1, 1}, box.Max)
	assert.Equal(t, Point{0.5, 0.5}, c.Centroid(0))
}

func TestBBox_Intersects(t *testing.T) {
	a := BBox{Min: Point{0, 0}, Max: Point{1, 1}}
	b := BBox{Min: Point{1, 1}, Max: Point{2, 2}}
	c := BBox{Min: Point{5, 5}, Max: Point{6, 6}}
	assert.True(t, a.Intersects(b), "touching at a corner counts as intersecting")
	assert.False(t, a.Intersects(c))
}

func TestCollection_Validate_NegativeSize(t *testing.T) {
	c := square()
	c.Sizes[0] = -1
	assert.Error(t, c.Validate())
}

func TestCollection_Validate_PartsOutOfRange(t *testing.T) {
	c := square()
	c.Parts[0] = 99
	assert.Error(t, c.Validate())
}

func TestCollection_Validate_MismatchedCoordLengths(t *testing.T) {
	c := square()
	c.Y = c.Y[:len(c.Y)-1]
	assert.Error(t, c.Validate())
}
