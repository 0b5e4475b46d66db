package voronoi

import (
	"sort"
	"testing"

	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"github.com/stretchr/testify/assert"
)

func sortPairs(pairs [][2]int) [][2]int {
	out := append([][2]int(nil), pairs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func TestCreateDiagram_ThreeCollinearPoints(t *testing.T) {
	sites := []Vertex{{0, 0}, {5, 0}, {10, 0}}
	bbox := NewBoundingBox(-10, 20, -10, 10)
	d := CreateDiagram(sites, bbox, telemetry.New())

	assert.Equal(t, sortPairs([][2]int{{0, 1}, {1, 2}}), sortPairs(d.RookPairs()))
	assert.Equal(t, sortPairs([][2]int{{0, 1}, {1, 2}}), sortPairs(d.QueenPairs()))
}

func TestCreateDiagram_SingleSiteGetsFullRectangleCell(t *testing.T) {
	sites := []Vertex{{5, 5}}
	bbox := NewBoundingBox(0, 10, 0, 10)
	d := CreateDiagram(sites, bbox, telemetry.New())

	assert.Empty(t, d.RookPairs())
	segs := d.Segments()
	assert.Len(t, segs, 4)
	for _, s := range segs {
		assert.True(t, s.Gap)
	}
}

func TestCreateDiagram_DuplicateSitesShareCellGroup(t *testing.T) {
	sites := []Vertex{{0, 0}, {0, 0}, {10, 0}}
	bbox := NewBoundingBox(-10, 20, -10, 10)
	d := CreateDiagram(sites, bbox, telemetry.New())

	var group []int
	for _, g := range d.Groups() {
		if len(g) > 1 {
			group = g
		}
	}
	assert.ElementsMatch(t, []int{0, 1}, group)
}

func TestCreateDiagram_OutsideBBoxSitesAreDropped(t *testing.T) {
	sites := []Vertex{{0, 0}, {5, 0}, {1000, 1000}}
	bbox := NewBoundingBox(-10, 20, -10, 10)
	d := CreateDiagram(sites, bbox, telemetry.New())

	assert.Equal(t, []int{2}, d.Outside())
	assert.Len(t, d.Cells(), 2)
}

func TestCreateDiagram_FourCornerSitesQueenVsRook(t *testing.T) {
	sites := []Vertex{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	bbox := NewBoundingBox(-5, 15, -5, 15)
	d := CreateDiagram(sites, bbox, telemetry.New())

	rook := sortPairs(d.RookPairs())
	queen := sortPairs(d.QueenPairs())

	assert.Subset(t, pairsToInterfaces(queen), pairsToInterfaces(rook))
	assert.True(t, len(queen) >= len(rook))
}

func pairsToInterfaces(pairs [][2]int) []interface{} {
	out := make([]interface{}, len(pairs))
	for i, p := range pairs {
		out[i] = p
	}
	return out
}
