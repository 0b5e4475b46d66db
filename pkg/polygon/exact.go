package polygon

import (
	"sort"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
)

// vertexKey and edgeKey give exact (bit-for-bit) hash keys for the
// precision_threshold == 0 engine (spec.md §4.2).
type vertexKey struct {
	x, y float64
}

type edgeKey struct {
	x1, y1, x2, y2 float64
}

// canonicalEdge sorts the two endpoints lexicographically so that a ring
// walked clockwise in one polygon and counter-clockwise in its neighbor
// still hashes to the same key. spec.md §4.2 and §9 call this out
// explicitly: the source implementation this was distilled from skipped
// canonicalization (and its adjacency-emission loop was empty besides),
// so two rings traversed in opposite directions never matched.
func canonicalEdge(a, b geometry.Point) edgeKey {
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return edgeKey{a.X, a.Y, b.X, b.Y}
	}
	return edgeKey{b.X, b.Y, a.X, a.Y}
}

// ExactQueen implements spec.md §4.2's queen rule: two polygons are
// neighbors if they share any vertex. O(V) in the total vertex count.
func ExactQueen(geoms *geometry.Collection) NeighborSets {
	vertexToPolys := make(map[vertexKey][]int)

	n := geoms.NumGeoms()
	for i := 0; i < n; i++ {
		for p := 0; p < geoms.NumParts(i); p++ {
			pts, _ := geoms.Ring(i, p)
			for _, pt := range pts {
				k := vertexKey{pt.X, pt.Y}
				polys := vertexToPolys[k]
				if len(polys) == 0 || polys[len(polys)-1] != i {
					vertexToPolys[k] = append(polys, i)
				}
			}
		}
	}

	nbrs := newNeighborSets(n)
	for _, polys := range vertexToPolys {
		if len(polys) < 2 {
			continue
		}
		for a := 0; a < len(polys); a++ {
			for b := a + 1; b < len(polys); b++ {
				if polys[a] != polys[b] {
					nbrs.link(polys[a], polys[b])
				}
			}
		}
	}
	return nbrs
}

// ExactRook implements spec.md §4.2's rook rule: two polygons are
// neighbors if they share an edge (two consecutive coincident vertices),
// keyed on the canonicalized (sorted) endpoint pair.
func ExactRook(geoms *geometry.Collection) NeighborSets {
	edgeToPolys := make(map[edgeKey][]int)

	n := geoms.NumGeoms()
	for i := 0; i < n; i++ {
		for p := 0; p < geoms.NumParts(i); p++ {
			pts, _ := geoms.Ring(i, p)
			m := len(pts)
			for j := 0; j < m; j++ {
				a := pts[j]
				b := pts[(j+1)%m]
				if a == b {
					continue
				}
				k := canonicalEdge(a, b)
				polys := edgeToPolys[k]
				if len(polys) == 0 || polys[len(polys)-1] != i {
					edgeToPolys[k] = append(polys, i)
				}
			}
		}
	}

	nbrs := newNeighborSets(n)
	for _, polys := range edgeToPolys {
		if len(polys) < 2 {
			continue
		}
		for a := 0; a < len(polys); a++ {
			for b := a + 1; b < len(polys); b++ {
				if polys[a] != polys[b] {
					nbrs.link(polys[a], polys[b])
				}
			}
		}
	}
	return nbrs
}

// NeighborSets is the mutable neighbor-set accumulator shared by the exact
// and tolerant engines; contiguity.Graph converts it to its final sorted,
// deduplicated shape.
type NeighborSets struct {
	sets []map[int]struct{}
}

func newNeighborSets(n int) NeighborSets {
	sets := make([]map[int]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	return NeighborSets{sets: sets}
}

func (n NeighborSets) link(a, b int) {
	if a == b {
		return
	}
	n.sets[a][b] = struct{}{}
	n.sets[b][a] = struct{}{}
}

// ToSlices exports the neighbor sets as ascending sorted slices, per
// spec.md §6: "implementations should deduplicate via a set before
// exporting."
func (n NeighborSets) ToSlices() [][]uint32 {
	out := make([][]uint32, len(n.sets))
	for i, set := range n.sets {
		row := make([]uint32, 0, len(set))
		for j := range set {
			row = append(row, uint32(j))
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		out[i] = row
	}
	return out
}
