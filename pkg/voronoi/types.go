// Package voronoi implements Fortune's sweep-line algorithm (spec.md §4.4):
// an event-driven construction of a clipped Voronoi diagram, used by the
// point-contiguity route to derive neighbor relations among point sites.
//
// The beach line is an arena-backed red-black tree addressed by integer
// index rather than the cyclic pointer structure a direct port of the
// classic (Fortune/d3-voronoi-style) algorithm would use — spec.md §5 and
// §9 call for this explicitly, to keep node lifetimes obviously scoped to
// one call and recyclable via a freelist instead of relying on GC to
// collect a web of back-pointers.
package voronoi

import "math"

// Vertex is a planar coordinate, matching geometry.Point's shape so sites
// and diagram vertices share the same representation.
type Vertex struct {
	X, Y float64
}

// NoVertex marks an edge endpoint that has not been assigned yet (an edge
// that still extends to infinity on that side).
var NoVertex = Vertex{math.Inf(1), math.Inf(1)}

// BoundingBox is the rectangle Voronoi edges are clipped against.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY float64
}

// NewBoundingBox builds a BoundingBox from the four rectangle edges.
func NewBoundingBox(minX, maxX, minY, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// DefaultBoundingBox computes the clipping rectangle spec.md §4.4
// describes as the default when no bounding rectangle is supplied: the
// bounding box of the sites, padded by padAbsolute units on every side,
// plus an additional padPercent fraction of each axis's range (used by
// the point-contiguity route, which requests a 2% range pad on top of the
// usual 10-unit pad).
func DefaultBoundingBox(sites []Vertex, padAbsolute, padPercent float64) BoundingBox {
	if len(sites) == 0 {
		return BoundingBox{}
	}
	minX, maxX := sites[0].X, sites[0].X
	minY, maxY := sites[0].Y, sites[0].Y
	for _, s := range sites[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	xr := maxX - minX
	yr := maxY - minY
	return BoundingBox{
		MinX: minX - padAbsolute - xr*padPercent,
		MaxX: maxX + padAbsolute + xr*padPercent,
		MinY: minY - padAbsolute - yr*padPercent,
		MaxY: maxY + padAbsolute + yr*padPercent,
	}
}

func equalEps(a, b float64) bool      { return math.Abs(a-b) < 1e-9 }
func lessEps(a, b float64) bool       { return b-a > 1e-9 }
func greaterEps(a, b float64) bool    { return a-b > 1e-9 }

// arcID addresses a beach-section node in the beach-line arena. -1 (nilArc)
// marks the absence of a node.
type arcID int32

const nilArc arcID = -1

// cellID addresses a Voronoi cell (one per surviving site).
type cellID int32

const nilCell cellID = -1

// edgeID addresses a Voronoi edge, finite or still-infinite.
type edgeID int32

// noEdge marks a beach arc that has not yet been assigned a bounding edge.
const noEdge edgeID = -1

// halfedgeID addresses a cell's half-edge record.
type halfedgeID int32

// Site is one input point to CreateDiagram, carrying the index into the
// caller's original slice so duplicate-collapsing and out-of-rectangle
// dropping (spec.md §4.4's preprocessing step) can be undone when mapping
// cells back to adjacency pairs.
type Site struct {
	Pt   Vertex
	Orig int
}
