package voronoi

import (
	"math"
	"sort"
)

// edgeVertex pairs a diagram vertex with the list of edges meeting there.
// Nothing in the package builds one: QueenPairs groups cells by vertex
// with a map instead.
type edgeVertex struct {
	v     Vertex
	edges []edgeID
}

// edge is a Voronoi edge between two sites' cells (or a synthetic gap
// edge closing a cell along the bounding rectangle, per spec.md §4.4.2,
// in which case rightCell is nilCell).
type edge struct {
	leftCell, rightCell cellID
	va, vb               Vertex
	isGap                bool
}

// halfedge is one cell's boundary segment referencing a shared edge.
type halfedge struct {
	cell  cellID
	edge  edgeID
	angle float64
}

// cell is one site's Voronoi region.
type cell struct {
	site      Vertex
	origIndex int // index into the caller's original site slice
	halfedges []halfedgeID
}

// arena holds every cell/edge/halfedge allocated during one diagram
// construction, scoped to the call per spec.md §5.
type arena struct {
	cells      []cell
	edges      []edge
	halfedges  []halfedge
	cellBySite map[Vertex]cellID
}

func newArena() *arena {
	return &arena{cellBySite: make(map[Vertex]cellID)}
}

func (a *arena) newCell(site Vertex, origIndex int) cellID {
	id := cellID(len(a.cells))
	a.cells = append(a.cells, cell{site: site, origIndex: origIndex})
	a.cellBySite[site] = id
	return id
}

func (a *arena) cellOf(site Vertex) cellID {
	id, ok := a.cellBySite[site]
	if !ok {
		panic("voronoi: no cell registered for site")
	}
	return id
}

func (a *arena) newHalfedge(e edgeID, left, right cellID) halfedgeID {
	ed := a.edges[e]
	var angle float64
	if right != nilCell {
		ls := a.cells[left].site
		rs := a.cells[right].site
		angle = math.Atan2(rs.Y-ls.Y, rs.X-ls.X)
	} else {
		va, vb := ed.va, ed.vb
		if ed.leftCell == left {
			angle = math.Atan2(vb.X-va.X, va.Y-vb.Y)
		} else {
			angle = math.Atan2(va.X-vb.X, vb.Y-va.Y)
		}
	}
	id := halfedgeID(len(a.halfedges))
	a.halfedges = append(a.halfedges, halfedge{cell: left, edge: e, angle: angle})
	return id
}

func (a *arena) newEdge(left, right cellID) edgeID {
	id := edgeID(len(a.edges))
	a.edges = append(a.edges, edge{leftCell: left, rightCell: right, va: NoVertex, vb: NoVertex})
	return id
}

func (a *arena) newBorderEdge(left cellID, va, vb Vertex) edgeID {
	id := edgeID(len(a.edges))
	a.edges = append(a.edges, edge{leftCell: left, rightCell: nilCell, va: va, vb: vb, isGap: true})
	return id
}

// createEdge allocates an edge between two cells, assigning any already
// known endpoints, and appends the corresponding half-edges to both
// cells' boundary lists.
func (a *arena) createEdge(left, right cellID, va, vb Vertex) edgeID {
	e := a.newEdge(left, right)
	if va != NoVertex {
		a.setEdgeStartpoint(e, left, right, va)
	}
	if vb != NoVertex {
		a.setEdgeEndpoint(e, left, right, vb)
	}
	a.cells[left].halfedges = append(a.cells[left].halfedges, a.newHalfedge(e, left, right))
	a.cells[right].halfedges = append(a.cells[right].halfedges, a.newHalfedge(e, right, left))
	return e
}

func (a *arena) setEdgeStartpoint(e edgeID, left, right cellID, v Vertex) {
	ed := &a.edges[e]
	if ed.va == NoVertex && ed.vb == NoVertex {
		ed.va = v
		ed.leftCell = left
		ed.rightCell = right
	} else if ed.leftCell == right {
		ed.vb = v
	} else {
		ed.va = v
	}
}

func (a *arena) setEdgeEndpoint(e edgeID, left, right cellID, v Vertex) {
	a.setEdgeStartpoint(e, right, left, v)
}

// prepareCell drops half-edges whose edge was never clipped to a finite
// segment and sorts the remaining ones clockwise by angle (matching the
// teacher's convention — descending angle — which, combined with the
// engine's y-down sweep, produces a CCW walk in the usual y-up sense
// spec.md §4.4 describes).
func (a *arena) prepareCell(c cellID) int {
	hs := a.cells[c].halfedges
	kept := hs[:0]
	for _, h := range hs {
		e := a.edges[a.halfedges[h].edge]
		if e.va != NoVertex && e.vb != NoVertex {
			kept = append(kept, h)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return a.halfedges[kept[i]].angle > a.halfedges[kept[j]].angle
	})
	a.cells[c].halfedges = kept
	return len(kept)
}

func (h halfedge) startPoint(a *arena) Vertex {
	e := a.edges[h.edge]
	if e.leftCell == h.cell {
		return e.va
	}
	return e.vb
}

func (h halfedge) endPoint(a *arena) Vertex {
	e := a.edges[h.edge]
	if e.leftCell == h.cell {
		return e.vb
	}
	return e.va
}
