package voronoi

import "math"

// connectEdge assigns a final endpoint to any edge still extending to
// infinity on one side, by intersecting the perpendicular bisector of its
// two cells' sites with the clipping rectangle. Ported from the teacher's
// connectEdge, preserving its exact 1e-9 equality tolerance (spec.md §9).
func connectEdge(a *arena, e edgeID, bbox BoundingBox) bool {
	ed := &a.edges[e]
	if ed.vb != NoVertex {
		return true
	}

	va := ed.va
	xl, xr := bbox.MinX, bbox.MaxX
	yt, yb := bbox.MinY, bbox.MaxY
	leftSite := a.cells[ed.leftCell].site
	rightSite := a.cells[ed.rightCell].site
	lx, ly := leftSite.X, leftSite.Y
	rx, ry := rightSite.X, rightSite.Y
	fx := (lx + rx) / 2
	fy := (ly + ry) / 2

	var fm, fb float64
	if !equalEps(ry, ly) {
		fm = (lx - rx) / (ry - ly)
		fb = fy - fm*fx
	}

	var vb Vertex
	switch {
	case equalEps(ry, ly):
		if fx < xl || fx >= xr {
			return false
		}
		if lx > rx {
			if va == NoVertex {
				va = Vertex{fx, yt}
			} else if va.Y >= yb {
				return false
			}
			vb = Vertex{fx, yb}
		} else {
			if va == NoVertex {
				va = Vertex{fx, yb}
			} else if va.Y < yt {
				return false
			}
			vb = Vertex{fx, yt}
		}
	case fm < -1 || fm > 1:
		if lx > rx {
			if va == NoVertex {
				va = Vertex{(yt - fb) / fm, yt}
			} else if va.Y >= yb {
				return false
			}
			vb = Vertex{(yb - fb) / fm, yb}
		} else {
			if va == NoVertex {
				va = Vertex{(yb - fb) / fm, yb}
			} else if va.Y < yt {
				return false
			}
			vb = Vertex{(yt - fb) / fm, yt}
		}
	default:
		if ly < ry {
			if va == NoVertex {
				va = Vertex{xl, fm*xl + fb}
			} else if va.X >= xr {
				return false
			}
			vb = Vertex{xr, fm*xr + fb}
		} else {
			if va == NoVertex {
				va = Vertex{xr, fm*xr + fb}
			} else if va.X < xl {
				return false
			}
			vb = Vertex{xl, fm*xl + fb}
		}
	}
	ed.va = va
	ed.vb = vb
	return true
}

// clipEdge trims an edge to the part of itself lying inside bbox, via a
// Liang-Barsky style parametric clip. Ported verbatim from the teacher's
// clipEdge.
func clipEdge(a *arena, e edgeID, bbox BoundingBox) bool {
	ed := &a.edges[e]
	ax, ay := ed.va.X, ed.va.Y
	bx, by := ed.vb.X, ed.vb.Y
	t0, t1 := 0.0, 1.0
	dx := bx - ax
	dy := by - ay

	q := ax - bbox.MinX
	if dx == 0 && q < 0 {
		return false
	}
	r := -q / dx
	if dx < 0 {
		if r < t0 {
			return false
		} else if r < t1 {
			t1 = r
		}
	} else if dx > 0 {
		if r > t1 {
			return false
		} else if r > t0 {
			t0 = r
		}
	}

	q = bbox.MaxX - ax
	if dx == 0 && q < 0 {
		return false
	}
	r = q / dx
	if dx < 0 {
		if r > t1 {
			return false
		} else if r > t0 {
			t0 = r
		}
	} else if dx > 0 {
		if r < t0 {
			return false
		} else if r < t1 {
			t1 = r
		}
	}

	q = ay - bbox.MinY
	if dy == 0 && q < 0 {
		return false
	}
	r = -q / dy
	if dy < 0 {
		if r < t0 {
			return false
		} else if r < t1 {
			t1 = r
		}
	} else if dy > 0 {
		if r > t1 {
			return false
		} else if r > t0 {
			t0 = r
		}
	}

	q = bbox.MaxY - ay
	if dy == 0 && q < 0 {
		return false
	}
	r = q / dy
	if dy < 0 {
		if r > t1 {
			return false
		} else if r > t0 {
			t0 = r
		}
	} else if dy > 0 {
		if r < t0 {
			return false
		} else if r < t1 {
			t1 = r
		}
	}

	if t0 > 0 {
		ed.va = Vertex{ax + t0*dx, ay + t0*dy}
	}
	if t1 < 1 {
		ed.vb = Vertex{ax + t1*dx, ay + t1*dy}
	}
	return true
}

// clipEdges resolves every still-infinite edge against bbox and marks the
// ones that end up degenerate or entirely outside it as unset (both
// endpoints NoVertex), so prepareCell drops them later. Edges are never
// removed from the arena or reindexed here: halfedges reference them by
// edgeID, and those ids must stay stable for the rest of the construction.
func clipEdges(a *arena, bbox BoundingBox) {
	for i := range a.edges {
		if a.edges[i].isGap {
			continue
		}
		e := edgeID(i)
		ok := connectEdge(a, e, bbox) && clipEdge(a, e, bbox)
		ed := a.edges[i]
		if ok && math.Abs(ed.va.X-ed.vb.X) < 1e-9 && math.Abs(ed.va.Y-ed.vb.Y) < 1e-9 {
			ok = false
		}
		if !ok {
			a.edges[i].va = NoVertex
			a.edges[i].vb = NoVertex
		}
	}
}

// closeCells synthesizes gap edges (rightCell == nilCell) to close every
// cell's boundary along the clipping rectangle, per spec.md §4.4.2. A site
// with zero surviving half-edges (the single-site case, where the sweep
// never created any edge at all) becomes a full-rectangle cell via four
// gap edges, per spec.md §4.4.2's explicit rule.
func closeCells(a *arena, bbox BoundingBox) {
	xl, xr := bbox.MinX, bbox.MaxX
	yt, yb := bbox.MinY, bbox.MaxY

	for c := range a.cells {
		cid := cellID(c)
		if a.prepareCell(cid) == 0 {
			closeEmptyCell(a, cid, bbox)
			continue
		}

		for iLeft := 0; iLeft < len(a.cells[cid].halfedges); iLeft++ {
			halfedges := a.cells[cid].halfedges
			iRight := (iLeft + 1) % len(halfedges)
			endpoint := a.halfedges[halfedges[iLeft]].endPoint(a)
			startpoint := a.halfedges[halfedges[iRight]].startPoint(a)
			if math.Abs(endpoint.X-startpoint.X) < 1e-9 && math.Abs(endpoint.Y-startpoint.Y) < 1e-9 {
				continue
			}

			va := endpoint
			vb := endpoint
			switch {
			case equalEps(endpoint.X, xl) && lessEps(endpoint.Y, yb):
				if equalEps(startpoint.X, xl) {
					vb = Vertex{xl, startpoint.Y}
				} else {
					vb = Vertex{xl, yb}
				}
			case equalEps(endpoint.Y, yb) && lessEps(endpoint.X, xr):
				if equalEps(startpoint.Y, yb) {
					vb = Vertex{startpoint.X, yb}
				} else {
					vb = Vertex{xr, yb}
				}
			case equalEps(endpoint.X, xr) && greaterEps(endpoint.Y, yt):
				if equalEps(startpoint.X, xr) {
					vb = Vertex{xr, startpoint.Y}
				} else {
					vb = Vertex{xr, yt}
				}
			case equalEps(endpoint.Y, yt) && greaterEps(endpoint.X, xl):
				if equalEps(startpoint.Y, yt) {
					vb = Vertex{startpoint.X, yt}
				} else {
					vb = Vertex{xl, yt}
				}
			}

			ge := a.newBorderEdge(cid, va, vb)
			gh := a.newHalfedge(ge, cid, nilCell)
			tail := append([]halfedgeID{}, a.cells[cid].halfedges[iLeft+1:]...)
			a.cells[cid].halfedges = append(a.cells[cid].halfedges[:iLeft+1], gh)
			a.cells[cid].halfedges = append(a.cells[cid].halfedges, tail...)
		}
	}
}

// closeEmptyCell gives a site with no surviving half-edges (only possible
// when it is the sole site in the diagram) the entire clipping rectangle
// as its cell, via four gap edges walking the rectangle corners CCW.
func closeEmptyCell(a *arena, cid cellID, bbox BoundingBox) {
	xl, xr := bbox.MinX, bbox.MaxX
	yt, yb := bbox.MinY, bbox.MaxY
	corners := [4]Vertex{{xl, yt}, {xl, yb}, {xr, yb}, {xr, yt}}
	for i := 0; i < 4; i++ {
		va := corners[i]
		vb := corners[(i+1)%4]
		ge := a.newBorderEdge(cid, va, vb)
		gh := a.newHalfedge(ge, cid, nilCell)
		a.cells[cid].halfedges = append(a.cells[cid].halfedges, gh)
	}
}
