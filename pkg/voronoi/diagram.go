package voronoi

import (
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
)

// Diagram is the clipped, gap-closed result of one CreateDiagram call:
// one cell per surviving site, addressable by position in Cells().
type Diagram struct {
	arena *arena
	bbox  BoundingBox

	cells  []int   // Cells()[i] is the representative original index of cell i
	groups [][]int // groups[i] holds every original index collapsed into cell i

	outside []int // original indices dropped for falling outside bbox
}

// CreateDiagram runs Fortune's sweep over points, clips every edge to
// bbox, and closes each surviving cell's boundary along the rectangle
// (spec.md §4.4.1-§4.4.2). Points outside bbox are dropped; points sharing
// an exact coordinate with an earlier point are collapsed onto that
// point's cell rather than inserted as a second site, matching the
// decision recorded in DESIGN.md for duplicate-coordinate sites.
func CreateDiagram(points []Vertex, bbox BoundingBox, log *telemetry.Logger) *Diagram {
	seen := make(map[Vertex]int, len(points))
	sites := make([]Site, 0, len(points))
	var outside []int

	for i, p := range points {
		if p.X < bbox.MinX || p.X > bbox.MaxX || p.Y < bbox.MinY || p.Y > bbox.MaxY {
			outside = append(outside, i)
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = i
		sites = append(sites, Site{Pt: p, Orig: i})
	}

	sortByYThenX(sites)

	e := newEngine(log)
	e.run(sites)
	clipEdges(e.arena, bbox)
	closeCells(e.arena, bbox)

	d := &Diagram{arena: e.arena, bbox: bbox, outside: outside}
	d.cells = make([]int, len(e.arena.cells))
	d.groups = make([][]int, len(e.arena.cells))
	for c, cl := range e.arena.cells {
		d.cells[c] = cl.origIndex
	}

	for i, p := range points {
		if cid, ok := e.arena.cellBySite[p]; ok {
			d.groups[cid] = append(d.groups[cid], i)
		}
	}

	return d
}

// Cells returns the representative original index of each surviving cell,
// in cell order; pair indices returned by RookPairs/QueenPairs index into
// this slice (and into Groups).
func (d *Diagram) Cells() []int { return d.cells }

// Groups returns, for each surviving cell, every original index (the
// representative plus any exact-coordinate duplicates) mapped onto it.
func (d *Diagram) Groups() [][]int { return d.groups }

// Segment is one clipped diagram edge, exposed for rendering: Gap marks a
// synthetic boundary-closing edge rather than a real cell-to-cell border.
type Segment struct {
	Va, Vb Vertex
	Gap    bool
}

// Segments returns every finite, clipped edge (real and gap) in the
// diagram, for consumers that draw it rather than read adjacency from it.
func (d *Diagram) Segments() []Segment {
	segs := make([]Segment, 0, len(d.arena.edges))
	for _, e := range d.arena.edges {
		if e.va == NoVertex || e.vb == NoVertex {
			continue
		}
		segs = append(segs, Segment{Va: e.va, Vb: e.vb, Gap: e.isGap})
	}
	return segs
}

// Outside returns the original indices dropped for falling outside the
// clipping rectangle; each maps to an empty neighbor set.
func (d *Diagram) Outside() []int { return d.outside }

// RookPairs returns every pair of cell indices that share a finite,
// non-gap Voronoi edge — cells with a common border (spec.md §4.4.3).
// Each pair is ordered (smaller, larger), as in QueenPairs.
func (d *Diagram) RookPairs() [][2]int {
	var pairs [][2]int
	for _, e := range d.arena.edges {
		if e.isGap || e.rightCell == nilCell {
			continue
		}
		if e.va == NoVertex || e.vb == NoVertex {
			continue
		}
		a, b := int(e.leftCell), int(e.rightCell)
		if a > b {
			a, b = b, a
		}
		pairs = append(pairs, [2]int{a, b})
	}
	return pairs
}

// QueenPairs returns every pair of cell indices that share at least one
// diagram vertex, including cells that meet only at a point (a
// higher-order Voronoi vertex, or a shared bounding-rectangle corner where
// two cells' gap edges end at the same point) — a superset of RookPairs.
func (d *Diagram) QueenPairs() [][2]int {
	atVertex := make(map[Vertex]map[int]struct{})
	add := func(v Vertex, c int) {
		set, ok := atVertex[v]
		if !ok {
			set = make(map[int]struct{})
			atVertex[v] = set
		}
		set[c] = struct{}{}
	}
	for _, e := range d.arena.edges {
		if e.va == NoVertex || e.vb == NoVertex {
			continue
		}
		add(e.va, int(e.leftCell))
		add(e.vb, int(e.leftCell))
		if e.rightCell != nilCell {
			add(e.va, int(e.rightCell))
			add(e.vb, int(e.rightCell))
		}
	}

	seen := make(map[[2]int]struct{})
	var pairs [][2]int
	for _, set := range atVertex {
		if len(set) < 2 {
			continue
		}
		cells := make([]int, 0, len(set))
		for c := range set {
			cells = append(cells, c)
		}
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				a, b := cells[i], cells[j]
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				pairs = append(pairs, key)
			}
		}
	}
	return pairs
}
