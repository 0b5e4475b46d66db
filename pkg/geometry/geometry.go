// Package geometry provides the read-only geometry collaborator the
// contiguity core consumes. It owns no algorithms of its own; it is the
// concrete shape of the "geometry ingestion" interface that spec.md places
// outside the core (coordinate transforms, shapefile/GeoJSON readers, and
// the like remain the caller's responsibility).
package geometry

import "fmt"

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned bounding box, inclusive of both corners.
type BBox struct {
	Min, Max Point
}

// Intersects reports whether two bounding boxes overlap, including the
// case where they only touch along an edge or at a corner.
func (b BBox) Intersects(o BBox) bool {
	notIntersecting := b.Min.X > o.Max.X || b.Max.X < o.Min.X ||
		b.Min.Y > o.Max.Y || b.Max.Y < o.Min.Y
	return !notIntersecting
}

// Collection is a geometry collection stored as parallel coordinate
// arrays, matching spec.md §3: Parts gives the start offset of each
// ring/line, Sizes gives the number of parts per geometry, and Holes
// flags each part as a hole (polygons only). An empty geometry occupies
// one slot in Parts but contributes zero points.
type Collection struct {
	X, Y  []float64
	Parts []int
	Sizes []int
	Holes []bool
}

// NumGeoms returns the number of geometries in the collection.
func (c *Collection) NumGeoms() int {
	return len(c.Sizes)
}

// NumParts returns the number of rings/lines making up geometry i.
func (c *Collection) NumParts(i int) int {
	return c.Sizes[i]
}

// partIndex returns the index into c.Parts of the first part of geometry i.
func (c *Collection) partIndex(i int) int {
	idx := 0
	for g := 0; g < i; g++ {
		n := c.Sizes[g]
		if n == 0 {
			n = 1
		}
		idx += n
	}
	return idx
}

// partRange returns the [start, end) slice of c.X/c.Y covered by part p of
// geometry i (p is 0-based within the geometry).
func (c *Collection) partRange(i, p int) (start, end int) {
	pi := c.partIndex(i) + p
	start = c.Parts[pi]
	if pi == len(c.Parts)-1 {
		end = len(c.X)
	} else {
		end = c.Parts[pi+1]
	}
	return start, end
}

// NumPoints returns the total number of vertices across all parts of
// geometry i.
func (c *Collection) NumPoints(i int) int {
	total := 0
	for p := 0; p < c.Sizes[i]; p++ {
		start, end := c.partRange(i, p)
		total += end - start
	}
	return total
}

// Point returns the k-th vertex of geometry i, walking parts in order.
func (c *Collection) Point(i, k int) Point {
	for p := 0; p < c.Sizes[i]; p++ {
		start, end := c.partRange(i, p)
		n := end - start
		if k < n {
			return Point{c.X[start+k], c.Y[start+k]}
		}
		k -= n
	}
	panic(fmt.Sprintf("geometry: point index %d out of range for geometry %d", k, i))
}

// Ring returns the vertices of part p (ring/line) of geometry i, and
// whether that part is a hole.
func (c *Collection) Ring(i, p int) (pts []Point, hole bool) {
	start, end := c.partRange(i, p)
	pts = make([]Point, 0, end-start)
	for k := start; k < end; k++ {
		pts = append(pts, Point{c.X[k], c.Y[k]})
	}
	pi := c.partIndex(i) + p
	if pi < len(c.Holes) {
		hole = c.Holes[pi]
	}
	return pts, hole
}

// BBox computes the bounding box of geometry i.
func (c *Collection) BBox(i int) BBox {
	n := c.NumPoints(i)
	if n == 0 {
		return BBox{}
	}
	first := c.Point(i, 0)
	box := BBox{Min: first, Max: first}
	for k := 1; k < n; k++ {
		p := c.Point(i, k)
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
	}
	return box
}

// Centroid returns the arithmetic mean of geometry i's vertices, counting
// a ring's closing vertex (a repeat of its first) only once. This is the
// vertex centroid, not the area centroid. The contiguity core itself does
// not call it.
func (c *Collection) Centroid(i int) Point {
	var sx, sy float64
	n := 0
	for p := 0; p < c.Sizes[i]; p++ {
		pts, _ := c.Ring(i, p)
		m := len(pts)
		if m > 1 && pts[0] == pts[m-1] {
			m--
		}
		for _, pt := range pts[:m] {
			sx += pt.X
			sy += pt.Y
		}
		n += m
	}
	if n == 0 {
		return Point{}
	}
	return Point{sx / float64(n), sy / float64(n)}
}

// Validate checks the preconditions spec.md §4.1 calls fatal: negative
// sizes and out-of-range part offsets. It does not check Holes length
// strictly; a geometry route that never inspects Holes (point route) can
// tolerate a short Holes slice.
func (c *Collection) Validate() error {
	if len(c.X) != len(c.Y) {
		return fmt.Errorf("geometry: X and Y have different lengths (%d vs %d)", len(c.X), len(c.Y))
	}
	total := 0
	for i, sz := range c.Sizes {
		if sz < 0 {
			return fmt.Errorf("geometry: geometry %d has negative size %d", i, sz)
		}
		n := sz
		if n == 0 {
			n = 1
		}
		total += n
	}
	if total != len(c.Parts) {
		return fmt.Errorf("geometry: parts length %d does not match sizes total %d", len(c.Parts), total)
	}
	for i, off := range c.Parts {
		if off < 0 || off > len(c.X) {
			return fmt.Errorf("geometry: parts[%d]=%d out of range for %d points", i, off, len(c.X))
		}
	}
	return nil
}
