package polygon

import (
	"math"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
)

// ring is the vertex list of one part (ring or line) of a polygon; its
// position in polygonPartition.rings is the part's index, which lets edge
// matches be checked for cyclic adjacency within the same ring.
type ring struct {
	pts []geometry.Point
}

// polygonPartition is the per-polygon vertex bucket index spec.md §4.3.1
// describes: an index over one axis (x) of the polygon's own extent, so
// that probing a guest vertex against a host polygon only scans vertices
// in nearby buckets instead of the host's full vertex list.
type polygonPartition struct {
	rings      []ring
	minX, maxX float64
	numBuckets int
	// bucket -> list of (ringIdx, pointIdx)
	buckets [][][2]int
}

func newPolygonPartition(geoms *geometry.Collection, idx int) *polygonPartition {
	pp := &polygonPartition{}
	minX, maxX := math.Inf(1), math.Inf(-1)
	total := 0
	for p := 0; p < geoms.NumParts(idx); p++ {
		pts, _ := geoms.Ring(idx, p)
		pp.rings = append(pp.rings, ring{pts: pts})
		total += len(pts)
		for _, pt := range pts {
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
		}
	}
	if total == 0 {
		minX, maxX = 0, 0
	}
	pp.minX, pp.maxX = minX, maxX

	nb := int(math.Sqrt(float64(total))) + 1
	if nb < 1 {
		nb = 1
	}
	pp.numBuckets = nb
	pp.buckets = make([][][2]int, nb)

	for ri, r := range pp.rings {
		for pi, pt := range r.pts {
			b := pp.bucketOf(pt.X)
			pp.buckets[b] = append(pp.buckets[b], [2]int{ri, pi})
		}
	}
	return pp
}

func (pp *polygonPartition) bucketOf(x float64) int {
	span := pp.maxX - pp.minX
	if span <= 0 {
		return 0
	}
	b := int((x - pp.minX) * float64(pp.numBuckets) / span)
	if b < 0 {
		b = 0
	}
	if b >= pp.numBuckets {
		b = pp.numBuckets - 1
	}
	return b
}

// near reports whether a candidate vertex lies within eps of probe, using
// max-norm distance, matching spec.md §4.3.1's "distance in max-norm or
// equivalent".
func near(a, b geometry.Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// closeVertex probes pp's buckets around probe.X for any vertex within eps
// of probe, returning the first hit (ring index, point index, ok).
func (pp *polygonPartition) closeVertex(probe geometry.Point, eps float64) (ri, pi int, ok bool) {
	center := pp.bucketOf(probe.X)
	span := pp.maxX - pp.minX
	spread := 1
	if span > 0 {
		spread = int(eps*float64(pp.numBuckets)/span) + 1
	}
	for b := center - spread; b <= center+spread; b++ {
		if b < 0 || b >= pp.numBuckets {
			continue
		}
		for _, rp := range pp.buckets[b] {
			cand := pp.rings[rp[0]].pts[rp[1]]
			if near(cand, probe, eps) {
				return rp[0], rp[1], true
			}
		}
	}
	return 0, 0, false
}

// allCloseVertices is like closeVertex but returns every hit, needed for
// the rook test's cyclic-adjacency check.
func (pp *polygonPartition) allCloseVertices(probe geometry.Point, eps float64) [][2]int {
	center := pp.bucketOf(probe.X)
	span := pp.maxX - pp.minX
	spread := 1
	if span > 0 {
		spread = int(eps*float64(pp.numBuckets)/span) + 1
	}
	var hits [][2]int
	for b := center - spread; b <= center+spread; b++ {
		if b < 0 || b >= pp.numBuckets {
			continue
		}
		for _, rp := range pp.buckets[b] {
			cand := pp.rings[rp[0]].pts[rp[1]]
			if near(cand, probe, eps) {
				hits = append(hits, rp)
			}
		}
	}
	return hits
}

// sweepTest decides queen/rook adjacency between a host and guest polygon
// under tolerance eps, per spec.md §4.3.1.
func sweepTest(host, guest *polygonPartition, isQueen bool, eps float64) bool {
	if isQueen {
		for _, r := range guest.rings {
			for _, pt := range r.pts {
				if _, _, ok := host.closeVertex(pt, eps); ok {
					return true
				}
			}
		}
		return false
	}

	// Rook: look for two consecutive coincident vertices, i.e. an edge of
	// the guest whose two endpoints both match an edge of the host
	// (allowing for the two rings running in opposite orientation).
	for _, gr := range guest.rings {
		m := len(gr.pts)
		if m < 2 {
			continue
		}
		for j := 0; j < m; j++ {
			a := gr.pts[j]
			b := gr.pts[(j+1)%m]
			hitsA := host.allCloseVertices(a, eps)
			if len(hitsA) == 0 {
				continue
			}
			hitsB := host.allCloseVertices(b, eps)
			if len(hitsB) == 0 {
				continue
			}
			for _, ha := range hitsA {
				hr := host.rings[ha[0]]
				n := len(hr.pts)
				if n < 2 {
					continue
				}
				fwd := [2]int{ha[0], (ha[1] + 1) % n}
				bwd := [2]int{ha[0], (ha[1] - 1 + n) % n}
				for _, hb := range hitsB {
					if hb == fwd || hb == bwd {
						return true
					}
				}
			}
		}
	}
	return false
}
