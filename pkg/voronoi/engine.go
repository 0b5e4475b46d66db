package voronoi

import (
	"math"
	"sort"

	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"go.uber.org/zap"
)

// engine holds all of the per-call state for one Fortune's-algorithm run:
// the beach line, the circle-event queue, and the cell/edge/half-edge
// arena. It is discarded once CreateDiagram returns.
type engine struct {
	beach  *beachline
	events *events
	arena  *arena
	log    *telemetry.Logger
}

func newEngine(log *telemetry.Logger) *engine {
	return &engine{
		beach:  newBeachline(),
		events: newEvents(),
		arena:  newArena(),
		log:    log,
	}
}

func leftBreakPoint(beach *beachline, arc arcID, directrix float64) float64 {
	site := beach.site[arc]
	rfocx, rfocy := site.X, site.Y
	pby2 := rfocy - directrix
	if pby2 == 0 {
		return rfocx
	}

	lArc := beach.prev[arc]
	if lArc == nilArc {
		return math.Inf(-1)
	}
	lsite := beach.site[lArc]
	lfocx, lfocy := lsite.X, lsite.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	bcoef := hl / plby2
	if aby2 != 0 {
		return (-bcoef+math.Sqrt(bcoef*bcoef-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	return (rfocx + lfocx) / 2
}

func rightBreakPoint(beach *beachline, arc arcID, directrix float64) float64 {
	rArc := beach.next[arc]
	if rArc != nilArc {
		return leftBreakPoint(beach, rArc, directrix)
	}
	site := beach.site[arc]
	if site.Y == directrix {
		return site.X
	}
	return math.Inf(1)
}

func (e *engine) detachBeachSection(arc arcID) {
	e.detachCircleEvent(arc)
	e.beach.removeNode(arc)
}

func appendLeft(s []arcID, v arcID) []arcID {
	s = append(s, v)
	for i := len(s) - 1; i > 0; i-- {
		s[i] = s[i-1]
	}
	s[0] = v
	return s
}

func (e *engine) removeBeachSection(arc arcID) {
	beach := e.beach
	circ := beach.circle[arc]
	x, y := circ.x, circ.ycenter
	vertex := Vertex{x, y}

	previous := beach.prev[arc]
	next := beach.next[arc]
	disappearing := []arcID{arc}

	e.detachBeachSection(arc)

	lArc := previous
	for lArc != nilArc && e.circleMatches(lArc, x, y) {
		previous = beach.prev[lArc]
		disappearing = appendLeft(disappearing, lArc)
		e.detachBeachSection(lArc)
		lArc = previous
	}
	disappearing = appendLeft(disappearing, lArc)
	e.detachCircleEvent(lArc)

	rArc := next
	for rArc != nilArc && e.circleMatches(rArc, x, y) {
		next = beach.next[rArc]
		disappearing = append(disappearing, rArc)
		e.detachBeachSection(rArc)
		rArc = next
	}
	disappearing = append(disappearing, rArc)
	e.detachCircleEvent(rArc)

	nArcs := len(disappearing)
	for i := 1; i < nArcs; i++ {
		r := disappearing[i]
		l := disappearing[i-1]
		lCell := e.arena.cellOf(beach.site[l])
		rCell := e.arena.cellOf(beach.site[r])
		e.arena.setEdgeStartpoint(beach.edge[r], lCell, rCell, vertex)
	}

	l := disappearing[0]
	r := disappearing[nArcs-1]
	lCell := e.arena.cellOf(beach.site[l])
	rCell := e.arena.cellOf(beach.site[r])
	beach.edge[r] = e.arena.createEdge(lCell, rCell, NoVertex, vertex)

	e.attachCircleEvent(l)
	e.attachCircleEvent(r)
}

// circleMatches reports whether arc has a pending circle event that
// collapses at the same (x, ycenter) as the event currently being
// resolved — the condition spec.md §4.4's circle-event handling uses to
// pull in additional simultaneously-collapsing arcs.
func (e *engine) circleMatches(arc arcID, x, y float64) bool {
	ev := e.beach.circle[arc]
	if ev == nil {
		return false
	}
	return math.Abs(x-ev.x) < 1e-9 && math.Abs(y-ev.ycenter) < 1e-9
}

func (e *engine) addBeachSection(site Vertex) {
	beach := e.beach
	x := site.X
	directrix := site.Y

	var lNode, rNode arcID = nilArc, nilArc
	var dxl, dxr float64
	node := beach.root

	for node != nilArc {
		dxl = leftBreakPoint(beach, node, directrix) - x
		if dxl > 1e-9 {
			node = beach.left[node]
		} else {
			dxr = x - rightBreakPoint(beach, node, directrix)
			if dxr > 1e-9 {
				if beach.right[node] == nilArc {
					lNode = node
					break
				}
				node = beach.right[node]
			} else {
				if dxl > -1e-9 {
					lNode = beach.prev[node]
					rNode = node
				} else if dxr > -1e-9 {
					lNode = node
					rNode = beach.next[node]
				} else {
					lNode = node
					rNode = node
				}
				break
			}
		}
	}

	newArc := beach.insertSuccessor(lNode, site)

	if lNode == nilArc && rNode == nilArc {
		return
	}

	if lNode == rNode && lNode != nilArc {
		e.detachCircleEvent(lNode)

		rNode = beach.insertSuccessor(newArc, beach.site[lNode])

		lCell := e.arena.cellOf(beach.site[lNode])
		newCell := e.arena.cellOf(site)
		beach.edge[newArc] = e.arena.createEdge(lCell, newCell, NoVertex, NoVertex)
		beach.edge[rNode] = beach.edge[newArc]

		e.attachCircleEvent(lNode)
		e.attachCircleEvent(rNode)
		return
	}

	if lNode != nilArc && rNode == nilArc {
		lCell := e.arena.cellOf(beach.site[lNode])
		newCell := e.arena.cellOf(site)
		beach.edge[newArc] = e.arena.createEdge(lCell, newCell, NoVertex, NoVertex)
		return
	}

	if lNode != rNode {
		e.detachCircleEvent(lNode)
		e.detachCircleEvent(rNode)

		leftSite := beach.site[lNode]
		ax, ay := leftSite.X, leftSite.Y
		bx, by := site.X-ax, site.Y-ay
		rightSite := beach.site[rNode]
		cx, cy := rightSite.X-ax, rightSite.Y-ay
		d := 2 * (bx*cy - by*cx)
		hb := bx*bx + by*by
		hc := cx*cx + cy*cy
		vertex := Vertex{(cy*hb-by*hc)/d + ax, (bx*hc-cx*hb)/d + ay}

		lCell := e.arena.cellOf(leftSite)
		midCell := e.arena.cellOf(site)
		rCell := e.arena.cellOf(rightSite)

		e.arena.setEdgeStartpoint(beach.edge[rNode], lCell, rCell, vertex)

		beach.edge[newArc] = e.arena.createEdge(lCell, midCell, NoVertex, vertex)
		beach.edge[rNode] = e.arena.createEdge(midCell, rCell, NoVertex, vertex)

		e.attachCircleEvent(lNode)
		e.attachCircleEvent(rNode)
	}
}

func (e *engine) attachCircleEvent(arc arcID) {
	beach := e.beach
	lArc := beach.prev[arc]
	rArc := beach.next[arc]
	if lArc == nilArc || rArc == nilArc {
		return
	}
	leftSite := beach.site[lArc]
	cSite := beach.site[arc]
	rightSite := beach.site[rArc]

	if leftSite == rightSite {
		return
	}

	bx, by := cSite.X, cSite.Y
	ax, ay := leftSite.X-bx, leftSite.Y-by
	cx, cy := rightSite.X-bx, rightSite.Y-by

	d := 2 * (ax*cy - ay*cx)
	if d >= -2e-12 {
		return
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d
	ycenter := y + by

	ev := &circleEvent{
		arc:     arc,
		site:    cSite,
		x:       x + bx,
		y:       ycenter + math.Sqrt(x*x+y*y),
		ycenter: ycenter,
	}
	beach.circle[arc] = ev
	e.events.push(ev)
}

func (e *engine) detachCircleEvent(arc arcID) {
	if arc == nilArc {
		return
	}
	beach := e.beach
	if ev := beach.circle[arc]; ev != nil {
		e.events.remove(ev)
		beach.circle[arc] = nil
	}
}

// run executes Fortune's sweep over sites (pre-sorted by (y, x), already
// deduplicated by the caller), leaving the raw arena in e.arena once every
// site and circle event has been processed. Clipping and gap-filling happen
// afterward in Diagram construction.
func (e *engine) run(sites []Site) {
	e.log.Debug("fortune sweep starting", zap.Int("sites", len(sites)))

	pop := func() *Site {
		if len(sites) == 0 {
			return nil
		}
		s := sites[0]
		sites = sites[1:]
		return &s
	}

	site := pop()
	for {
		circle := e.events.peek()
		if site != nil && (circle == nil || site.Pt.Y < circle.y || (site.Pt.Y == circle.y && site.Pt.X < circle.x)) {
			e.arena.newCell(site.Pt, site.Orig)
			e.addBeachSection(site.Pt)
			site = pop()
		} else if circle != nil {
			e.events.popMin()
			e.removeBeachSection(circle.arc)
		} else {
			break
		}
	}

	e.log.Debug("fortune sweep complete", zap.Int("cells", len(e.arena.cells)), zap.Int("edges", len(e.arena.edges)))
}

// sortByYThenX sorts sites in the (y, x) lexicographic order spec.md §4.4
// requires for both preprocessing and degenerate-case resolution.
func sortByYThenX(pts []Site) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Pt.Y != pts[j].Pt.Y {
			return pts[i].Pt.Y < pts[j].Pt.Y
		}
		return pts[i].Pt.X < pts[j].Pt.X
	})
}
