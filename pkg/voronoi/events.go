package voronoi

import "container/heap"

// circleEvent is a pending arc collapse: the beach section at arc
// disappears at (x, ycenter) when the sweep line reaches y. Ordering
// matches spec.md §4.4's Event Queue: a min-priority queue keyed by
// (y, vertex.x) lexicographically.
type circleEvent struct {
	arc             arcID
	site            Vertex
	x, y, ycenter   float64
	heapIdx         int
}

// eventHeap is a container/heap-backed priority queue. Unlike the beach
// line, spec.md §3/§4.4 describes the event queue only as "a
// min-priority queue" with no structural requirement beyond that, so this
// uses the standard library's heap rather than another bespoke tree — the
// corpus has no alternative priority-queue library, and container/heap is
// the idiomatic Go answer to exactly this shape of problem.
type eventHeap struct {
	items []*circleEvent
}

func (h *eventHeap) Len() int { return len(h.items) }

func (h *eventHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

func (h *eventHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].heapIdx = i
	h.items[j].heapIdx = j
}

func (h *eventHeap) Push(x any) {
	e := x.(*circleEvent)
	e.heapIdx = len(h.items)
	h.items = append(h.items, e)
}

func (h *eventHeap) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	e.heapIdx = -1
	return e
}

// events wraps eventHeap with the arc-keyed lookup the engine needs to
// detach a specific arc's pending circle event.
type events struct {
	h eventHeap
}

func newEvents() *events {
	e := &events{}
	heap.Init(&e.h)
	return e
}

func (e *events) push(ev *circleEvent) {
	heap.Push(&e.h, ev)
}

func (e *events) remove(ev *circleEvent) {
	if ev.heapIdx < 0 || ev.heapIdx >= len(e.h.items) || e.h.items[ev.heapIdx] != ev {
		return
	}
	heap.Remove(&e.h, ev.heapIdx)
}

// peek returns the lowest (y, x) pending event, or nil if the queue is
// empty.
func (e *events) peek() *circleEvent {
	if len(e.h.items) == 0 {
		return nil
	}
	return e.h.items[0]
}

func (e *events) popMin() *circleEvent {
	if len(e.h.items) == 0 {
		return nil
	}
	return heap.Pop(&e.h).(*circleEvent)
}
