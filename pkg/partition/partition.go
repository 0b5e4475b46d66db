// Package partition implements the single-axis and multi-axis bucketed
// partitions the polygon contiguity engine uses to enumerate candidate
// polygon pairs without an O(N^2) scan (spec.md §4.3, §4.5).
//
// Both structures store, per bucket, a chain of item ids rather than
// pointer-heavy linked lists. BasePartition's chains are singly linked
// through a plain int-indexed "next" array. PartitionM's chains are doubly
// linked through next/prev maps keyed by (item, bucket), so an item can be
// unlinked from every bucket of its span without walking the chains.
package partition

// EmptyCount marks the end of a bucket's chain, mirroring the sentinel the
// original C++ partition used (geoda::EMPTY_COUNT).
const EmptyCount = -1

// BasePartition buckets a fixed set of items along one axis by inserting
// each item into the bucket its coordinate falls in. It never removes an
// item once inserted: gMinX/gMaxX in spec.md §4.3 are built once and only
// ever walked forward.
type BasePartition struct {
	numBuckets int
	axisLength float64
	heads      []int // bucket -> head item id, or EmptyCount
	next       []int // item id -> next item id in the same bucket, or EmptyCount
}

// NewBasePartition allocates a partition for numItems items over
// numBuckets buckets spanning [0, axisLength).
func NewBasePartition(numItems, numBuckets int, axisLength float64) *BasePartition {
	if numBuckets < 1 {
		numBuckets = 1
	}
	p := &BasePartition{
		numBuckets: numBuckets,
		axisLength: axisLength,
		heads:      make([]int, numBuckets),
		next:       make([]int, numItems),
	}
	for i := range p.heads {
		p.heads[i] = EmptyCount
	}
	for i := range p.next {
		p.next[i] = EmptyCount
	}
	return p
}

// Cells returns the number of buckets.
func (p *BasePartition) Cells() int {
	return p.numBuckets
}

func (p *BasePartition) bucketOf(coord float64) int {
	if p.axisLength <= 0 {
		return 0
	}
	b := int(coord * float64(p.numBuckets) / p.axisLength)
	if b < 0 {
		b = 0
	}
	if b >= p.numBuckets {
		b = p.numBuckets - 1
	}
	return b
}

// Include inserts id at the head of the bucket corresponding to coord.
func (p *BasePartition) Include(id int, coord float64) {
	b := p.bucketOf(coord)
	p.next[id] = p.heads[b]
	p.heads[b] = id
}

// First returns the head item id of a bucket, or EmptyCount if empty.
func (p *BasePartition) First(bucket int) int {
	if bucket < 0 || bucket >= p.numBuckets {
		return EmptyCount
	}
	return p.heads[bucket]
}

// Tail returns the next item id in id's chain, or EmptyCount.
func (p *BasePartition) Tail(id int) int {
	return p.next[id]
}

// PartitionM is the multi-axis partition used for the y-extent sweep
// state (spec.md §4.3's gYPartition): each item spans a contiguous range
// of buckets [lowest, upmost], and Include/Remove activate or deactivate
// the item across every bucket in that span at once.
type PartitionM struct {
	numBuckets int
	axisLength float64

	lower, upper []int // item id -> [lowest, upmost] bucket index

	// per-bucket active chain, plus per-(item,bucket) next-in-that-bucket.
	heads []int             // bucket -> head item id, or EmptyCount
	next  map[[2]int]int    // (item, bucket) -> next item id in that bucket
	prev  map[[2]int]int    // (item, bucket) -> previous item id in that bucket (for O(1) removal)
	alive map[int]bool      // item id -> currently included
}

// NewPartitionM allocates a y-partition for numItems items over numBuckets
// buckets spanning [0, axisLength).
func NewPartitionM(numItems, numBuckets int, axisLength float64) *PartitionM {
	if numBuckets < 1 {
		numBuckets = 1
	}
	m := &PartitionM{
		numBuckets: numBuckets,
		axisLength: axisLength,
		lower:      make([]int, numItems),
		upper:      make([]int, numItems),
		heads:      make([]int, numBuckets),
		next:       make(map[[2]int]int),
		prev:       make(map[[2]int]int),
		alive:      make(map[int]bool, numItems),
	}
	for i := range m.heads {
		m.heads[i] = EmptyCount
	}
	return m
}

func (m *PartitionM) bucketOf(coord float64) int {
	if m.axisLength <= 0 {
		return 0
	}
	b := int(coord * float64(m.numBuckets) / m.axisLength)
	if b < 0 {
		b = 0
	}
	if b >= m.numBuckets {
		b = m.numBuckets - 1
	}
	return b
}

// InitIx records item id's bucket span for coordinates [lower, upper]
// without activating it; Include activates it later.
func (m *PartitionM) InitIx(id int, lower, upper float64) {
	lo := m.bucketOf(lower)
	hi := m.bucketOf(upper)
	if lo > hi {
		lo, hi = hi, lo
	}
	m.lower[id] = lo
	m.upper[id] = hi
}

// Lowest returns the lowest bucket index in id's span.
func (m *PartitionM) Lowest(id int) int { return m.lower[id] }

// Upmost returns the highest bucket index in id's span.
func (m *PartitionM) Upmost(id int) int { return m.upper[id] }

// Include activates id across every bucket in its [lowest, upmost] span.
func (m *PartitionM) Include(id int) {
	if m.alive[id] {
		return
	}
	m.alive[id] = true
	for b := m.lower[id]; b <= m.upper[id]; b++ {
		key := [2]int{id, b}
		head := m.heads[b]
		m.next[key] = head
		if head != EmptyCount {
			m.prev[[2]int{head, b}] = id
		}
		m.prev[key] = EmptyCount
		m.heads[b] = id
	}
}

// Remove deactivates id across every bucket in its span.
func (m *PartitionM) Remove(id int) {
	if !m.alive[id] {
		return
	}
	m.alive[id] = false
	for b := m.lower[id]; b <= m.upper[id]; b++ {
		key := [2]int{id, b}
		p := m.prev[key]
		n := m.next[key]
		if p == EmptyCount {
			m.heads[b] = n
		} else {
			m.next[[2]int{p, b}] = n
		}
		if n != EmptyCount {
			m.prev[[2]int{n, b}] = p
		}
		delete(m.next, key)
		delete(m.prev, key)
	}
}

// First returns the head of the active chain in bucket, or EmptyCount.
func (m *PartitionM) First(bucket int) int {
	if bucket < 0 || bucket >= m.numBuckets {
		return EmptyCount
	}
	return m.heads[bucket]
}

// Tail returns the next active item after id within bucket, or EmptyCount.
func (m *PartitionM) Tail(id, bucket int) int {
	if n, ok := m.next[[2]int{id, bucket}]; ok {
		return n
	}
	return EmptyCount
}

// Sum returns Σ (upmost-lowest+1) over all items, used by spec.md §4.3 to
// decide whether the current bucket granularity bounds total candidate
// enumeration work, or whether gy must be halved and the partition rebuilt.
func (m *PartitionM) Sum() int {
	total := 0
	for id := range m.lower {
		total += m.upper[id] - m.lower[id] + 1
	}
	return total
}
