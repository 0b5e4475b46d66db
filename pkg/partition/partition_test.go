package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePartition_InsertAndWalkBucket(t *testing.T) {
	p := NewBasePartition(4, 4, 100)
	p.Include(0, 5)
	p.Include(1, 6)
	p.Include(2, 55)
	p.Include(3, 95)

	// 0 and 1 both fall in bucket 0; head-insertion means 1 comes first.
	assert.Equal(t, 1, p.First(0))
	assert.Equal(t, 0, p.Tail(1))
	assert.Equal(t, EmptyCount, p.Tail(0))
	assert.Equal(t, 4, p.Cells())
}

func TestPartitionM_IncludeRemoveAcrossSpan(t *testing.T) {
	m := NewPartitionM(3, 10, 100)
	m.InitIx(0, 0, 25)  // buckets 0-2
	m.InitIx(1, 20, 40) // buckets 2-4
	m.InitIx(2, 90, 99) // bucket 9

	m.Include(0)
	m.Include(1)

	assert.Equal(t, 0, m.Lowest(0))
	assert.Equal(t, 2, m.Upmost(0))
	// item 0 and item 1 both active in bucket 2.
	found := map[int]bool{}
	for id := m.First(2); id != EmptyCount; id = m.Tail(id, 2) {
		found[id] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true}, found)

	m.Remove(0)
	assert.Equal(t, EmptyCount, func() int {
		for id := m.First(0); id != EmptyCount; id = m.Tail(id, 0) {
			if id == 0 {
				return 0
			}
		}
		return EmptyCount
	}())

	m.Include(2)
	assert.Equal(t, 9, m.Lowest(2))
}

func TestPartitionM_Sum(t *testing.T) {
	m := NewPartitionM(2, 10, 100)
	m.InitIx(0, 0, 30)  // buckets 0-3: span 4
	m.InitIx(1, 50, 55) // bucket 5 only: span 1
	assert.Equal(t, 5, m.Sum())
}
