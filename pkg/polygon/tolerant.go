package polygon

import (
	"math"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/partition"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"go.uber.org/zap"
)

// bboxIntersects is the standalone bbox-overlap primitive the original
// GeoDa implementation exposes (geoda::bbox_intersects) and this module's
// supplemented feature list gives its own name and tests to, rather than
// inlining it (see SPEC_FULL.md §12).
func bboxIntersects(a, b geometry.BBox) bool {
	return a.Intersects(b)
}

// Tolerant implements spec.md §4.3: the partition+sweep engine used when
// precision_threshold > 0.
func Tolerant(geoms *geometry.Collection, isQueen bool, threshold float64, log *telemetry.Logger) NeighborSets {
	n := geoms.NumGeoms()
	nbrs := newNeighborSets(n)
	if n == 0 {
		return nbrs
	}

	shpMinX, shpMaxX := math.Inf(1), math.Inf(-1)
	shpMinY, shpMaxY := math.Inf(1), math.Inf(-1)
	boxes := make([]geometry.BBox, n)
	for i := 0; i < n; i++ {
		// Grow each box by the threshold so that polygons separated by a
		// gap no wider than threshold still overlap in the partitions and
		// pass the bbox pre-filter.
		box := geoms.BBox(i)
		box.Min.X -= threshold
		box.Min.Y -= threshold
		box.Max.X += threshold
		box.Max.Y += threshold
		boxes[i] = box
		if box.Min.X < shpMinX {
			shpMinX = box.Min.X
		}
		if box.Max.X > shpMaxX {
			shpMaxX = box.Max.X
		}
		if box.Min.Y < shpMinY {
			shpMinY = box.Min.Y
		}
		if box.Max.Y > shpMaxY {
			shpMaxY = box.Max.Y
		}
	}
	shpXLen := shpMaxX - shpMinX
	shpYLen := shpMaxY - shpMinY

	gx := n/8 + 2
	gMinX := partition.NewBasePartition(n, gx, shpXLen)
	gMaxX := partition.NewBasePartition(n, gx, shpXLen)
	for i := 0; i < n; i++ {
		gMinX.Include(i, boxes[i].Min.X-shpMinX)
		gMaxX.Include(i, boxes[i].Max.X-shpMinX)
	}

	gy := int(math.Sqrt(float64(n))) + 2
	var gYPartition *partition.PartitionM
	for {
		gYPartition = partition.NewPartitionM(n, gy, shpYLen)
		for i := 0; i < n; i++ {
			gYPartition.InitIx(i, boxes[i].Min.Y-shpMinY, boxes[i].Max.Y-shpMinY)
		}
		total := gYPartition.Sum()
		if total > n*8 && gy > 2 {
			gy = gy/2 + 1
			if gy < 2 {
				gy = 2
			}
			continue
		}
		log.Debug("tolerant polygon partition sized", zap.Int("gx", gx), zap.Int("gy", gy), zap.Int("candidateWork", total))
		break
	}

	polyPartitions := make(map[int]*polygonPartition)
	partitionFor := func(i int) *polygonPartition {
		pp, ok := polyPartitions[i]
		if !ok {
			pp = newPolygonPartition(geoms, i)
			polyPartitions[i] = pp
		}
		return pp
	}

	for step := 0; step < gMinX.Cells(); step++ {
		for curr := gMinX.First(step); curr != partition.EmptyCount; curr = gMinX.Tail(curr) {
			gYPartition.Include(curr)
		}

		for curr := gMaxX.First(step); curr != partition.EmptyCount; curr = gMaxX.Tail(curr) {
			testPoly := partitionFor(curr)

			var candidates []int
			for cell := gYPartition.Lowest(curr); cell <= gYPartition.Upmost(curr); cell++ {
				for potential := gYPartition.First(cell); potential != partition.EmptyCount; potential = gYPartition.Tail(potential, cell) {
					if potential != curr {
						candidates = append(candidates, potential)
					}
				}
			}

			for _, nbr := range candidates {
				if !bboxIntersects(boxes[curr], boxes[nbr]) {
					continue
				}
				nbrPoly := partitionFor(nbr)
				if sweepTest(testPoly, nbrPoly, isQueen, threshold) {
					nbrs.link(curr, nbr)
				}
			}

			gYPartition.Remove(curr)
		}
	}

	return nbrs
}
