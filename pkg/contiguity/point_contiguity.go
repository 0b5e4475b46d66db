package contiguity

import (
	"sort"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"github.com/kelpie-geo/contiguity/pkg/voronoi"
	"go.uber.org/zap"
)

// defaultBBoxPad and defaultBBoxPadPercent are the point-contiguity
// route's bounding-rectangle defaults (spec.md §4.4): 10 units on every
// side, plus an additional 2% of each axis's range.
const (
	defaultBBoxPad        = 10.0
	defaultBBoxPadPercent = 0.02
)

// PointContiguity implements spec.md §4.1's point_contiguity entry point:
// always routes through the Voronoi engine (§4.4), extracts adjacency
// from shared cell edges (rook) or shared cell vertices (queen) (§4.4.3),
// then optionally runs the higher-order expander.
func PointContiguity(points []geometry.Point, isQueen bool, threshold float64, order int, cumulative bool, log *telemetry.Logger) (Graph, error) {
	if err := validateParams(order, threshold); err != nil {
		return nil, err
	}

	n := len(points)
	if n == 0 {
		return Graph{}, nil
	}

	sites := make([]voronoi.Vertex, n)
	for i, p := range points {
		sites[i] = voronoi.Vertex{X: p.X, Y: p.Y}
	}

	bbox := voronoi.DefaultBoundingBox(sites, defaultBBoxPad, defaultBBoxPadPercent)

	allIdentical := true
	for i := 1; i < n; i++ {
		if sites[i] != sites[0] {
			allIdentical = false
			break
		}
	}
	if allIdentical && n > 1 {
		log.Debug("point contiguity degenerate: all sites coincide", zap.Int("sites", n))
		w1 := make(Graph, n)
		for i := range w1 {
			w1[i] = []uint32{}
		}
		return w1, nil
	}

	log.Debug("point contiguity via voronoi engine", zap.Bool("queen", isQueen), zap.Int("sites", n))
	diagram := voronoi.CreateDiagram(sites, bbox, log)

	var cellPairs [][2]int
	if isQueen {
		cellPairs = diagram.QueenPairs()
	} else {
		cellPairs = diagram.RookPairs()
	}

	sets := make([]map[uint32]struct{}, n)
	for i := range sets {
		sets[i] = make(map[uint32]struct{})
	}
	link := func(a, b int) {
		if a == b {
			return
		}
		sets[a][uint32(b)] = struct{}{}
		sets[b][uint32(a)] = struct{}{}
	}

	groups := diagram.Groups()
	for _, pair := range cellPairs {
		for _, a := range groups[pair[0]] {
			for _, b := range groups[pair[1]] {
				link(a, b)
			}
		}
	}

	w1 := make(Graph, n)
	for i, set := range sets {
		row := make([]uint32, 0, len(set))
		for v := range set {
			row = append(row, v)
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		w1[i] = row
	}

	if order <= 1 {
		return w1, nil
	}
	return HigherOrder(w1, order, cumulative)
}
