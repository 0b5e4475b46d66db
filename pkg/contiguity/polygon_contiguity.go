package contiguity

import (
	"fmt"

	"github.com/kelpie-geo/contiguity/pkg/geometry"
	"github.com/kelpie-geo/contiguity/pkg/polygon"
	"github.com/kelpie-geo/contiguity/pkg/telemetry"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PolygonContiguity implements spec.md §4.1's polygon_contiguity entry
// point: dispatching to the exact hash engine (§4.2) when threshold is
// zero, or the partition+sweep engine (§4.3) otherwise, then optionally
// running the higher-order expander (§4.6).
func PolygonContiguity(geoms *geometry.Collection, isQueen bool, threshold float64, order int, cumulative bool, log *telemetry.Logger) (Graph, error) {
	errs := validateParams(order, threshold)
	if err := geoms.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %v", ErrIndexOutOfRange, err))
	}
	if errs != nil {
		return nil, errs
	}

	n := geoms.NumGeoms()
	if n == 0 {
		return Graph{}, nil
	}

	var nbrs polygon.NeighborSets
	if threshold == 0 {
		log.Debug("polygon contiguity via exact hash engine", zap.Bool("queen", isQueen), zap.Int("geoms", n))
		if isQueen {
			nbrs = polygon.ExactQueen(geoms)
		} else {
			nbrs = polygon.ExactRook(geoms)
		}
	} else {
		log.Debug("polygon contiguity via partition+sweep engine", zap.Bool("queen", isQueen), zap.Float64("threshold", threshold), zap.Int("geoms", n))
		nbrs = polygon.Tolerant(geoms, isQueen, threshold, log)
	}

	w1 := Graph(nbrs.ToSlices())
	if order <= 1 {
		return w1, nil
	}
	return HigherOrder(w1, order, cumulative)
}
