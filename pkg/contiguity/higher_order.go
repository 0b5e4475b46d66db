package contiguity

import "sort"

// HigherOrder implements spec.md §4.6: derive order-k neighbors from a
// first-order graph via layered breadth expansion, each layer subtracting
// only the two layers immediately before it rather than everything
// accumulated so far — the frontier-based definition ported from the
// original make_higher_ord_contiguity, preserved per spec.md §4.6's note
// that this is a deliberate choice of the source design, not an oversight.
func HigherOrder(w1 Graph, order int, cumulative bool) (Graph, error) {
	if err := validateParams(order, 0); err != nil {
		return nil, err
	}

	n := len(w1)
	out := make(Graph, n)
	for i := 0; i < n; i++ {
		out[i] = expandOne(w1, i, order, cumulative)
	}
	return out, nil
}

// expandOne computes node i's order-k neighbor set (cumulative or
// frontier-only) and returns it sorted descending, per spec.md §4.6's
// output rule.
func expandOne(w1 Graph, i, order int, cumulative bool) []uint32 {
	layers := make([]map[uint32]struct{}, order+1)
	layers[0] = map[uint32]struct{}{uint32(i): {}}
	if order >= 1 {
		layers[1] = toSet(w1[i])
	}

	for d := 2; d <= order; d++ {
		next := make(map[uint32]struct{})
		for u := range layers[d-1] {
			for _, v := range w1[u] {
				if _, in1 := layers[d-1][v]; in1 {
					continue
				}
				if _, in2 := layers[d-2][v]; in2 {
					continue
				}
				next[v] = struct{}{}
			}
		}
		layers[d] = next
	}

	start := order
	if cumulative {
		start = 1
	}

	result := make(map[uint32]struct{})
	for d := start; d <= order; d++ {
		for v := range layers[d] {
			result[v] = struct{}{}
		}
	}

	out := make([]uint32, 0, len(result))
	for v := range result {
		out = append(out, v)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] > out[b] })
	return out
}

func toSet(s []uint32) map[uint32]struct{} {
	set := make(map[uint32]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}
