package dtw

import (
	"math"

	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/warp"
)

// Full computes the exact DTW alignment between a and b using the dense
// (R+1)x(C+1) cost table, Theta(R*C) time and space, and returns the
// back-traced WarpSummary. If either stream has fewer than two points it
// returns the degenerate-input contract (cost 0, single-point path).
func Full(a, b geom.Stream) (warp.WarpSummary, error) {
	if ws, ok := degenerate(a, b); ok {
		return ws, nil
	}

	rows, cols := a.Len(), b.Len()
	dp := newTable(rows, cols)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			fillCell(dp, a, b, r, c)
		}
	}

	pairs := backtrace(dp, rows, cols)

	return warp.WarpSummary{Cost: dp[rows][cols], IndexPairs: pairs}, nil
}

// FullCost computes the exact DTW cost without reconstructing a path,
// using O(max(R,C)) space via a rolling pair of rows. Consensus cost
// matrices use this when only the scalar cost is needed.
func FullCost(a, b geom.Stream) (float64, error) {
	if _, ok := degenerate(a, b); ok {
		return 0, nil
	}

	rows, cols := a.Len(), b.Len()
	prev := make([]float64, cols+1)
	curr := make([]float64, cols+1)
	for c := range prev {
		prev[c] = math.Inf(1)
	}
	prev[0] = 0

	for r := 1; r <= rows; r++ {
		curr[0] = math.Inf(1)
		pa, _ := a.Point(r - 1)
		for c := 1; c <= cols; c++ {
			pb, _ := b.Point(c - 1)
			cost := geom.SquaredDistance(pa, pb)
			best := math.Min(prev[c-1], math.Min(prev[c], curr[c-1]))
			curr[c] = cost + best
		}
		prev, curr = curr, prev
	}

	return prev[cols], nil
}
