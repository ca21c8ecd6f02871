package dtw

import (
	"math"

	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/warp"
	"github.com/mrdmnd/streamgeo/window"
)

// degenerate reports whether either stream is too short for a genuine
// alignment (spec's DegenerateInput kind: fewer than two points), and if
// so returns the fixed contract result: zero cost, single-point path.
func degenerate(a, b geom.Stream) (warp.WarpSummary, bool) {
	if a.Len() < 2 || b.Len() < 2 {
		return warp.WarpSummary{Cost: 0, IndexPairs: []window.Coord{{Row: 0, Col: 0}}}, true
	}

	return warp.WarpSummary{}, false
}

// newTable allocates an (R+1)x(C+1) cost table with the standard DTW
// boundary: dp[0][0]=0, every other cell in row 0 or column 0 is +Inf.
func newTable(rows, cols int) [][]float64 {
	dp := make([][]float64, rows+1)
	for r := range dp {
		dp[r] = make([]float64, cols+1)
		for c := range dp[r] {
			dp[r][c] = math.Inf(1)
		}
	}
	dp[0][0] = 0

	return dp
}

// fillCell computes dp[r][c] (1-indexed table coordinates; a[r-1], b[c-1]
// is the candidate pairing) under the diagonal<=up<=left tie-break.
func fillCell(dp [][]float64, a, b geom.Stream, r, c int) {
	pa, _ := a.Point(r - 1)
	pb, _ := b.Point(c - 1)
	cost := geom.SquaredDistance(pa, pb)
	diag, up, left := dp[r-1][c-1], dp[r-1][c], dp[r][c-1]

	best := diag
	if up < best {
		best = up
	}
	if left < best {
		best = left
	}
	dp[r][c] = cost + best
}

// backtrace walks an (R+1)x(C+1) filled cost table backward from (R,C) to
// (0,0), applying the same diagonal<=up<=left tie-break used during the
// forward fill, and returns the visited (row,col) pairs in forward order.
//
// This recomputes the move at each step from predecessor comparisons
// rather than storing a direction per cell or packing it into the cost's
// float bits — the design notes call the latter out explicitly as a
// rejected optimization not to replicate.
func backtrace(dp [][]float64, rows, cols int) []window.Coord {
	u, v := rows, cols
	pairs := make([]window.Coord, 0, rows+cols)

	for u > 0 || v > 0 {
		switch {
		case u > 0 && v > 0:
			pairs = append(pairs, window.Coord{Row: u - 1, Col: v - 1})
		case u > 0:
			pairs = append(pairs, window.Coord{Row: u - 1, Col: 0})
		default:
			pairs = append(pairs, window.Coord{Row: 0, Col: v - 1})
		}

		diag, up, left := math.Inf(1), math.Inf(1), math.Inf(1)
		if u > 0 && v > 0 {
			diag = dp[u-1][v-1]
		}
		if u > 0 {
			up = dp[u-1][v]
		}
		if v > 0 {
			left = dp[u][v-1]
		}

		switch {
		case u > 0 && v > 0 && diag <= up && diag <= left:
			u--
			v--
		case u > 0 && up <= left:
			u--
		default:
			v--
		}
	}

	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}

	return pairs
}
