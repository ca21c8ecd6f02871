package dtw

import (
	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/warp"
	"github.com/mrdmnd/streamgeo/window"
)

// Windowed computes a DTW alignment restricted to the cells a
// window.StridedWindow of shape (a.Len(), b.Len()) permits: only
// dp[r][c] with c-1 in [start_col[r-1], end_col[r-1]] is evaluated, and
// predecessors outside the window are treated as +Inf. Evaluation is
// row-major within each row's run, which the window's monotone envelope
// invariants guarantee always has its predecessors already filled.
//
// Returns ErrWindowShapeMismatch if w's shape does not match the
// streams' lengths. If either stream has fewer than two points it
// returns the degenerate-input contract (cost 0, single-point path).
func Windowed(a, b geom.Stream, w *window.StridedWindow) (warp.WarpSummary, error) {
	if ws, ok := degenerate(a, b); ok {
		return ws, nil
	}

	rows, cols := a.Len(), b.Len()
	if w.Rows() != rows || w.Cols() != cols {
		return warp.WarpSummary{}, ErrWindowShapeMismatch
	}

	dp := newTable(rows, cols)
	for r := 1; r <= rows; r++ {
		start, end, err := w.RowRange(r - 1)
		if err != nil {
			return warp.WarpSummary{}, err
		}
		for c := start + 1; c <= end+1; c++ {
			fillCell(dp, a, b, r, c)
		}
	}

	pairs := backtrace(dp, rows, cols)

	return warp.WarpSummary{Cost: dp[rows][cols], IndexPairs: pairs}, nil
}
