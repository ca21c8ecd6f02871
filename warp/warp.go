package warp

import (
	"errors"

	"github.com/mrdmnd/streamgeo/window"
)

// Sentinel errors for warp operations.
var (
	// ErrNotPathMask indicates FromPathMask was given a StridedWindow
	// that does not satisfy the path-mask invariants.
	ErrNotPathMask = errors.New("warp: window is not a path-mask")
)

// WarpSummary bundles the scalar DTW cost with the materialized
// alignment path. IndexPairs begins at (0,0), ends at (R-1,C-1), is
// strictly sorted lexicographically, and each step increments its row
// and column by 0 or 1 (never both 0). The one exception is dtw's result
// for a stream with fewer than two points, whose IndexPairs is the single
// pair (0,0).
type WarpSummary struct {
	Cost       float64
	IndexPairs []window.Coord
}

// PathLength returns the number of index pairs in the alignment.
func (w WarpSummary) PathLength() int { return len(w.IndexPairs) }

// FromPathMask reads out a path-mask's set cells in row-major order and
// pairs them with the given cost. It returns ErrNotPathMask if pm does
// not satisfy the path-mask invariants (corner-touching, single-step
// row overlap).
func FromPathMask(pm *window.StridedWindow, cost float64) (WarpSummary, error) {
	if !pm.IsPathMask() {
		return WarpSummary{}, ErrNotPathMask
	}

	return WarpSummary{Cost: cost, IndexPairs: pm.ToIndexPairs()}, nil
}
