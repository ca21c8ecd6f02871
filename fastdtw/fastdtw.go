package fastdtw

import (
	"github.com/mrdmnd/streamgeo/dtw"
	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/warp"
	"github.com/mrdmnd/streamgeo/window"
)

// Run approximates the DTW alignment of a and b using radius to control
// the width of the coarse-to-fine search band. It returns
// ErrNegativeRadius if radius < 0.
//
// Base case: if min(a.Len(), b.Len()) < radius+4 — a slack guaranteeing
// the recursion would otherwise produce a trivial coarser problem — Run
// falls back to dtw.Full. Otherwise it shrinks both streams by averaging
// consecutive point pairs (dropping a trailing point on odd length,
// recovered via the parity passed to Expand), recurses, expands the
// coarse path-mask to full resolution, and runs dtw.Windowed over the
// resulting search window.
func Run(a, b geom.Stream, radius int) (warp.WarpSummary, error) {
	if radius < 0 {
		return warp.WarpSummary{}, ErrNegativeRadius
	}

	rows, cols := a.Len(), b.Len()
	if min(rows, cols) < radius+4 {
		return dtw.Full(a, b)
	}

	shrunkA := shrinkByHalf(a)
	shrunkB := shrinkByHalf(b)

	coarse, err := Run(shrunkA, shrunkB, radius)
	if err != nil {
		return warp.WarpSummary{}, err
	}

	coarseMask, err := window.FromIndexPairs(shrunkA.Len(), shrunkB.Len(), coarse.IndexPairs)
	if err != nil {
		return warp.WarpSummary{}, err
	}

	rho, kappa := rows%2, cols%2
	searchWindow, err := coarseMask.Expand(rho, kappa, radius)
	if err != nil {
		return warp.WarpSummary{}, err
	}

	return dtw.Windowed(a, b, searchWindow)
}

// shrinkByHalf averages consecutive point pairs, s'[i] = (s[2i]+s[2i+1])/2
// for i in [0, floor(n/2)); a trailing point on odd-length input is
// dropped (its parity is recovered by the caller's Expand call).
func shrinkByHalf(s geom.Stream) geom.Stream {
	pts := s.Points()
	half := len(pts) / 2
	out := make([]geom.Point, half)
	for i := 0; i < half; i++ {
		out[i] = pts[2*i].Add(pts[2*i+1]).Mul(0.5)
	}
	shrunk, _ := geom.NewStream(out)

	return shrunk
}
