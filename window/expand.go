package window

// Expand performs the upsample-and-dilate projection FastDTW uses to turn
// a coarse path-mask into a full-resolution search window. Given a
// path-mask of shape (R, C), row parity rho, column parity kappa (each
// 0 or 1, recovering the trailing row/column an odd-length stream's
// shrink step dropped) and a non-negative dilation radius, it returns a
// new StridedWindow of shape (2R+rho, 2C+kappa).
//
// Conceptually: each set cell (i, j) of the source upsamples to the 2x2
// block {(2i,2j), (2i+1,2j), (2i,2j+1), (2i+1,2j+1)}, then the upsampled
// grid is dilated by the square structuring element of side 2*radius+1
// (Chebyshev-distance dilation). The implementation below computes
// start/end columns directly, without ever materializing the upsampled
// grid, by pulling the source row whose start/end column determines each
// output row's start/end.
//
// Expand preserves invariants 1 and 2 but the result is a search window,
// not necessarily a path-mask: invariants 3 and 4 need not hold.
func (w *StridedWindow) Expand(rho, kappa, radius int) (*StridedWindow, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	if rho != 0 && rho != 1 {
		return nil, ErrBadParity
	}
	if kappa != 0 && kappa != 1 {
		return nil, ErrBadParity
	}

	rowsOut := 2*w.rows + rho
	colsOut := 2*w.cols + kappa

	sc := make([]int, rowsOut)
	ec := make([]int, rowsOut)

	for r := 0; r < rowsOut; r++ {
		rPrev := clampInt(floorDiv(r-radius, 2), 0, w.rows-1)
		rNext := clampInt(floorDiv(r+radius, 2), 0, w.rows-1)

		start := 2*w.startCol[rPrev] - radius
		if start < 0 {
			start = 0
		}
		end := 2*w.endCol[rNext] + 1 + radius + kappa
		if end > colsOut-1 {
			end = colsOut - 1
		}

		sc[r] = start
		ec[r] = end
	}

	return New(rowsOut, colsOut, sc, ec)
}

// floorDiv returns floor(a/b). Go's / truncates toward zero, as C's does,
// which differs from floor division only when a/b is negative and
// inexact; Expand passes r-radius, which can be negative.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
