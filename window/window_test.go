package window_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdmnd/streamgeo/window"
)

func diagonalPathMask(t *testing.T, n int) *window.StridedWindow {
	t.Helper()
	runs := make([]window.Run, n)
	for i := range runs {
		runs[i] = window.Run{Start: i, End: i}
	}
	w, err := window.FromRuns(n, n, runs)
	require.NoError(t, err)

	return w
}

func TestNew_RejectsBadShape(t *testing.T) {
	_, err := window.New(0, 3, nil, nil)
	assert.ErrorIs(t, err, window.ErrBadShape)
}

func TestNew_RejectsLengthMismatch(t *testing.T) {
	_, err := window.New(2, 3, []int{0}, []int{1, 2})
	assert.ErrorIs(t, err, window.ErrLengthMismatch)
}

func TestNew_RejectsOutOfBoundsRun(t *testing.T) {
	_, err := window.New(1, 3, []int{0}, []int{5})
	assert.ErrorIs(t, err, window.ErrRunOutOfBounds)
}

func TestNew_RejectsNonMonotoneEnvelope(t *testing.T) {
	_, err := window.New(2, 3, []int{1, 0}, []int{2, 2})
	assert.ErrorIs(t, err, window.ErrInvalidEnvelope)
}

func TestFromRuns_LengthMismatch(t *testing.T) {
	_, err := window.FromRuns(2, 3, []window.Run{{Start: 0, End: 1}})
	assert.ErrorIs(t, err, window.ErrLengthMismatch)
}

func TestFromIndexPairs_EmptyPath(t *testing.T) {
	_, err := window.FromIndexPairs(2, 2, nil)
	assert.ErrorIs(t, err, window.ErrEmptyPath)
}

func TestFromIndexPairs_NonMonotoneRejected(t *testing.T) {
	_, err := window.FromIndexPairs(2, 2, []window.Coord{{Row: 1, Col: 1}, {Row: 0, Col: 0}})
	assert.ErrorIs(t, err, window.ErrNonMonotonePath)
}

func TestFromIndexPairs_UntouchedRowRejected(t *testing.T) {
	_, err := window.FromIndexPairs(3, 3, []window.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 2}})
	assert.ErrorIs(t, err, window.ErrRunOutOfBounds)
}

func TestFromIndexPairs_DiagonalRoundTrips(t *testing.T) {
	pairs := []window.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	w, err := window.FromIndexPairs(3, 3, pairs)
	require.NoError(t, err)
	assert.Equal(t, pairs, w.ToIndexPairs())
	assert.True(t, w.IsPathMask())
}

func TestRowRange_OutOfBounds(t *testing.T) {
	w := diagonalPathMask(t, 3)
	_, _, err := w.RowRange(-1)
	assert.ErrorIs(t, err, window.ErrRowIndex)
	_, _, err = w.RowRange(3)
	assert.ErrorIs(t, err, window.ErrRowIndex)
}

func TestIsPathMask_RejectsMissingCorner(t *testing.T) {
	w, err := window.New(2, 2, []int{1, 1}, []int{1, 1})
	require.NoError(t, err)
	assert.False(t, w.IsPathMask())
}

func TestIsPathMask_RejectsRowGap(t *testing.T) {
	w, err := window.New(3, 4, []int{0, 2, 3}, []int{0, 2, 3})
	require.NoError(t, err)
	assert.False(t, w.IsPathMask())
}

func TestExpand_RejectsNegativeRadius(t *testing.T) {
	w := diagonalPathMask(t, 2)
	_, err := w.Expand(0, 0, -1)
	assert.ErrorIs(t, err, window.ErrNegativeRadius)
}

func TestExpand_RejectsBadParity(t *testing.T) {
	w := diagonalPathMask(t, 2)
	_, err := w.Expand(2, 0, 1)
	assert.ErrorIs(t, err, window.ErrBadParity)
}

func TestExpand_ShapeDoubles(t *testing.T) {
	w := diagonalPathMask(t, 4)
	expanded, err := w.Expand(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, expanded.Rows())
	assert.Equal(t, 9, expanded.Cols())
}

func TestExpand_CoversSourcePathAtZeroRadius(t *testing.T) {
	// Each source cell upsamples to a 2x2 block, so even with a zero
	// dilation radius the expanded window must still cover every
	// upsampled cell corresponding to the diagonal path mask.
	w := diagonalPathMask(t, 3)
	expanded, err := w.Expand(0, 0, 0)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		start, end, err := expanded.RowRange(2 * i)
		require.NoError(t, err)
		assert.LessOrEqual(t, start, 2*i)
		assert.GreaterOrEqual(t, end, 2*i+1)
	}
}

func TestExpand_PreservesEnvelopeInvariants(t *testing.T) {
	w := diagonalPathMask(t, 6)
	expanded, err := w.Expand(0, 0, 2)
	require.NoError(t, err)

	for i := 1; i < expanded.Rows(); i++ {
		prevStart, prevEnd, _ := expanded.RowRange(i - 1)
		start, end, _ := expanded.RowRange(i)
		assert.GreaterOrEqual(t, start, prevStart)
		assert.GreaterOrEqual(t, end, prevEnd)
	}
}

func TestWriteDebug_RendersGrid(t *testing.T) {
	w := diagonalPathMask(t, 2)
	var sb strings.Builder
	require.NoError(t, w.WriteDebug(&sb))
	assert.Contains(t, sb.String(), "*")
	assert.Contains(t, sb.String(), ".")
}
