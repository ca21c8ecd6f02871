package window

// Run is a single row's contiguous column range [Start, End].
type Run struct {
	Start, End int
}

// New builds a StridedWindow from explicit parallel start/end column
// arrays. It returns ErrBadShape, ErrLengthMismatch, ErrRunOutOfBounds or
// ErrInvalidEnvelope if the monotone envelope invariants (1, 2) do not
// hold; New does not check the path-mask invariants (3, 4) — see
// IsPathMask.
func New(rows, cols int, startCol, endCol []int) (*StridedWindow, error) {
	if err := validateEnvelope(rows, cols, startCol, endCol); err != nil {
		return nil, err
	}
	sc := make([]int, rows)
	ec := make([]int, rows)
	copy(sc, startCol)
	copy(ec, endCol)

	return &StridedWindow{rows: rows, cols: cols, startCol: sc, endCol: ec}, nil
}

// FromRuns builds a StridedWindow from one Run per row.
func FromRuns(rows, cols int, runs []Run) (*StridedWindow, error) {
	if len(runs) != rows {
		return nil, ErrLengthMismatch
	}
	sc := make([]int, rows)
	ec := make([]int, rows)
	for i, r := range runs {
		sc[i] = r.Start
		ec[i] = r.End
	}

	return New(rows, cols, sc, ec)
}

// FromIndexPairs builds the minimum StridedWindow containing exactly the
// given cells. pairs must be sorted and monotone non-decreasing in both
// coordinates (the shape produced by a DTW back-trace or WarpSummary);
// FromIndexPairs returns ErrEmptyPath or ErrNonMonotonePath otherwise.
//
// Every row in [0, rows) must be touched by at least one pair or the
// resulting start/end columns would be undefined; callers constructing a
// path-mask always supply one pair per row (invariant 4 guarantees this
// for genuine DTW paths).
func FromIndexPairs(rows, cols int, pairs []Coord) (*StridedWindow, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyPath
	}

	sc := make([]int, rows)
	ec := make([]int, rows)
	touched := make([]bool, rows)
	for i := range sc {
		sc[i] = cols // sentinel: "no cell seen yet" (larger than any valid column)
		ec[i] = -1
	}

	prevRow, prevCol := -1, -1
	for _, p := range pairs {
		if p.Row < prevRow || (p.Row == prevRow && p.Col < prevCol) {
			return nil, ErrNonMonotonePath
		}
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return nil, ErrRunOutOfBounds
		}
		if p.Col < sc[p.Row] {
			sc[p.Row] = p.Col
		}
		if p.Col > ec[p.Row] {
			ec[p.Row] = p.Col
		}
		touched[p.Row] = true
		prevRow, prevCol = p.Row, p.Col
	}
	for i := 0; i < rows; i++ {
		if !touched[i] {
			return nil, ErrRunOutOfBounds
		}
	}

	return New(rows, cols, sc, ec)
}
