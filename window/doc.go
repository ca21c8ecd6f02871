// Package window implements StridedWindow, a sparse binary matrix in
// which every row holds exactly one contiguous run of set columns. It is
// used both as the search window that restricts a windowed DTW fill and
// as the path-mask a DTW back-trace produces.
//
// A StridedWindow always satisfies the monotone lower/upper envelope
// invariants (row i's run never starts or ends before row i-1's). A
// StridedWindow additionally satisfying the corner-touching and
// single-step-overlap invariants is called a path-mask; IsPathMask
// reports whether a given window qualifies.
package window
