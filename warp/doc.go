// Package warp materializes a DTW back-trace result as a WarpSummary: a
// scalar cost plus the ordered sequence of (row, col) index pairs the
// alignment visits.
package warp
