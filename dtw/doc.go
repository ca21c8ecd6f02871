// Package dtw implements the Dynamic Time Warping kernel: it fills a cost
// table over two geom.Streams — either dense ("full") or restricted to a
// window.StridedWindow search window ("windowed") — and back-traces the
// optimal alignment into a path-mask.
//
// The local step cost between a[i] and b[j] is the squared Euclidean
// distance (geom.SquaredDistance); the reported Cost is therefore a sum
// of squared distances, not distances. The recurrence's tie-break is part
// of the public contract: diagonal <= up <= left, i.e. prefer the
// diagonal predecessor on ties, otherwise prefer up (advance the first
// stream) over left (advance the second).
//
// Full and Windowed both allocate the complete (R+1)x(C+1) cost table —
// simple indexing wins over a banded representation here, since fills are
// already window-sized in the windowed case (spec's Memory section
// explicitly permits this). FullCost is the space-optimized variant: it
// keeps only two rows and never reconstructs a path.
package dtw
