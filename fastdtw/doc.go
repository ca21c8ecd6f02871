// Package fastdtw implements the multi-resolution FastDTW approximation
// of Salvador & Chan: shrink both streams by averaging consecutive point
// pairs, recurse until the problem is small enough for exact dtw.Full,
// then expand the coarse path-mask into a full-resolution search window
// and run dtw.Windowed over it.
//
// The reported cost is an upper bound on the true DTW cost, equal to it
// when the optimal alignment happens to fall inside the expanded window.
// Time and space are O((R+C)*radius) amortized across the recursion.
package fastdtw
