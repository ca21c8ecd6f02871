// Package similarity scores two geom.Streams in [0, 1] (1 = identical)
// using a cheap distance-ratio gate followed by a sparsity- and
// position-weighted integral of alignment error over a FastDTW warp path.
package similarity
