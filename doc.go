// Package streamgeo measures how similar two geographic polylines are,
// using Dynamic Time Warping to align them under pace and skew.
//
// A geom.Stream is an ordered sequence of points. dtw computes exact
// DTW alignments; fastdtw approximates the same alignment on long
// streams by recursing on a coarsened copy and expanding the coarse
// path into a windowed search band (window.StridedWindow), trading a
// bounded amount of accuracy for near-linear time. similarity turns a
// FastDTW alignment into a single [0, 1] score, gated by cheap length-
// and endpoint-distance checks before the alignment ever runs. consensus
// builds on the same primitives to pick a medoid stream or average a
// collection into a single representative via DTW barycenter averaging.
//
// streamio reads and writes stream collections in JSON-lines and a
// compact versioned binary format; cmd/streamgeo-bench drives the exact
// and approximate engines against a fixture to compare their cost and
// wall-clock tradeoff.
//
// Subpackages:
//
//	geom/        — Point, Stream, StreamCollection, and geometry helpers
//	window/      — StridedWindow, the sparse banded matrix DTW fills
//	dtw/         — exact dense and windowed DTW
//	warp/        — WarpSummary, the materialized alignment result
//	fastdtw/     — the coarse-to-fine FastDTW approximation
//	similarity/  — gated [0, 1] similarity score over FastDTW
//	consensus/   — medoid selection and DTW barycenter averaging
//	streamio/    — JSON-lines and binary stream I/O
//	cmd/streamgeo-bench/ — a small CLI comparing Full and FastDTW
package streamgeo
