// Package geom provides the immutable value types streamgeo aligns:
// Point, Stream and StreamCollection, plus the handful of planar geometry
// helpers (length, sparsity, Ramer-Douglas-Peucker simplification) that
// the dtw/fastdtw/similarity/consensus packages treat as collaborators.
//
// Points are planar; no geodesic correction is applied anywhere in this
// package. Callers that need geodesic distances should project their
// coordinates before constructing a Stream.
package geom
