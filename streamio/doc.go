// Package streamio reads and writes geom.Streams in two formats: a
// human-inspectable JSON-lines format (one flat [x0, y0, x1, y1, ...]
// array per line) and a compact versioned binary format for out-of-core
// batches. It is a collaborator, not part of the similarity/consensus
// algorithm surface — nothing in dtw, fastdtw, warp, similarity, or
// consensus imports it.
package streamio
