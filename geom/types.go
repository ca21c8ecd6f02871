// Package geom: core types and sentinel errors.
package geom

import (
	"errors"

	"github.com/golang/geo/r2"
)

// Sentinel errors for geom operations.
var (
	// ErrEmptyStream indicates a Stream was constructed with zero points.
	ErrEmptyStream = errors.New("geom: stream must have at least one point")

	// ErrTooFewPoints indicates an operation that integrates between
	// consecutive points (EuclideanLength, Sparsity) was called on a
	// Stream of length < 2.
	ErrTooFewPoints = errors.New("geom: operation requires at least two points")

	// ErrIndexOutOfRange indicates Point(i) was called with i outside [0, Len()).
	ErrIndexOutOfRange = errors.New("geom: index out of range")

	// ErrEmptyCollection indicates a StreamCollection was constructed with
	// zero members.
	ErrEmptyCollection = errors.New("geom: collection must have at least one stream")
)

// Point is a planar coordinate pair. It is an alias of r2.Point so that
// streamgeo's geometry interoperates directly with the golang/geo vector
// algebra (Add, Sub, Norm, Norm2) instead of reimplementing it.
type Point = r2.Point

// Stream is an immutable ordered sequence of at least one Point. Callers
// needing segment-integrating operations (EuclideanLength, Sparsity) must
// supply a Stream of length >= 2; see ErrTooFewPoints.
//
// Stream is never mutated in place. Simplify returns a new Stream that is
// never longer than its input.
type Stream struct {
	points []Point
}

// NewStream copies points into a new Stream. It returns ErrEmptyStream if
// points is empty.
func NewStream(points []Point) (Stream, error) {
	if len(points) == 0 {
		return Stream{}, ErrEmptyStream
	}
	buf := make([]Point, len(points))
	copy(buf, points)

	return Stream{points: buf}, nil
}

// Len returns the number of points in the stream.
func (s Stream) Len() int { return len(s.points) }

// Point returns the i-th point. It returns ErrIndexOutOfRange if i is out
// of [0, Len()).
func (s Stream) Point(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, ErrIndexOutOfRange
	}

	return s.points[i], nil
}

// Points returns a defensive copy of the underlying point buffer.
func (s Stream) Points() []Point {
	buf := make([]Point, len(s.points))
	copy(buf, s.points)

	return buf
}

// StreamCollection is an ordered, immutable sequence of Streams.
type StreamCollection struct {
	streams []Stream
}

// NewStreamCollection copies streams into a new StreamCollection. It
// returns ErrEmptyCollection if streams is empty.
func NewStreamCollection(streams []Stream) (StreamCollection, error) {
	if len(streams) == 0 {
		return StreamCollection{}, ErrEmptyCollection
	}
	buf := make([]Stream, len(streams))
	copy(buf, streams)

	return StreamCollection{streams: buf}, nil
}

// Len returns the number of streams in the collection.
func (c StreamCollection) Len() int { return len(c.streams) }

// At returns the i-th stream. It returns ErrIndexOutOfRange if i is out of
// [0, Len()).
func (c StreamCollection) At(i int) (Stream, error) {
	if i < 0 || i >= len(c.streams) {
		return Stream{}, ErrIndexOutOfRange
	}

	return c.streams[i], nil
}

// Streams returns a defensive copy of the underlying stream buffer.
func (c StreamCollection) Streams() []Stream {
	buf := make([]Stream, len(c.streams))
	copy(buf, c.streams)

	return buf
}
