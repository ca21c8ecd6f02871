package streamio

import "errors"

// Sentinel errors for streamio operations.
var (
	// ErrEmptyLine indicates a JSON-lines record decoded to zero points.
	ErrEmptyLine = errors.New("streamio: line decodes to an empty stream")

	// ErrOddCoordinateCount indicates a JSON-lines record held an odd
	// number of flat coordinates (every point needs an x and a y).
	ErrOddCoordinateCount = errors.New("streamio: flat coordinate array has odd length")

	// ErrUnsupportedVersion indicates a binary blob's leading version byte
	// did not match any format this package knows how to decode.
	ErrUnsupportedVersion = errors.New("streamio: unsupported binary format version")

	// ErrTruncated indicates a binary blob ended before its declared
	// stream or point counts were satisfied.
	ErrTruncated = errors.New("streamio: truncated binary stream")
)
