package consensus

import "errors"

// Sentinel errors for consensus operations.
var (
	// ErrEmptyCollection indicates Medoid or DBA was called with zero streams.
	ErrEmptyCollection = errors.New("consensus: collection must have at least one stream")

	// ErrInvalidIterations indicates DBA was called with iterations < 1.
	ErrInvalidIterations = errors.New("consensus: iterations must be >= 1")
)
