package dtw

import "errors"

// Sentinel errors for dtw operations.
var (
	// ErrWindowShapeMismatch indicates a StridedWindow passed to Windowed
	// does not have shape (a.Len(), b.Len()). Spec classifies this as a
	// programmer error (InvalidWindow); we surface it as a sentinel error
	// rather than panicking, consistent with the rest of the package.
	ErrWindowShapeMismatch = errors.New("dtw: window shape does not match stream lengths")
)
