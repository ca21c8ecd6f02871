package fastdtw

import "errors"

// ErrNegativeRadius indicates a negative radius was supplied to Run or
// Validate.
var ErrNegativeRadius = errors.New("fastdtw: radius must be non-negative")

// Options configures the default radius FastDTW callers reach for when
// they don't need to tune it per call; Run itself takes radius directly,
// matching the spec's fast_warp_summary(a, b, radius) external signature.
type Options struct {
	// Radius controls the width of the expanded search band. radius=0
	// or 1 yields coarse approximations; radius around 8 gives sub-5%
	// relative cost error on correlated random walks of a few thousand
	// points (spec.md S4.4).
	Radius int
}

// DefaultOptions returns Options with Radius: 8.
func DefaultOptions() Options {
	return Options{Radius: 8}
}

// Validate reports ErrNegativeRadius if Radius < 0.
func (o Options) Validate() error {
	if o.Radius < 0 {
		return ErrNegativeRadius
	}

	return nil
}
