package similarity

import "errors"

// Sentinel errors for similarity operations.
var ErrBadOptions = errors.New("similarity: invalid options")

// Options tunes the short-circuit gates and FastDTW radius Compute uses.
type Options struct {
	// Radius is the FastDTW radius used for the warp-path integral.
	Radius int
	// RatioLow/RatioHigh bound the acceptable ratio of the two streams'
	// Euclidean lengths; outside this band Compute returns 0 without
	// running DTW.
	RatioLow, RatioHigh float64
	// DistanceFraction scales the smaller stream's length into the
	// maximum allowed start/mid/end point separation.
	DistanceFraction float64
}

// DefaultOptions returns the spec's defaults: Radius 8, ratio band
// [0.4, 2.5], distance fraction 0.3.
func DefaultOptions() Options {
	return Options{
		Radius:           8,
		RatioLow:         0.4,
		RatioHigh:        2.5,
		DistanceFraction: 0.3,
	}
}

// Validate reports ErrBadOptions if any bound is non-positive or the
// ratio band is inverted.
func (o Options) Validate() error {
	if o.Radius < 0 || o.RatioLow <= 0 || o.RatioHigh <= o.RatioLow || o.DistanceFraction <= 0 {
		return ErrBadOptions
	}

	return nil
}
