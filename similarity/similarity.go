package similarity

import (
	"math"

	"github.com/mrdmnd/streamgeo/fastdtw"
	"github.com/mrdmnd/streamgeo/geom"
)

// Compute returns a scalar in [0, 1] (1 = identical) measuring how
// similar a and b are. It returns 0 (not an error) whenever the streams
// are obviously dissimilar or degenerate:
//
//  1. either stream has fewer than two points;
//  2. the ratio of their Euclidean lengths falls outside
//     [opts.RatioLow, opts.RatioHigh];
//  3. their start, mid, or end points are farther apart than
//     opts.DistanceFraction * min(lengthA, lengthB).
//
// Otherwise it runs FastDTW at opts.Radius and integrates a
// sparsity-and-position-weighted error functional over the warp path.
func Compute(a, b geom.Stream, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if a.Len() < 2 || b.Len() < 2 {
		return 0, nil
	}

	lenA, err := a.EuclideanLength()
	if err != nil {
		return 0, err
	}
	lenB, err := b.EuclideanLength()
	if err != nil {
		return 0, err
	}

	ratio := lenA / lenB
	if ratio < opts.RatioLow || ratio > opts.RatioHigh {
		return 0, nil
	}

	maxSeparation := opts.DistanceFraction * math.Min(lenA, lenB)
	if tooFar(a, b, 0, 0, maxSeparation) ||
		tooFar(a, b, a.Len()/2, b.Len()/2, maxSeparation) ||
		tooFar(a, b, a.Len()-1, b.Len()-1, maxSeparation) {
		return 0, nil
	}

	sparsityA, err := a.Sparsity()
	if err != nil {
		return 0, err
	}
	sparsityB, err := b.Sparsity()
	if err != nil {
		return 0, err
	}

	summary, err := fastdtw.Run(a, b, opts.Radius)
	if err != nil {
		return 0, err
	}

	var totalWeight, totalWeightedError float64
	nA, nB := float64(a.Len()), float64(b.Len())
	for _, pair := range summary.IndexPairs {
		i, j := pair.Row, pair.Col
		pa, _ := a.Point(i)
		pb, _ := b.Point(j)
		d := pa.Sub(pb).Norm()
		u := d / maxSeparation
		errTerm := 1 - math.Exp(-u*u)

		positionalA := 0.1 + 0.9*math.Sin(math.Pi*float64(i)/nA)
		positionalB := 0.1 + 0.9*math.Sin(math.Pi*float64(j)/nB)
		weight := sparsityA[i] * sparsityB[j] * positionalA * positionalB

		totalWeight += weight
		totalWeightedError += errTerm * weight
	}

	score := 1 - totalWeightedError/totalWeight

	return clamp01(score), nil
}

func tooFar(a, b geom.Stream, i, j int, maxSeparation float64) bool {
	pa, _ := a.Point(i)
	pb, _ := b.Point(j)

	return pa.Sub(pb).Norm() > maxSeparation
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
