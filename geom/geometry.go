package geom

import "math"

// squaredDistance returns the squared Euclidean distance between a and b.
// This is the DTW step cost (spec: DTW operates on squared distance).
func squaredDistance(a, b Point) float64 {
	return a.Sub(b).Norm2()
}

// SquaredDistance returns the squared Euclidean distance between two points.
// Exported for use by dtw's step-cost computation so that no package
// outside geom reimplements point arithmetic.
func SquaredDistance(a, b Point) float64 {
	return squaredDistance(a, b)
}

// EuclideanLength returns the sum of segment lengths along the stream.
// It returns ErrTooFewPoints if s.Len() < 2.
func (s Stream) EuclideanLength() (float64, error) {
	if s.Len() < 2 {
		return 0, ErrTooFewPoints
	}
	var sum float64
	for i := 1; i < len(s.points); i++ {
		sum += s.points[i].Sub(s.points[i-1]).Norm()
	}

	return sum, nil
}

// Sparsity returns one weight per point in (0, 1], close to 1 when the
// point is densely packed relative to its neighbors and close to 0 when
// it is isolated. It returns ErrTooFewPoints if s.Len() < 2.
//
// For point j with neighbors at i = j-1 (or j+1 duplicated at the start)
// and k = j+1 (or j-1 duplicated at the end), let s = totalLength/(n-1)
// be the ideal spacing and v = (d1+d2)/(2s). Sparsity is 1 - (2/pi)*atan(v).
func (s Stream) Sparsity() ([]float64, error) {
	n := s.Len()
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	total, err := s.EuclideanLength()
	if err != nil {
		return nil, err
	}
	optimalSpacing := total / float64(n-1)
	const twoOverPi = 2.0 / math.Pi

	out := make([]float64, n)
	for j := 0; j < n; j++ {
		i := j - 1
		if i < 0 {
			i = 1
		}
		k := j + 1
		if k > n-1 {
			k = n - 2
		}
		d1 := s.points[j].Sub(s.points[i]).Norm()
		d2 := s.points[k].Sub(s.points[j]).Norm()
		v := (d1 + d2) / (2 * optimalSpacing)
		out[j] = 1.0 - twoOverPi*math.Atan(v)
	}

	return out, nil
}
