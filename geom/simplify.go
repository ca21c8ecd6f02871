package geom

import (
	"math"
	"sort"
)

// Simplify applies Ramer-Douglas-Peucker simplification: it keeps the
// first and last point, plus any point whose perpendicular distance from
// the line spanned by its current segment's endpoints exceeds epsilon,
// recursing on the two halves. The result's length is monotonically <=
// s.Len(); Simplify never mutates s.
//
// Grounded on cstreamgeo's reduce_by_rdp/_douglas_peucker (src/filters.c);
// this is the one out-of-core geometry helper the original project ships
// that spec.md leaves unspecified, so it is supplemented here.
func Simplify(s Stream, epsilon float64) Stream {
	n := s.Len()
	if n < 3 {
		out, _ := NewStream(s.Points())

		return out
	}

	kept := map[int]struct{}{0: {}, n - 1: {}}
	douglasPeucker(s.points, 0, n-1, epsilon, kept)

	indices := make([]int, 0, len(kept))
	for i := range kept {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	pts := make([]Point, len(indices))
	for idx, i := range indices {
		pts[idx] = s.points[i]
	}
	out, _ := NewStream(pts)

	return out
}

func douglasPeucker(points []Point, start, end int, epsilon float64, kept map[int]struct{}) {
	if end-start < 2 {
		return
	}

	dmax := 0.0
	index := start
	for i := start + 1; i < end; i++ {
		d := pointLineDistance(points[i], points[start], points[end])
		if d > dmax {
			dmax = d
			index = i
		}
	}

	if dmax > epsilon {
		if index-start > 1 {
			douglasPeucker(points, start, index, epsilon, kept)
		}
		kept[index] = struct{}{}
		if end-index > 1 {
			douglasPeucker(points, index, end, epsilon, kept)
		}
	}
}

// pointLineDistance returns the perpendicular distance from p to the
// (possibly degenerate) line through s and e.
func pointLineDistance(p, s, e Point) float64 {
	if s == e {
		return p.Sub(s).Norm()
	}
	se := e.Sub(s)
	num := math.Abs(se.X*(s.Y-p.Y) - (s.X-p.X)*se.Y)

	return num / se.Norm()
}
