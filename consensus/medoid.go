package consensus

import (
	"github.com/mrdmnd/streamgeo/dtw"
	"github.com/mrdmnd/streamgeo/fastdtw"
	"github.com/mrdmnd/streamgeo/geom"
)

// Medoid builds a symmetric len(streams) x len(streams) pairwise DTW cost
// matrix — full DTW cost when approximate is false, FastDTW cost at
// radius = ceil(max_i len(streams[i])^0.25) when true — and returns the
// index minimizing the sum of its row, breaking ties toward the lowest
// index. It also returns the cost matrix for callers that want to reuse
// it (spec.md's design notes call out the medoid cost matrix as worth
// exposing rather than discarding).
func Medoid(streams []geom.Stream, approximate bool) (int, [][]float64, error) {
	n := len(streams)
	if n == 0 {
		return 0, nil, ErrEmptyCollection
	}

	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
	}

	radius := 0
	if approximate {
		radius = approximateRadius(streams)
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if i == j {
				continue
			}
			cost, err := pairwiseCost(streams[i], streams[j], approximate, radius)
			if err != nil {
				return 0, nil, err
			}
			costs[i][j] = cost
			costs[j][i] = cost
		}
	}

	bestIndex := 0
	bestCost := rowSum(costs[0])
	for i := 1; i < n; i++ {
		if c := rowSum(costs[i]); c < bestCost {
			bestCost = c
			bestIndex = i
		}
	}

	return bestIndex, costs, nil
}

func pairwiseCost(a, b geom.Stream, approximate bool, radius int) (float64, error) {
	if approximate {
		summary, err := fastdtw.Run(a, b, radius)
		if err != nil {
			return 0, err
		}

		return summary.Cost, nil
	}

	return dtw.FullCost(a, b)
}

func rowSum(row []float64) float64 {
	var sum float64
	for _, v := range row {
		sum += v
	}

	return sum
}
