package consensus

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mrdmnd/streamgeo/dtw"
	"github.com/mrdmnd/streamgeo/fastdtw"
	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/warp"
)

// DBA computes a DTW Barycenter Average consensus stream for streams:
// it initializes the consensus as a copy of streams[0], then for
// iterations rounds aligns every stream to the current consensus and
// replaces each consensus point with the mean of every input point
// warp-mapped to it.
//
// Spec.md leaves this update step as an explicit open question — the
// original source ships only a stub. It is implemented here because,
// given WarpSummary, the update is a direct per-index mean and leaving a
// named exported function permanently stubbed would be worse than
// finishing it.
func DBA(streams []geom.Stream, approximate bool, iterations int) (geom.Stream, error) {
	if len(streams) == 0 {
		return geom.Stream{}, ErrEmptyCollection
	}
	if iterations < 1 {
		return geom.Stream{}, ErrInvalidIterations
	}

	consensus := streams[0]
	radius := 0
	if approximate {
		radius = approximateRadius(streams)
	}

	for iter := 0; iter < iterations; iter++ {
		xs := make([][]float64, consensus.Len())
		ys := make([][]float64, consensus.Len())

		for _, s := range streams {
			summary, err := alignToConsensus(consensus, s, approximate, radius)
			if err != nil {
				return geom.Stream{}, err
			}
			for _, pair := range summary.IndexPairs {
				pt, err := s.Point(pair.Col)
				if err != nil {
					return geom.Stream{}, err
				}
				xs[pair.Row] = append(xs[pair.Row], pt.X)
				ys[pair.Row] = append(ys[pair.Row], pt.Y)
			}
		}

		updated := make([]geom.Point, consensus.Len())
		for i := range updated {
			if len(xs[i]) == 0 {
				updated[i], _ = consensus.Point(i)

				continue
			}
			updated[i] = geom.Point{X: stat.Mean(xs[i], nil), Y: stat.Mean(ys[i], nil)}
		}

		next, err := geom.NewStream(updated)
		if err != nil {
			return geom.Stream{}, err
		}
		consensus = next
	}

	return consensus, nil
}

func alignToConsensus(consensus, s geom.Stream, approximate bool, radius int) (warp.WarpSummary, error) {
	if approximate {
		return fastdtw.Run(consensus, s, radius)
	}

	return dtw.Full(consensus, s)
}
