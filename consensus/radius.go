package consensus

import (
	"math"

	"github.com/mrdmnd/streamgeo/geom"
)

// approximateRadius implements the spec's approximate-medoid heuristic:
// ceil(max_i len(S_i)^0.25). It is preserved as-is from the original
// source but flagged there (and here) as a tuning parameter, not a
// semantic contract — callers needing a specific accuracy/speed trade-off
// should call fastdtw.Run directly with their own radius instead of
// going through Medoid/DBA's approximate=true path.
func approximateRadius(streams []geom.Stream) int {
	maxLen := 0
	for _, s := range streams {
		if n := s.Len(); n > maxLen {
			maxLen = n
		}
	}

	return int(math.Ceil(math.Pow(float64(maxLen), 0.25)))
}
