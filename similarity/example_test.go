package similarity_test

import (
	"fmt"

	"github.com/mrdmnd/streamgeo/geom"
	"github.com/mrdmnd/streamgeo/similarity"
)

// Scenario:
//
//	A stream compared against itself: a = b = [(0,0),(1,1),(2,2),(3,3),(4,4)].
//
// ExampleCompute_identicalDiagonal demonstrates that a stream aligned
// against itself always scores 1: FastDTW finds the zero-cost diagonal
// alignment and every per-pair error term collapses to zero.
func ExampleCompute_identicalDiagonal() {
	a, _ := geom.NewStream([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}})

	score, err := similarity.Compute(a, a, similarity.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("similarity=%.4f\n", score)
	// Output:
	// similarity=1.0000
}

// Scenario:
//
//	a has Euclidean length 1.0, b has Euclidean length 3.0; their ratio
//	(1/3 ≈ 0.33) falls below DefaultOptions().RatioLow (0.4).
//
// ExampleCompute_lengthRatioShortCircuit demonstrates that Compute
// returns 0 from the ratio gate alone, never running FastDTW.
func ExampleCompute_lengthRatioShortCircuit() {
	a, _ := geom.NewStream([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	b, _ := geom.NewStream([]geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}})

	score, err := similarity.Compute(a, b, similarity.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("similarity=%.4f\n", score)
	// Output:
	// similarity=0.0000
}
