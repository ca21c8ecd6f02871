package dtw_test

import (
	"fmt"

	"github.com/mrdmnd/streamgeo/dtw"
	"github.com/mrdmnd/streamgeo/geom"
)

// Scenario:
//
//	Two short, differently-paced polylines, 4 points against 3.
//	  a = [(0,0),(2,4),(4,4),(6,0)]
//	  b = [(1,0),(3,3.5),(5,0)]
//
// ExampleFull_fourByThree demonstrates a small dense alignment end to end:
// the step cost is squared Euclidean distance, and ties in the
// diag/up/left recurrence resolve toward the diagonal.
func ExampleFull_fourByThree() {
	a, _ := geom.NewStream([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 6, Y: 0}})
	b, _ := geom.NewStream([]geom.Point{{X: 1, Y: 0}, {X: 3, Y: 3.5}, {X: 5, Y: 0}})

	summary, err := dtw.Full(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%.1f\npath_length=%d\npath=%v\n", summary.Cost, summary.PathLength(), summary.IndexPairs)
	// Output:
	// cost=4.5
	// path_length=4
	// path=[{0 0} {1 1} {2 1} {3 2}]
}

// Scenario:
//
//	Two longer, distinctly-paced polylines, 8 points against 7.
//	  a = [(0,0),(1,0),(2,0),(3,1),(4,2),(5,3),(5,5),(6,5)]
//	  b = [(0,0),(2,0),(3,2),(5,4),(6,4),(6,7),(8,7)]
//
// ExampleFull_eightBySeven pins the alignment the diag<=up<=left
// tie-break produces on a larger input: the path ends at
// (len(a)-1, len(b)-1), holds a column steady where several points of a
// match one point of b (rows 0-1 on column 0, rows 3-4 on column 2), and
// holds row 7 steady across columns 5 and 6.
func ExampleFull_eightBySeven() {
	a, _ := geom.NewStream([]geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1},
		{X: 4, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 5}, {X: 6, Y: 5},
	})
	b, _ := geom.NewStream([]geom.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 2}, {X: 5, Y: 4},
		{X: 6, Y: 4}, {X: 6, Y: 7}, {X: 8, Y: 7},
	})

	summary, err := dtw.Full(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%.1f\npath_length=%d\npath=%v\n", summary.Cost, summary.PathLength(), summary.IndexPairs)
	// Output:
	// cost=18.0
	// path_length=9
	// path=[{0 0} {1 0} {2 1} {3 2} {4 2} {5 3} {6 4} {7 5} {7 6}]
}
