package window_test

import (
	"fmt"

	"github.com/mrdmnd/streamgeo/window"
)

// Scenario:
//
//	A path-mask on a 5x6 grid, expanded with rho=0, kappa=0, radius=0.
//	Each source cell (i, j) upsamples to the 2x2 block
//	{(2i,2j), (2i+1,2j), (2i,2j+1), (2i+1,2j+1)}; with zero dilation the
//	expanded window is exactly the union of those blocks, row by row.
//
// ExampleStridedWindow_Expand_zeroRadius demonstrates the upsample-only
// case of Expand.
func ExampleStridedWindow_Expand_zeroRadius() {
	pairs := []window.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 1},
		{Row: 2, Col: 1},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		{Row: 4, Col: 4}, {Row: 4, Col: 5},
	}
	pathMask, err := window.FromIndexPairs(5, 6, pairs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	expanded, err := pathMask.Expand(0, 0, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("rows=%d cols=%d\n", expanded.Rows(), expanded.Cols())
	for r := 0; r < expanded.Rows(); r++ {
		start, end, _ := expanded.RowRange(r)
		fmt.Printf("row %d: [%d,%d]\n", r, start, end)
	}
	// Output:
	// rows=10 cols=12
	// row 0: [0,3]
	// row 1: [0,3]
	// row 2: [2,3]
	// row 3: [2,3]
	// row 4: [2,3]
	// row 5: [2,3]
	// row 6: [2,7]
	// row 7: [2,7]
	// row 8: [8,11]
	// row 9: [8,11]
}
