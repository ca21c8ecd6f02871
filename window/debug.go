package window

import (
	"fmt"
	"io"
)

// WriteDebug renders the window as a header row plus one line per row,
// printing '*' for set cells and '.' otherwise. It mirrors the original
// strided_mask_printf debug helper; used only in tests.
func (w *StridedWindow) WriteDebug(out io.Writer) error {
	if _, err := fmt.Fprint(out, "  "); err != nil {
		return err
	}
	for c := 0; c < w.cols; c++ {
		if _, err := fmt.Fprintf(out, "%d ", c%10); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	for r := 0; r < w.rows; r++ {
		if _, err := fmt.Fprintf(out, "%d ", r%10); err != nil {
			return err
		}
		for c := 0; c < w.cols; c++ {
			mark := ". "
			if c >= w.startCol[r] && c <= w.endCol[r] {
				mark = "* "
			}
			if _, err := fmt.Fprint(out, mark); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	return nil
}
