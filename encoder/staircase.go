package encoder

import "github.com/xtaci/ldpctoolbox/graph"

// isStaircase reports whether h's parity section (its last NumRows
// columns) is a pure staircase: ones only on the main diagonal and the
// diagonal directly below it, as produced by a repeat-accumulate
// construction such as DVB-S2's. When true, encoding can run in O(n)
// instead of needing a dense generator matrix.
func isStaircase(h *graph.Graph) bool {
	n := h.NumRows()
	m := h.NumCols()
	parityStart := m - n

	numChecked := 0
	ok := true
	h.Iterate(func(j, k int) {
		if k < parityStart {
			return
		}
		switch {
		case j == 0 && k != parityStart:
			ok = false
		case j != 0 && k != parityStart+j-1 && k != parityStart+j:
			ok = false
		}
		numChecked++
	})
	return ok && numChecked == 2*n-1
}
