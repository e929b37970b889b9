package graph

import "testing"

func TestPEGProducesTargetColumnWeight(t *testing.T) {
	cfg := PEGConfig{NumRows: 10, NumCols: 20, Wc: 3}
	h := cfg.Run()
	if h.NumRows() != 10 || h.NumCols() != 20 {
		t.Fatalf("unexpected shape: rows=%d cols=%d", h.NumRows(), h.NumCols())
	}
	for c := 0; c < h.NumCols(); c++ {
		if h.ColWeight(c) != 3 {
			t.Fatalf("column %d has weight %d, want 3", c, h.ColWeight(c))
		}
	}
}

func TestPEGPerColumnWeights(t *testing.T) {
	weights := []int{2, 2, 3, 3, 4}
	cfg := PEGConfig{NumRows: 6, NumCols: len(weights), ColWeight: weights}
	h := cfg.Run()
	for c, w := range weights {
		if h.ColWeight(c) != w {
			t.Fatalf("column %d has weight %d, want %d", c, h.ColWeight(c), w)
		}
	}
}

func TestPEGRowsStayBalanced(t *testing.T) {
	cfg := PEGConfig{NumRows: 4, NumCols: 16, Wc: 3}
	h := cfg.Run()
	maxW, minW := 0, 1<<30
	for r := 0; r < h.NumRows(); r++ {
		w := h.RowWeight(r)
		if w > maxW {
			maxW = w
		}
		if w < minW {
			minW = w
		}
	}
	if maxW-minW > 2 {
		t.Fatalf("row weights too unbalanced: min=%d max=%d", minW, maxW)
	}
}
