package graph

import (
	"bytes"
	"testing"
)

func TestMacKayNealBuildsTargetWeights(t *testing.T) {
	cfg := MacKayNealConfig{
		NumRows:         10,
		NumCols:         20,
		Wr:              4,
		Wc:              2,
		BacktrackCols:   2,
		BacktrackTrials: 32,
		GirthTrials:     16,
		FillPolicy:      FillUniform,
	}
	h, err := cfg.Search(1, 8)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if h.NumRows() != 10 || h.NumCols() != 20 {
		t.Fatalf("unexpected shape: rows=%d cols=%d", h.NumRows(), h.NumCols())
	}
	for c := 0; c < h.NumCols(); c++ {
		if h.ColWeight(c) != cfg.Wc {
			t.Fatalf("column %d has weight %d, want %d", c, h.ColWeight(c), cfg.Wc)
		}
	}
}

func TestMacKayNealGirthConstraint(t *testing.T) {
	minGirth := 6
	cfg := MacKayNealConfig{
		NumRows:         15,
		NumCols:         30,
		Wr:              4,
		Wc:              2,
		BacktrackCols:   3,
		BacktrackTrials: 64,
		MinGirth:        &minGirth,
		GirthTrials:     32,
		FillPolicy:      FillRandom,
	}
	h, err := cfg.Search(7, 16)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if g, ok := Girth(h); ok && g < minGirth {
		t.Fatalf("girth %d is below the configured minimum %d", g, minGirth)
	}
}

func TestAlistRoundTrip(t *testing.T) {
	cfg := MacKayNealConfig{NumRows: 6, NumCols: 12, Wr: 4, Wc: 2, BacktrackTrials: 16, GirthTrials: 8}
	h, err := cfg.Search(3, 8)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	var buf bytes.Buffer
	if err := h.WriteAlist(&buf); err != nil {
		t.Fatalf("WriteAlist: %v", err)
	}
	back, err := ReadAlist(&buf)
	if err != nil {
		t.Fatalf("ReadAlist: %v", err)
	}
	if back.NumRows() != h.NumRows() || back.NumCols() != h.NumCols() {
		t.Fatalf("shape mismatch after round trip")
	}
	for c := 0; c < h.NumCols(); c++ {
		if back.ColWeight(c) != h.ColWeight(c) {
			t.Fatalf("column %d weight mismatch after round trip", c)
		}
	}
}

func TestAlistSnappyRoundTrip(t *testing.T) {
	h := New(4, 8)
	h.InsertRow(0, []int{0, 1, 2})
	h.InsertRow(1, []int{1, 3, 4})
	h.InsertRow(2, []int{2, 5, 6})
	h.InsertRow(3, []int{3, 6, 7})

	var buf bytes.Buffer
	if err := h.WriteAlistSnappy(&buf); err != nil {
		t.Fatalf("WriteAlistSnappy: %v", err)
	}
	back, err := ReadAlistSnappy(&buf)
	if err != nil {
		t.Fatalf("ReadAlistSnappy: %v", err)
	}
	if back.NumRows() != 4 || back.NumCols() != 8 {
		t.Fatalf("unexpected shape after snappy round trip: rows=%d cols=%d", back.NumRows(), back.NumCols())
	}
	if !back.Contains(0, 0) || !back.Contains(3, 7) {
		t.Fatalf("expected edges preserved through snappy round trip")
	}
}
