package graph

import "testing"

func TestDVBS2Rate1_2Shape(t *testing.T) {
	h := DVBS2R1_2.H(DVBS2Short)
	if h.NumCols() != int(DVBS2Short) {
		t.Fatalf("expected %d columns, got %d", DVBS2Short, h.NumCols())
	}
	k := h.NumCols() - h.NumRows()
	gotRate := float64(k) / float64(h.NumCols())
	if gotRate < 0.45 || gotRate > 0.55 {
		t.Fatalf("rate 1/2 code has implied rate %.3f, want close to 0.5", gotRate)
	}
}

func TestDVBS2ParitySectionIsStaircase(t *testing.T) {
	h := DVBS2R2_3.H(DVBS2Short)
	k := h.NumCols() - h.NumRows()
	// Every parity row must connect to its own diagonal column, and (after
	// the first) to the previous diagonal column, per the accumulate
	// structure.
	for r := 0; r < h.NumRows(); r++ {
		if !h.Contains(r, k+r) {
			t.Fatalf("parity row %d missing its own diagonal entry", r)
		}
		if r > 0 && !h.Contains(r, k+r-1) {
			t.Fatalf("parity row %d missing the previous diagonal entry", r)
		}
	}
}

func TestDVBS2NoEmptyRows(t *testing.T) {
	h := DVBS2R3_4.H(DVBS2Normal)
	for r := 0; r < h.NumRows(); r++ {
		if h.RowWeight(r) == 0 {
			t.Fatalf("row %d has no edges", r)
		}
	}
}
