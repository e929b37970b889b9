package graph

import "testing"

func TestAR4JAShapeRate1_2(t *testing.T) {
	c := AR4JACode{Rate: AR4JARate1_2, K: AR4JAK1024}
	h := c.H()
	m := 1 << c.mLog2()
	if h.NumRows() != 3*m {
		t.Fatalf("rate 1/2 should have 3m=%d rows, got %d", 3*m, h.NumRows())
	}
	if h.NumCols() != 5*m {
		t.Fatalf("rate 1/2 should have 5m=%d cols, got %d", 5*m, h.NumCols())
	}
}

func TestAR4JAShapeRate4_5(t *testing.T) {
	c := AR4JACode{Rate: AR4JARate4_5, K: AR4JAK1024}
	h := c.H()
	m := 1 << c.mLog2()
	extraCols := m * 6
	if h.NumCols() != extraCols+5*m {
		t.Fatalf("unexpected rate 4/5 column count: got %d", h.NumCols())
	}
	if h.NumRows() != 3*m {
		t.Fatalf("unexpected rate 4/5 row count: got %d", h.NumRows())
	}
}

func TestAR4JANoEmptyRows(t *testing.T) {
	c := AR4JACode{Rate: AR4JARate2_3, K: AR4JAK4096}
	h := c.H()
	for r := 0; r < h.NumRows(); r++ {
		if h.RowWeight(r) == 0 {
			t.Fatalf("row %d has no edges", r)
		}
	}
}

func TestC2HShape(t *testing.T) {
	h := C2H()
	if h.NumRows() != 2*511 || h.NumCols() != 16*511 {
		t.Fatalf("unexpected C2 shape: rows=%d cols=%d", h.NumRows(), h.NumCols())
	}
	for r := 0; r < h.NumRows(); r++ {
		if h.RowWeight(r) == 0 {
			t.Fatalf("row %d has no edges", r)
		}
	}
}
