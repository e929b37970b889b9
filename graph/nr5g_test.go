package graph

import "testing"

func TestNR5GLiftingSizeFromZ(t *testing.T) {
	if ls, ok := NR5GLiftingSizeFromZ(32); !ok || ls.setIndex() != 0 {
		t.Fatalf("expected z=32 to resolve to set 0, got set=%d ok=%v", ls.setIndex(), ok)
	}
	if _, ok := NR5GLiftingSizeFromZ(17); ok {
		t.Fatalf("17 is not one of the 51 valid lifting sizes")
	}
}

func TestNR5GBG1Shape(t *testing.T) {
	h, err := NR5GBG1.H(16)
	if err != nil {
		t.Fatalf("H: %v", err)
	}
	if h.NumRows() != 46*16 || h.NumCols() != 68*16 {
		t.Fatalf("unexpected lifted shape: rows=%d cols=%d", h.NumRows(), h.NumCols())
	}
}

func TestNR5GBG2Shape(t *testing.T) {
	h, err := NR5GBG2.H(8)
	if err != nil {
		t.Fatalf("H: %v", err)
	}
	if h.NumRows() != 42*8 || h.NumCols() != 52*8 {
		t.Fatalf("unexpected lifted shape: rows=%d cols=%d", h.NumRows(), h.NumCols())
	}
}

func TestNR5GRejectsInvalidLiftingSize(t *testing.T) {
	if _, err := NR5GBG1.H(17); err == nil {
		t.Fatalf("expected an error for an invalid lifting size")
	}
}
