package graph

import "testing"

func TestQCLiftIdentityBlock(t *testing.T) {
	h := QCLift(1, 1, 4, []QCProtoEntry{{Row: 0, Col: 0, Shift: 0}})
	for i := 0; i < 4; i++ {
		if !h.Contains(i, i) {
			t.Fatalf("shift-0 block should place the identity at (%d,%d)", i, i)
		}
	}
}

func TestQCLiftShiftedBlock(t *testing.T) {
	h := QCLift(1, 1, 4, []QCProtoEntry{{Row: 0, Col: 0, Shift: 1}})
	for r := 0; r < 4; r++ {
		want := (r + 1) % 4
		if !h.Contains(r, want) {
			t.Fatalf("shift-1 block should connect row %d to col %d", r, want)
		}
	}
}

func TestQCLiftSkipsNegativeShift(t *testing.T) {
	h := QCLift(1, 1, 4, []QCProtoEntry{{Row: 0, Col: 0, Shift: -1}})
	for r := 0; r < 4; r++ {
		if h.RowWeight(r) != 0 {
			t.Fatalf("a negative shift should yield an all-zero block, row %d has weight %d", r, h.RowWeight(r))
		}
	}
}
