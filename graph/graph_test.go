package graph

import "testing"

func TestInsertContainsToggle(t *testing.T) {
	g := New(3, 4)
	g.Insert(0, 1)
	g.Insert(0, 2)
	if !g.Contains(0, 1) || !g.Contains(0, 2) {
		t.Fatalf("expected both edges to be present")
	}
	if g.RowWeight(0) != 2 || g.ColWeight(1) != 1 {
		t.Fatalf("unexpected weights: row=%d col=%d", g.RowWeight(0), g.ColWeight(1))
	}

	g.Toggle(0, 1) // removes
	if g.Contains(0, 1) {
		t.Fatalf("expected edge (0,1) removed after toggle")
	}
	g.Toggle(0, 1) // re-adds
	if !g.Contains(0, 1) {
		t.Fatalf("expected edge (0,1) present after second toggle")
	}
}

func TestClearRowCol(t *testing.T) {
	g := New(2, 3)
	g.InsertRow(0, []int{0, 1, 2})
	g.Insert(1, 1)

	g.ClearRow(0)
	if g.RowWeight(0) != 0 {
		t.Fatalf("expected row 0 cleared")
	}
	if g.ColWeight(1) != 1 {
		t.Fatalf("expected row 1's edge to survive clearing row 0, got weight %d", g.ColWeight(1))
	}

	g.ClearCol(1)
	if g.ColWeight(1) != 0 || g.RowWeight(1) != 0 {
		t.Fatalf("expected column 1 fully cleared")
	}
}

func TestCheckSatisfied(t *testing.T) {
	g := New(1, 3)
	g.InsertRow(0, []int{0, 1, 2})
	bits := []bool{true, true, false}
	if !g.CheckSatisfied(func(c int) bool { return bits[c] }) {
		t.Fatalf("expected parity check satisfied for an even number of ones")
	}
	bits[2] = true
	if g.CheckSatisfied(func(c int) bool { return bits[c] }) {
		t.Fatalf("expected parity check violated for an odd number of ones")
	}
}

func TestClone(t *testing.T) {
	g := New(2, 2)
	g.Insert(0, 0)
	clone := g.Clone()
	clone.Insert(1, 1)
	if g.Contains(1, 1) {
		t.Fatalf("mutating the clone must not affect the original")
	}
}
