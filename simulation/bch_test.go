package simulation

import "testing"

func TestOuterCodeCorrects(t *testing.T) {
	oc, err := NewOuterCode(200, 4)
	if err != nil {
		t.Fatalf("NewOuterCode: %v", err)
	}
	if oc.MaxErrors() != 4 {
		t.Fatalf("MaxErrors() = %d, want 4", oc.MaxErrors())
	}
	if !oc.Corrects(4) {
		t.Fatalf("expected 4 errors to be within the correcting radius")
	}
	if oc.Corrects(5) {
		t.Fatalf("expected 5 errors to exceed the correcting radius")
	}
}

func TestOuterCodeCapsBlockSizeToRSShardLimit(t *testing.T) {
	// reedsolomon.New rejects more than 256 total data+parity shards;
	// a large LDPC k must not be passed through uncapped.
	oc, err := NewOuterCode(4096, 4)
	if err != nil {
		t.Fatalf("NewOuterCode: %v", err)
	}
	if oc.shards+oc.parity > maxRSShards {
		t.Fatalf("shards+parity = %d, want <= %d", oc.shards+oc.parity, maxRSShards)
	}
	if !oc.Corrects(4) || oc.Corrects(5) {
		t.Fatalf("capping block size must not change the correcting radius")
	}
}

func TestOuterCodeZeroMaxErrors(t *testing.T) {
	oc, err := NewOuterCode(100, 0)
	if err != nil {
		t.Fatalf("NewOuterCode: %v", err)
	}
	if !oc.Corrects(0) || oc.Corrects(1) {
		t.Fatalf("a zero-error outer code should correct 0 errors only")
	}
}
