package recycler

import "testing"

func TestThresholdCompactor(t *testing.T) {
	c := ThresholdCompactor{MinConsumed: 8}

	if c.Compact(7, 5, 10) {
		t.Fatal("compacted below MinConsumed")
	}
	if !c.Compact(8, 5, 16) {
		t.Fatal("did not compact at half of backing storage")
	}
	if c.Compact(8, 5, 20) {
		t.Fatal("compacted while the prefix covers less than half of storage")
	}
}

func TestThresholdCompactorZeroValueUsesDefault(t *testing.T) {
	var c ThresholdCompactor
	if c.Compact(DefaultMinConsumed-1, 1, 2) {
		t.Fatal("zero-value policy ignored DefaultMinConsumed")
	}
	if !c.Compact(DefaultMinConsumed, 1, 8) {
		t.Fatal("zero-value policy refused an overdue compaction")
	}
}
