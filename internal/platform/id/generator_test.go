package id

import "testing"

func TestSequence_StartsAtOneAndIncrements(t *testing.T) {
	seq := NewSequence()
	if seq.Last() != 0 {
		t.Fatalf("expected fresh sequence at 0, got %d", seq.Last())
	}

	for want := int64(1); want <= 3; want++ {
		if got := seq.NextID(); got != want {
			t.Fatalf("expected id %d, got %d", want, got)
		}
	}
	if seq.Last() != 3 {
		t.Fatalf("expected last id 3, got %d", seq.Last())
	}
}

func TestSequence_IndependentInstances(t *testing.T) {
	a := NewSequence()
	b := NewSequence()
	a.NextID()
	a.NextID()

	if got := b.NextID(); got != 1 {
		t.Fatalf("expected independent sequence to start at 1, got %d", got)
	}
}
