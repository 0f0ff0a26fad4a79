package estimator

import (
	"fmt"
	"math"
	"testing"
)

func TestBackwardDecayQuery(t *testing.T) {
	b := NewBackwardDecay("backward", 0.01)

	if got := b.Query("a", 10); got != 0 {
		t.Fatalf("query of an unseen key should be 0, got %v", got)
	}

	b.Update("a", 0)
	b.Update("a", 1)
	b.Update("a", 2)

	now := 2.0
	want := math.Exp(-0.02) + math.Exp(-0.01) + 1
	got := b.Query("a", now)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("query: got %v, want %v", got, want)
	}
}

func TestBackwardDecayMonotoneDecay(t *testing.T) {
	b := NewBackwardDecay("backward", 0.1)
	for i := 0; i < 50; i++ {
		b.Update("a", float64(i))
	}

	// With no further updates the decayed score must strictly decrease as the
	// query time advances.
	prev := b.Query("a", 49)
	for now := 50.0; now <= 60; now++ {
		cur := b.Query("a", now)
		if cur >= prev {
			t.Fatalf("score did not decay: %v at now=%v, previous %v", cur, now, prev)
		}
		prev = cur
	}
}

func TestBackwardDecayAgreesWithForward(t *testing.T) {
	const lambda = 0.01

	f := NewForwardDecay("forward", lambda)
	b := NewBackwardDecay("backward", lambda)

	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("%d", i%7)
		f.Update(key, float64(i))
		b.Update(key, float64(i))
	}

	// The two formulations compute the same quantity and must agree on every
	// key up to floating point noise.
	now := 499.0
	for i := 0; i < 7; i++ {
		key := fmt.Sprintf("%d", i)
		fv, bv := f.Query(key, now), b.Query(key, now)
		if math.Abs(fv-bv)/bv > 1e-9 {
			t.Errorf("key %s: forward %v != backward %v", key, fv, bv)
		}
	}
}

func TestBackwardDecayEntriesGrowUnbounded(t *testing.T) {
	b := NewBackwardDecay("backward", 0.01)
	for i := 0; i < 100; i++ {
		b.Update("a", float64(i))
	}
	if b.Entries() != 100 {
		t.Errorf("expected one entry per event, got %d", b.Entries())
	}
}
