package estimator

import (
	"log"
	"math"
	"testing"
)

func TestForwardDecayLandmark(t *testing.T) {
	f := NewForwardDecay("forward", 0.01)

	if _, set := f.Landmark(); set {
		t.Fatal("landmark should be unset before the first update")
	}
	if got := f.Query("a", 100); got != 0 {
		t.Fatalf("query before any update should be 0, got %v", got)
	}

	f.Update("a", 100)

	t0, set := f.Landmark()
	if !set || t0 != 100 {
		t.Fatalf("landmark should be fixed by the first update, got (%v, %v)", t0, set)
	}
	if got := f.Query("a", 100); got != 1 {
		t.Fatalf("a single event queried at its own timestamp should score exactly 1, got %v", got)
	}

	// The landmark must not move on later updates.
	f.Update("b", 200)
	if t0, _ := f.Landmark(); t0 != 100 {
		t.Fatalf("landmark moved after a later update: %v", t0)
	}
}

func TestForwardDecayMatchesDirectRecomputation(t *testing.T) {
	const (
		lambda = 0.01
		n      = 1000
	)

	f := NewForwardDecay("forward", lambda)
	for i := 0; i < n; i++ {
		f.Update("a", float64(i))
	}

	now := float64(n - 1)
	got := f.Query("a", now)

	// Direct recomputation over the full history.
	want := 0.0
	for i := 0; i < n; i++ {
		want += math.Exp(-lambda * (now - float64(i)))
	}

	relErr := math.Abs(got-want) / want
	log.Printf("forward=%.9f direct=%.9f relative error=%.2e", got, want, relErr)
	if relErr > 1e-9 {
		t.Errorf("forward decay diverged from direct recomputation: got %v, want %v", got, want)
	}
}

func TestForwardDecayTopK(t *testing.T) {
	f := NewForwardDecay("forward", 0.01)
	for i := 0; i < 10; i++ {
		f.Update("heavy", float64(i))
	}
	f.Update("light", 5)

	top := f.TopK(2, 10)
	if len(top) != 2 {
		t.Fatalf("expected 2 scored keys, got %d", len(top))
	}
	if top[0].Key != "heavy" || top[1].Key != "light" {
		t.Errorf("unexpected top-k order: %+v", top)
	}
	if top[0].Score <= top[1].Score {
		t.Errorf("top-k scores not descending: %+v", top)
	}
}

func TestForwardDecayTotalFrequency(t *testing.T) {
	f := NewForwardDecay("forward", 0.5)
	f.Update("a", 0)
	f.Update("b", 0)

	// Two events at the landmark, queried one second later.
	want := 2 * math.Exp(-0.5)
	got := f.TotalFrequency(1)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("total frequency: got %v, want %v", got, want)
	}

	if f.Entries() != 2 {
		t.Errorf("expected 2 entries, got %d", f.Entries())
	}
}
