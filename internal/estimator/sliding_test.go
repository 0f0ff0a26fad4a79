package estimator

import (
	"testing"
)

func TestSlidingWindowCount(t *testing.T) {
	s := NewSlidingWindow("sliding", 30)

	// One event per second. Until the window fills, the count at time t is
	// t+1; afterwards it stays pinned at the window size.
	for i := 0; i < 100; i++ {
		now := float64(i)
		s.Update("a", now)

		want := float64(i + 1)
		if want > 30 {
			want = 30
		}
		if got := s.Query("a", now); got != want {
			t.Fatalf("at t=%v: got %v, want %v", now, got, want)
		}
	}
}

func TestSlidingWindowEviction(t *testing.T) {
	s := NewSlidingWindow("sliding", 10)
	s.Update("a", 0)
	s.Update("a", 5)

	if got := s.Query("a", 9); got != 2 {
		t.Fatalf("both events inside the window: got %v, want 2", got)
	}
	// The window is half-open: an event exactly window seconds old is evicted.
	if got := s.Query("a", 10); got != 1 {
		t.Fatalf("event at the window boundary should be evicted: got %v, want 1", got)
	}
	if got := s.Query("a", 100); got != 0 {
		t.Fatalf("all events expired: got %v, want 0", got)
	}
}

func TestSlidingWindowUnseenKey(t *testing.T) {
	s := NewSlidingWindow("sliding", 30)
	s.Update("a", 0)
	if got := s.Query("b", 0); got != 0 {
		t.Errorf("unseen key: got %v, want 0", got)
	}
}

func TestSlidingWindowTopK(t *testing.T) {
	s := NewSlidingWindow("sliding", 30)
	for i := 0; i < 5; i++ {
		s.Update("heavy", float64(i))
	}
	s.Update("light", 4)
	// These fall out of the window by the query time.
	s.Update("stale", 0)
	s.Update("stale", 1)
	s.Update("stale", 2)

	top := s.TopK(3, 32)
	if len(top) != 3 {
		t.Fatalf("expected 3 scored keys, got %d", len(top))
	}
	if top[0].Key != "heavy" || top[0].Score != 2 {
		t.Errorf("expected heavy with 2 in-window events first, got %+v", top[0])
	}
	if top[1].Key != "light" || top[1].Score != 1 {
		t.Errorf("expected light second, got %+v", top[1])
	}
	if top[2].Key != "stale" || top[2].Score != 0 {
		t.Errorf("expected stale fully evicted, got %+v", top[2])
	}
}

func TestSlidingWindowEntries(t *testing.T) {
	s := NewSlidingWindow("sliding", 10)
	for i := 0; i < 25; i++ {
		s.Update("a", float64(i))
	}
	// Updates self-clean the touched key, so only the in-window suffix
	// remains.
	if s.Entries() != 10 {
		t.Errorf("expected 10 retained entries, got %d", s.Entries())
	}

	// A cold key keeps stale entries until it is touched again.
	s.Update("b", 30)
	s.Update("a", 100)
	if got := s.Entries(); got != 2 {
		t.Errorf("expected 1 entry for each key, got %d", got)
	}
}
