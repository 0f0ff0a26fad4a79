package estimator

import (
	"fmt"
	"sort"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/factory"
	"DecaySpectra/internal/metrics"
	"DecaySpectra/internal/model"
)

func init() {
	factory.RegisterEstimator("sliding", func(def config.EstimatorDef) (model.Estimator, error) {
		if def.WindowSize <= 0 {
			return nil, fmt.Errorf("sliding window requires window_size > 0, got %v", def.WindowSize)
		}
		return NewSlidingWindow(def.Name, def.WindowSize), nil
	})
}

// SlidingWindow counts per-key events inside a trailing window (now−w, now].
// It keeps an ascending timestamp log per key and evicts lazily: only the
// touched key is cleaned on Update/Query, a global sweep never happens, so a
// cold key retains stale entries until it is touched again.
//
// Insertion assumes ascending timestamps per key. An out-of-order timestamp
// inserted below the current tail invalidates the sortedness the
// position-based eviction boundary relies on; this is tolerated, not
// defended against.
type SlidingWindow struct {
	name string
	// window duration in seconds
	window float64

	logs    map[string][]float64
	entries int
}

// NewSlidingWindow creates a sliding-window estimator with the given trailing
// window duration in seconds.
func NewSlidingWindow(name string, window float64) *SlidingWindow {
	return &SlidingWindow{
		name:   name,
		window: window,
		logs:   make(map[string][]float64),
	}
}

// Name returns the configured instance name.
func (s *SlidingWindow) Name() string {
	return s.name
}

// Update inserts ts at its sorted position in the key's log, then evicts
// this key's entries that have fallen out of the window ending at ts.
func (s *SlidingWindow) Update(key string, ts float64) {
	log := s.logs[key]
	idx := sort.SearchFloat64s(log, ts)
	log = append(log, 0)
	copy(log[idx+1:], log[idx:])
	log[idx] = ts
	s.entries++
	s.logs[key] = log
	s.cleanup(key, ts)
}

// Query evicts the key's stale entries, then returns the remaining count —
// an exact count within the trailing window, not an approximation.
func (s *SlidingWindow) Query(key string, now float64) float64 {
	if _, ok := s.logs[key]; !ok {
		return 0
	}
	s.cleanup(key, now)
	return float64(len(s.logs[key]))
}

// TopK cleans up every tracked key before comparing counts, O(total
// retained entries). Ties are broken by ascending key.
func (s *SlidingWindow) TopK(k int, now float64) []model.ScoredKey {
	scored := make([]model.ScoredKey, 0, len(s.logs))
	for key := range s.logs {
		s.cleanup(key, now)
		scored = append(scored, model.ScoredKey{Key: key, Score: float64(len(s.logs[key]))})
	}
	return metrics.SortTopK(scored, k)
}

// TotalFrequency returns the windowed count summed over all keys.
func (s *SlidingWindow) TotalFrequency(now float64) float64 {
	total := 0
	for key := range s.logs {
		s.cleanup(key, now)
		total += len(s.logs[key])
	}
	return float64(total)
}

// Entries returns the total number of retained timestamps across all keys,
// including stale entries of keys not yet touched again.
func (s *SlidingWindow) Entries() int {
	return s.entries
}

// Scoring reports that estimates are exact windowed counts.
func (s *SlidingWindow) Scoring() model.Scoring {
	return model.ScoringCount
}

// cleanup drops the key's timestamps at or before now−window, keeping the
// half-open window (now−w, now]. The log is shifted in place so the
// backing array is reused across evictions.
func (s *SlidingWindow) cleanup(key string, now float64) {
	log := s.logs[key]
	windowStart := now - s.window
	// first index with log[idx] > windowStart
	idx := sort.Search(len(log), func(i int) bool { return log[i] > windowStart })
	if idx == 0 {
		return
	}
	n := copy(log, log[idx:])
	s.logs[key] = log[:n]
	s.entries -= idx
}
