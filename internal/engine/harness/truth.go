package harness

import (
	"math"

	"DecaySpectra/internal/metrics"
	"DecaySpectra/internal/model"
)

// Truth maintains the exact per-key ground truth the estimators are
// evaluated against: exact event counts and, when enabled, an exact decayed
// weight kept with the same forward landmark convention as the forward
// decay estimator.
type Truth struct {
	counts map[string]uint64

	// decayed-truth state, maintained only when lambda > 0
	lambda  float64
	decayed map[string]float64
	t0      float64
	t0Set   bool
}

// NewTruth creates a ground-truth counter. A positive lambda additionally
// enables exact decayed-weight tracking with that decay rate.
func NewTruth(lambda float64) *Truth {
	t := &Truth{counts: make(map[string]uint64), lambda: lambda}
	if lambda > 0 {
		t.decayed = make(map[string]float64)
	}
	return t
}

// Observe records one occurrence of key at ts.
func (t *Truth) Observe(key string, ts float64) {
	t.counts[key]++
	if t.decayed == nil {
		return
	}
	if !t.t0Set {
		t.t0 = ts
		t.t0Set = true
	}
	t.decayed[key] += math.Exp(t.lambda * (ts - t.t0))
}

// Count returns the exact number of events recorded for key.
func (t *Truth) Count(key string) uint64 {
	return t.counts[key]
}

// DecayedWeight returns the exact decayed weight of key as of now.
// Zero when decayed tracking is disabled or the key is unseen.
func (t *Truth) DecayedWeight(key string, now float64) float64 {
	if t.decayed == nil || !t.t0Set {
		return 0
	}
	return t.decayed[key] * math.Exp(-t.lambda*(now-t.t0))
}

// TopK returns the k keys with the highest exact counts, descending.
func (t *Truth) TopK(k int) []model.ScoredKey {
	scored := make([]model.ScoredKey, 0, len(t.counts))
	for key, c := range t.counts {
		scored = append(scored, model.ScoredKey{Key: key, Score: float64(c)})
	}
	return metrics.SortTopK(scored, k)
}

// Keys returns the current key cardinality.
func (t *Truth) Keys() int {
	return len(t.counts)
}
