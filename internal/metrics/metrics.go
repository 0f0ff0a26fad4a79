package metrics

import (
	"cmp"
	"math"
	"slices"

	"DecaySpectra/internal/model"
)

// RelativeError returns the normalized deviation of an estimate from its
// reference value. The zero-truth division case is defined away: 0 when both
// are zero, 1 when only the truth is zero.
func RelativeError(est, truth float64) float64 {
	if truth == 0 {
		if est == 0 {
			return 0
		}
		return 1
	}
	return math.Abs(est-truth) / truth
}

// TopKOverlap returns |estimated ∩ truth| / k for two top-k results.
// k is taken from the requested size, not the returned slice lengths, so an
// estimator returning fewer than k keys is penalized.
func TopKOverlap(estimated []model.ScoredKey, truth []model.ScoredKey, k int) float64 {
	if k <= 0 {
		return 0
	}
	trueKeys := make(map[string]struct{}, len(truth))
	for _, s := range truth {
		trueKeys[s.Key] = struct{}{}
	}
	hits := 0
	for _, s := range estimated {
		if _, ok := trueKeys[s.Key]; ok {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// SortTopK sorts scored keys descending by score (ascending key on ties, so
// results are deterministic) and keeps at most k. The slice is sorted in
// place.
func SortTopK(scored []model.ScoredKey, k int) []model.ScoredKey {
	if k <= 0 {
		return nil
	}
	slices.SortFunc(scored, func(a, b model.ScoredKey) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// LatencyAcc accumulates update latencies between checkpoints.
type LatencyAcc struct {
	totalNs int64
	count   int64
}

// Add records one latency sample in nanoseconds.
func (a *LatencyAcc) Add(ns int64) {
	a.totalNs += ns
	a.count++
}

// MeanNs returns the mean latency of the accumulated samples and resets the
// accumulator for the next interval.
func (a *LatencyAcc) MeanNs() float64 {
	if a.count == 0 {
		return 0
	}
	mean := float64(a.totalNs) / float64(a.count)
	a.totalNs, a.count = 0, 0
	return mean
}
