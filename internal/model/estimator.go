package model

// Scoring identifies what kind of reference value an estimator's estimates
// should be compared against.
type Scoring int

const (
	// ScoringCount estimators approximate an exact event count
	// (e.g. a sliding window).
	ScoringCount Scoring = iota
	// ScoringDecayed estimators approximate an exponentially decayed weight.
	ScoringDecayed
)

// Estimator is a per-key frequency estimator over a timestamped event
// stream. This is the interface for the "execution layer".
//
// An estimator instance must be owned by a single sequential processing
// context: Update and Query mutate shared key-indexed state with no internal
// synchronization. Queries on unseen keys return zero, never an error.
type Estimator interface {
	// Name returns the configured instance name.
	Name() string

	// Update records one occurrence of key at timestamp ts (seconds).
	Update(key string, ts float64)

	// Query returns the frequency estimate for key as of time now.
	Query(key string, now float64) float64

	// TopK returns at most k keys sorted descending by the estimator's
	// scoring function, recomputed from full current state.
	TopK(k int, now float64) []ScoredKey

	// TotalFrequency returns the estimate summed over all tracked keys.
	TotalFrequency(now float64) float64

	// Entries returns the memory footprint in stored entries (one per key
	// for accumulator-based estimators, one per retained timestamp for
	// log-based ones).
	Entries() int

	// Scoring reports which ground-truth reference the estimates
	// approximate.
	Scoring() Scoring
}
