package estimator

import (
	"fmt"
	"math"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/factory"
	"DecaySpectra/internal/metrics"
	"DecaySpectra/internal/model"
)

func init() {
	factory.RegisterEstimator("backward", func(def config.EstimatorDef) (model.Estimator, error) {
		if def.Lambda <= 0 {
			return nil, fmt.Errorf("backward decay requires lambda > 0, got %v", def.Lambda)
		}
		return NewBackwardDecay(def.Name, def.Lambda), nil
	})
}

// BackwardDecay estimates per-key frequency by keeping the raw timestamp
// history and recomputing the decay from scratch at query time:
// Σ exp(−λ·(t_q−t_i)) over every event ever recorded for the key.
//
// History is never pruned. The strictly increasing memory footprint is the
// baseline this estimator exists to illustrate against the other two; do not
// "fix" it with pruning or the comparison becomes meaningless.
type BackwardDecay struct {
	name   string
	lambda float64

	timestamps map[string][]float64
	entries    int
}

// NewBackwardDecay creates a backward decay estimator with decay rate lambda.
func NewBackwardDecay(name string, lambda float64) *BackwardDecay {
	return &BackwardDecay{
		name:       name,
		lambda:     lambda,
		timestamps: make(map[string][]float64),
	}
}

// Name returns the configured instance name.
func (b *BackwardDecay) Name() string {
	return b.name
}

// Update appends ts to the key's timestamp log, unconditionally.
func (b *BackwardDecay) Update(key string, ts float64) {
	b.timestamps[key] = append(b.timestamps[key], ts)
	b.entries++
}

// Query recomputes the decayed frequency over the key's entire stored
// history. Cost grows linearly with every event ever received for the key.
func (b *BackwardDecay) Query(key string, now float64) float64 {
	return b.score(b.timestamps[key], now)
}

// TopK performs the full recomputation for every key, the most expensive
// full-table operation of the three estimators. Ties are broken by
// ascending key.
func (b *BackwardDecay) TopK(k int, now float64) []model.ScoredKey {
	scored := make([]model.ScoredKey, 0, len(b.timestamps))
	for key, log := range b.timestamps {
		scored = append(scored, model.ScoredKey{Key: key, Score: b.score(log, now)})
	}
	return metrics.SortTopK(scored, k)
}

// TotalFrequency returns the decayed count summed over all keys.
func (b *BackwardDecay) TotalFrequency(now float64) float64 {
	total := 0.0
	for _, log := range b.timestamps {
		total += b.score(log, now)
	}
	return total
}

// Entries returns one entry per event ever received.
func (b *BackwardDecay) Entries() int {
	return b.entries
}

// Scoring reports that estimates are decayed weights.
func (b *BackwardDecay) Scoring() model.Scoring {
	return model.ScoringDecayed
}

func (b *BackwardDecay) score(log []float64, now float64) float64 {
	total := 0.0
	for _, ts := range log {
		total += math.Exp(-b.lambda * (now - ts))
	}
	return total
}
