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
	factory.RegisterEstimator("forward", func(def config.EstimatorDef) (model.Estimator, error) {
		if def.Lambda <= 0 {
			return nil, fmt.Errorf("forward decay requires lambda > 0, got %v", def.Lambda)
		}
		return NewForwardDecay(def.Name, def.Lambda), nil
	})
}

// ForwardDecay estimates per-key frequency with a landmark-anchored decayed
// weight: one accumulator per key, O(1) amortized per update.
//
// Raw accumulators are forward-scaled, not decayed: Update adds
// exp(λ·(t−t0)), which grows with elapsed time since the landmark. Only a
// query produces a decayed value, by rescaling with exp(−λ·(t_q−t0)).
// The forward weight overflows float64 once λ·(t−t0) exceeds ~709, which
// bounds the usable stream horizon for a given λ.
type ForwardDecay struct {
	name   string
	lambda float64

	// landmark time, fixed by the first update ever and immutable afterwards
	t0    float64
	t0Set bool

	counts map[string]float64
}

// NewForwardDecay creates a forward decay estimator with decay rate lambda.
// The landmark is left unset until the first update.
func NewForwardDecay(name string, lambda float64) *ForwardDecay {
	return &ForwardDecay{
		name:   name,
		lambda: lambda,
		counts: make(map[string]float64),
	}
}

// Name returns the configured instance name.
func (f *ForwardDecay) Name() string {
	return f.name
}

// Update adds the forward-scaled weight of one occurrence of key at ts.
func (f *ForwardDecay) Update(key string, ts float64) {
	if !f.t0Set {
		f.t0 = ts
		f.t0Set = true
	}
	f.counts[key] += math.Exp(f.lambda * (ts - f.t0))
}

// Query returns the decayed frequency of key as of now. Unseen keys, or any
// query before the landmark is set, yield zero.
func (f *ForwardDecay) Query(key string, now float64) float64 {
	if !f.t0Set {
		return 0
	}
	c, ok := f.counts[key]
	if !ok {
		return 0
	}
	return c * math.Exp(-f.lambda*(now-f.t0))
}

// TopK rescales every accumulator by the current decay multiplier and
// returns the k highest, descending. Ties are broken by ascending key.
func (f *ForwardDecay) TopK(k int, now float64) []model.ScoredKey {
	if !f.t0Set {
		return nil
	}
	multiplier := math.Exp(-f.lambda * (now - f.t0))
	scored := make([]model.ScoredKey, 0, len(f.counts))
	for key, c := range f.counts {
		scored = append(scored, model.ScoredKey{Key: key, Score: c * multiplier})
	}
	return metrics.SortTopK(scored, k)
}

// TotalFrequency returns the decayed count summed over all keys.
func (f *ForwardDecay) TotalFrequency(now float64) float64 {
	if !f.t0Set {
		return 0
	}
	multiplier := math.Exp(-f.lambda * (now - f.t0))
	total := 0.0
	for _, c := range f.counts {
		total += c * multiplier
	}
	return total
}

// Entries returns one entry per distinct key ever seen.
func (f *ForwardDecay) Entries() int {
	return len(f.counts)
}

// Scoring reports that estimates are decayed weights.
func (f *ForwardDecay) Scoring() model.Scoring {
	return model.ScoringDecayed
}

// Landmark returns the landmark time and whether it has been set.
func (f *ForwardDecay) Landmark() (float64, bool) {
	return f.t0, f.t0Set
}
