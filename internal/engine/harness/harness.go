package harness

import (
	"fmt"
	"time"

	"DecaySpectra/internal/metrics"
	"DecaySpectra/internal/model"
)

// Options configure an evaluation harness.
type Options struct {
	// Estimators are the instances under evaluation. The harness takes
	// ownership; they must not be touched by another goroutine afterwards.
	Estimators []model.Estimator
	// TrackKeys is the fixed key set over which relative error is averaged.
	TrackKeys []string
	// TopK is k for the top-k overlap accuracy.
	TopK int
	// EvalEvery is the checkpoint cadence in events.
	EvalEvery int
	// DecayedTruth, when true, compares decay-scored estimators against an
	// exact decayed weight with decay rate TruthLambda instead of the exact
	// count. Count-scored estimators always compare against exact counts.
	DecayedTruth bool
	TruthLambda  float64
}

// Harness drives a set of estimators against exact ground truth. For every
// event it updates the ground truth first, then every estimator, timing each
// update; every EvalEvery events it computes a checkpoint of comparative
// accuracy, memory and latency metrics.
//
// The harness is single-writer: all calls must come from one goroutine.
type Harness struct {
	estimators []model.Estimator
	truth      *Truth

	trackKeys    []string
	k            int
	evalEvery    int
	decayedTruth bool

	eventCount uint64
	latency    map[string]*metrics.LatencyAcc
	result     model.Result
}

// New creates a harness from the given options.
func New(opts Options) (*Harness, error) {
	if len(opts.Estimators) == 0 {
		return nil, fmt.Errorf("harness requires at least one estimator")
	}
	if opts.EvalEvery <= 0 {
		return nil, fmt.Errorf("eval_every must be positive, got %d", opts.EvalEvery)
	}
	if opts.TopK <= 0 {
		return nil, fmt.Errorf("top_k must be positive, got %d", opts.TopK)
	}
	if opts.DecayedTruth && opts.TruthLambda <= 0 {
		return nil, fmt.Errorf("decayed truth requires a positive lambda, got %v", opts.TruthLambda)
	}

	lambda := 0.0
	if opts.DecayedTruth {
		lambda = opts.TruthLambda
	}

	latency := make(map[string]*metrics.LatencyAcc, len(opts.Estimators))
	for _, est := range opts.Estimators {
		latency[est.Name()] = &metrics.LatencyAcc{}
	}

	return &Harness{
		estimators:   opts.Estimators,
		truth:        NewTruth(lambda),
		trackKeys:    opts.TrackKeys,
		k:            opts.TopK,
		evalEvery:    opts.EvalEvery,
		decayedTruth: opts.DecayedTruth,
		latency:      latency,
	}, nil
}

// ProcessEvent feeds one event to the ground truth and all estimators. The
// harness never rejects an event. When the event completes a checkpoint
// interval the computed checkpoint is returned, otherwise nil.
func (h *Harness) ProcessEvent(ev *model.Event) *model.Checkpoint {
	h.truth.Observe(ev.ItemID, ev.Timestamp)

	for _, est := range h.estimators {
		start := time.Now()
		est.Update(ev.ItemID, ev.Timestamp)
		h.latency[est.Name()].Add(time.Since(start).Nanoseconds())
	}

	h.eventCount++
	if h.eventCount%uint64(h.evalEvery) != 0 {
		return nil
	}

	cp := h.checkpoint(ev.Timestamp)
	h.result.Append(cp)
	return cp
}

// checkpoint computes comparative metrics for every estimator at time now.
// Top-k results are recomputed from full current state, never cached.
func (h *Harness) checkpoint(now float64) *model.Checkpoint {
	trueTopK := h.truth.TopK(h.k)

	cp := &model.Checkpoint{
		Timestamp:  now,
		EventCount: h.eventCount,
		Metrics:    make([]model.EstimatorMetrics, 0, len(h.estimators)),
	}

	for _, est := range h.estimators {
		errSum := 0.0
		for _, key := range h.trackKeys {
			truth := float64(h.truth.Count(key))
			if h.decayedTruth && est.Scoring() == model.ScoringDecayed {
				truth = h.truth.DecayedWeight(key, now)
			}
			errSum += metrics.RelativeError(est.Query(key, now), truth)
		}
		avgErr := 0.0
		if len(h.trackKeys) > 0 {
			avgErr = errSum / float64(len(h.trackKeys))
		}

		cp.Metrics = append(cp.Metrics, model.EstimatorMetrics{
			Name:               est.Name(),
			AvgRelativeError:   avgErr,
			TopKAccuracy:       metrics.TopKOverlap(est.TopK(h.k, now), trueTopK, h.k),
			Entries:            est.Entries(),
			AvgUpdateLatencyNs: h.latency[est.Name()].MeanNs(),
		})
	}

	return cp
}

// Result returns the accumulated checkpoint series.
func (h *Harness) Result() *model.Result {
	return &h.result
}

// EventCount returns the number of events processed so far.
func (h *Harness) EventCount() uint64 {
	return h.eventCount
}

// Truth exposes the exact ground truth, mainly for tests and diagnostics.
func (h *Harness) Truth() *Truth {
	return h.truth
}
