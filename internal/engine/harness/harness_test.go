package harness

import (
	"log"
	"strconv"
	"testing"

	"DecaySpectra/internal/estimator"
	"DecaySpectra/internal/model"
)

func TestHarnessCheckpointCadence(t *testing.T) {
	h, err := New(Options{
		Estimators: []model.Estimator{estimator.NewForwardDecay("forward", 0.01)},
		TrackKeys:  []string{"1"},
		TopK:       5,
		EvalEvery:  100,
	})
	if err != nil {
		t.Fatalf("Failed to create harness: %v", err)
	}

	checkpoints := 0
	for i := 0; i < 1000; i++ {
		cp := h.ProcessEvent(&model.Event{Timestamp: float64(i), ItemID: "1"})
		if cp != nil {
			checkpoints++
			if cp.EventCount%100 != 0 {
				t.Errorf("checkpoint at unexpected event count %d", cp.EventCount)
			}
		}
	}

	if checkpoints != 10 {
		t.Errorf("expected 10 checkpoints over 1000 events, got %d", checkpoints)
	}
	if h.Result().Len() != 10 {
		t.Errorf("expected 10 recorded checkpoints, got %d", h.Result().Len())
	}
	if h.EventCount() != 1000 {
		t.Errorf("expected 1000 events processed, got %d", h.EventCount())
	}
}

func TestHarnessGroundTruth(t *testing.T) {
	h, err := New(Options{
		Estimators: []model.Estimator{estimator.NewSlidingWindow("sliding", 1e9)},
		TrackKeys:  []string{"0", "1", "2"},
		TopK:       3,
		EvalEvery:  50,
	})
	if err != nil {
		t.Fatalf("Failed to create harness: %v", err)
	}

	for i := 0; i < 300; i++ {
		key := strconv.Itoa(i % 3)
		h.ProcessEvent(&model.Event{Timestamp: float64(i), ItemID: key})
	}

	truth := h.Truth()
	for i := 0; i < 3; i++ {
		key := strconv.Itoa(i)
		if got := truth.Count(key); got != 100 {
			t.Errorf("key %s: expected exact count 100, got %d", key, got)
		}
	}
	if truth.Keys() != 3 {
		t.Errorf("expected 3 distinct keys, got %d", truth.Keys())
	}
}

func TestHarnessSlidingWithHugeWindowIsExact(t *testing.T) {
	// A window larger than the whole stream makes the sliding-window count an
	// exact count, so every checkpoint must report zero error and full top-k
	// accuracy.
	h, err := New(Options{
		Estimators: []model.Estimator{estimator.NewSlidingWindow("sliding", 1e9)},
		TrackKeys:  []string{"0", "1", "2", "3", "4"},
		TopK:       5,
		EvalEvery:  500,
	})
	if err != nil {
		t.Fatalf("Failed to create harness: %v", err)
	}

	for i := 0; i < 5000; i++ {
		key := strconv.Itoa(i % 10)
		cp := h.ProcessEvent(&model.Event{Timestamp: float64(i) * 0.001, ItemID: key})
		if cp == nil {
			continue
		}
		m := cp.Metrics[0]
		log.Printf("event=%d avg_rel_err=%.6f topk_acc=%.2f entries=%d",
			cp.EventCount, m.AvgRelativeError, m.TopKAccuracy, m.Entries)
		if m.AvgRelativeError != 0 {
			t.Errorf("at event %d: expected zero relative error, got %v", cp.EventCount, m.AvgRelativeError)
		}
		if m.TopKAccuracy != 1 {
			t.Errorf("at event %d: expected full top-k accuracy, got %v", cp.EventCount, m.TopKAccuracy)
		}
	}
}

func TestHarnessDecayedTruth(t *testing.T) {
	const lambda = 0.01

	// Against a decayed-truth reference, the backward estimator recomputes the
	// exact same quantity and must show zero error.
	h, err := New(Options{
		Estimators:   []model.Estimator{estimator.NewBackwardDecay("backward", lambda)},
		TrackKeys:    []string{"0", "1"},
		TopK:         2,
		EvalEvery:    100,
		DecayedTruth: true,
		TruthLambda:  lambda,
	})
	if err != nil {
		t.Fatalf("Failed to create harness: %v", err)
	}

	for i := 0; i < 1000; i++ {
		key := strconv.Itoa(i % 2)
		cp := h.ProcessEvent(&model.Event{Timestamp: float64(i), ItemID: key})
		if cp == nil {
			continue
		}
		if got := cp.Metrics[0].AvgRelativeError; got > 1e-9 {
			t.Errorf("at event %d: expected near-zero error against decayed truth, got %v", cp.EventCount, got)
		}
	}
}

func TestHarnessRejectsBadOptions(t *testing.T) {
	est := []model.Estimator{estimator.NewForwardDecay("forward", 0.01)}

	cases := []struct {
		name string
		opts Options
	}{
		{"no estimators", Options{TopK: 5, EvalEvery: 100}},
		{"bad eval_every", Options{Estimators: est, TopK: 5, EvalEvery: 0}},
		{"bad top_k", Options{Estimators: est, TopK: 0, EvalEvery: 100}},
		{"decayed truth without lambda", Options{Estimators: est, TopK: 5, EvalEvery: 100, DecayedTruth: true}},
	}
	for _, tc := range cases {
		if _, err := New(tc.opts); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
