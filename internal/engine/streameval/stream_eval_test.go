package streameval

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

func TestStreamEvaluatorEndToEnd(t *testing.T) {
	resultsPath := filepath.Join(t.TempDir(), "results.json")

	cfg := &config.Config{
		Engine: config.EngineConfig{SizeOfEventChannel: 128},
		Estimators: []config.EstimatorDef{
			{Type: "forward", Name: "forward", Lambda: 0.01},
			{Type: "sliding", Name: "sliding", WindowSize: 30},
		},
		Evaluation: config.EvaluationConfig{
			EvalEvery:  100,
			TopK:       3,
			TrackItems: []string{"0", "1", "2"},
		},
		Writers: []config.WriterDef{
			{Type: "json", Enabled: true, JSON: config.JSONWriterConfig{Path: resultsPath}},
		},
	}

	evaluator, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create stream evaluator: %v", err)
	}
	evaluator.Start()

	input := evaluator.InputChannel()
	for i := 0; i < 1000; i++ {
		input <- &model.Event{Timestamp: float64(i), ItemID: strconv.Itoa(i % 5)}
	}
	evaluator.Stop()

	data, err := os.ReadFile(resultsPath)
	if err != nil {
		t.Fatalf("Results file was not written: %v", err)
	}

	var result model.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Results file is not valid JSON: %v", err)
	}
	if result.Len() != 10 {
		t.Errorf("expected 10 checkpoints for 1000 events, got %d", result.Len())
	}
	for _, name := range []string{"forward", "sliding"} {
		series, ok := result.Estimators[name]
		if !ok {
			t.Fatalf("missing series for estimator %q", name)
		}
		if len(series.AvgRelativeError) != 10 {
			t.Errorf("estimator %q: expected 10 points, got %d", name, len(series.AvgRelativeError))
		}
	}
}

func TestStreamEvaluatorRejectsEmptyConfig(t *testing.T) {
	if _, err := New(&config.Config{Engine: config.EngineConfig{SizeOfEventChannel: 8}}); err == nil {
		t.Error("expected an error when no estimators are configured")
	}
}
