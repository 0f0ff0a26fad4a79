package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

func TestJSONWriterFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.json")
	w, err := NewJSONWriter(config.JSONWriterConfig{Path: path})
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}

	var result model.Result
	for i := 1; i <= 3; i++ {
		result.Append(&model.Checkpoint{
			Timestamp:  float64(i),
			EventCount: uint64(i * 1000),
			Metrics: []model.EstimatorMetrics{
				{Name: "forward", AvgRelativeError: 0.1, TopKAccuracy: 0.8, Entries: i * 10},
			},
		})
	}

	if err := w.Flush(&result); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read results file: %v", err)
	}

	var decoded model.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Results file is not valid JSON: %v", err)
	}
	if decoded.Len() != 3 {
		t.Errorf("expected 3 checkpoints, got %d", decoded.Len())
	}
	series, ok := decoded.Estimators["forward"]
	if !ok {
		t.Fatal("missing series for estimator 'forward'")
	}
	if len(series.AvgRelativeError) != 3 || len(series.Entries) != 3 {
		t.Errorf("parallel arrays have wrong length: %+v", series)
	}
	if decoded.EventCounts[2] != 3000 {
		t.Errorf("unexpected event count: %d", decoded.EventCounts[2])
	}
}

func TestJSONWriterRequiresPath(t *testing.T) {
	if _, err := NewJSONWriter(config.JSONWriterConfig{}); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestNewWritersSkipsDisabled(t *testing.T) {
	writers, err := NewWriters([]config.WriterDef{
		{Type: "clickhouse", Enabled: false},
		{Type: "json", Enabled: true, JSON: config.JSONWriterConfig{Path: filepath.Join(t.TempDir(), "r.json")}},
	})
	if err != nil {
		t.Fatalf("NewWriters failed: %v", err)
	}
	if len(writers) != 1 {
		t.Errorf("expected 1 enabled writer, got %d", len(writers))
	}
}
