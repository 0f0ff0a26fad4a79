package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
nats:
  url: "nats://127.0.0.1:4222"
  subject: "ds.events"

estimators:
  - type: forward
    name: forward-decay
    lambda: 0.01
  - type: sliding
    window_size: 30

evaluation:
  track_items: ["1", "2"]

writers:
  - type: json
    enabled: true
    json:
      path: "results/results.json"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.NATS.Subject != "ds.events" {
		t.Errorf("unexpected subject: %q", cfg.NATS.Subject)
	}
	if len(cfg.Estimators) != 2 {
		t.Fatalf("expected 2 estimator defs, got %d", len(cfg.Estimators))
	}
	if cfg.Estimators[0].Lambda != 0.01 {
		t.Errorf("unexpected lambda: %v", cfg.Estimators[0].Lambda)
	}
	if cfg.Estimators[1].WindowSize != 30 {
		t.Errorf("unexpected window size: %v", cfg.Estimators[1].WindowSize)
	}

	// Defaults fill in where the file is silent.
	if cfg.Engine.SizeOfEventChannel != 4096 {
		t.Errorf("default channel size: got %d, want 4096", cfg.Engine.SizeOfEventChannel)
	}
	if cfg.Evaluation.EvalEvery != 5000 {
		t.Errorf("default eval_every: got %d, want 5000", cfg.Evaluation.EvalEvery)
	}
	if cfg.Evaluation.TopK != 5 {
		t.Errorf("default top_k: got %d, want 5", cfg.Evaluation.TopK)
	}

	if len(cfg.Writers) != 1 || !cfg.Writers[0].Enabled || cfg.Writers[0].JSON.Path == "" {
		t.Errorf("unexpected writers: %+v", cfg.Writers)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
