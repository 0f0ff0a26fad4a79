package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

// JSONWriter persists the final result series as a single JSON document with
// parallel arrays, one series per estimator.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a new JSON results writer.
func NewJSONWriter(cfg config.JSONWriterConfig) (model.Writer, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("json writer requires a path")
	}
	return &JSONWriter{path: cfg.Path}, nil
}

// WriteCheckpoint is a no-op; the JSON writer only persists the final series.
func (w *JSONWriter) WriteCheckpoint(cp *model.Checkpoint) error {
	return nil
}

// Flush writes the accumulated result series to the configured file.
func (w *JSONWriter) Flush(result *model.Result) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file '%s': %w", w.path, err)
	}

	log.Printf("Wrote %d checkpoints for %d estimators to %s", result.Len(), len(result.Estimators), w.path)
	return nil
}

// Close is a no-op for the JSON writer.
func (w *JSONWriter) Close() error {
	return nil
}
