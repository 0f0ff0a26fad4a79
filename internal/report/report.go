// Package report persists evaluation output to the configured sinks.
package report

import (
	"fmt"
	"log"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

// NewWriters builds the enabled writers from the configuration.
func NewWriters(defs []config.WriterDef) ([]model.Writer, error) {
	var writers []model.Writer
	for _, def := range defs {
		if !def.Enabled {
			continue
		}
		switch def.Type {
		case "json":
			w, err := NewJSONWriter(def.JSON)
			if err != nil {
				return nil, fmt.Errorf("failed to create json writer: %w", err)
			}
			writers = append(writers, w)
		case "clickhouse":
			w, err := NewClickHouseWriter(def.ClickHouse)
			if err != nil {
				return nil, fmt.Errorf("failed to create clickhouse writer: %w", err)
			}
			writers = append(writers, w)
		default:
			return nil, fmt.Errorf("unknown writer type: %s", def.Type)
		}
		log.Printf("Enabled '%s' result writer", def.Type)
	}
	return writers, nil
}
