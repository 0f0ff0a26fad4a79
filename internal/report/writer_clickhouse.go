package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS estimator_checkpoints (
    Timestamp          DateTime64(3),
    EventCount         UInt64,
    Estimator          String,
    AvgRelativeError   Float64,
    TopKAccuracy       Float64,
    Entries            UInt64,
    AvgUpdateLatencyNs Float64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (Estimator, Timestamp);
`

// ClickHouseWriter implements the model.Writer interface for ClickHouse. It
// inserts one row per estimator per checkpoint, as checkpoints are produced.
type ClickHouseWriter struct {
	conn driver.Conn
}

// NewClickHouseWriter creates a new ClickHouse checkpoint writer.
func NewClickHouseWriter(cfg config.ClickHouseConfig) (model.Writer, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured table exists.")

	return &ClickHouseWriter{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: false,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})

	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// WriteCheckpoint inserts the checkpoint's metrics into the
// estimator_checkpoints table.
func (w *ClickHouseWriter) WriteCheckpoint(cp *model.Checkpoint) error {
	if len(cp.Metrics) == 0 {
		return nil
	}

	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO estimator_checkpoints")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	sec := int64(cp.Timestamp)
	nsec := int64((cp.Timestamp - float64(sec)) * 1e9)
	ts := time.Unix(sec, nsec)

	for _, m := range cp.Metrics {
		err = batch.Append(
			ts,
			cp.EventCount,
			m.Name,
			m.AvgRelativeError,
			m.TopKAccuracy,
			uint64(m.Entries),
			m.AvgUpdateLatencyNs,
		)
		if err != nil {
			return fmt.Errorf("failed to append checkpoint to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	return nil
}

// Flush is a no-op; every checkpoint has already been inserted.
func (w *ClickHouseWriter) Flush(result *model.Result) error {
	return nil
}

// Close closes the ClickHouse connection.
func (w *ClickHouseWriter) Close() error {
	return w.conn.Close()
}
