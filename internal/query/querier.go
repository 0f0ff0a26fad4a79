// Package query reads recorded checkpoints back from ClickHouse for the API
// servers.
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	v1 "DecaySpectra/api/gen/v1"
	"DecaySpectra/internal/config"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Querier defines the interface for querying recorded checkpoint data.
type Querier interface {
	ListEstimators(ctx context.Context, req *v1.ListEstimatorsRequest) (*v1.ListEstimatorsResponse, error)
	QueryCheckpoints(ctx context.Context, req *v1.QueryCheckpointsRequest) (*v1.QueryCheckpointsResponse, error)
}

// clickhouseQuerier implements the Querier interface for ClickHouse.
type clickhouseQuerier struct {
	conn clickhouse.Conn
}

// NewClickHouseQuerier creates a new querier for ClickHouse.
func NewClickHouseQuerier(cfg config.ClickHouseConfig) (Querier, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}
	return &clickhouseQuerier{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (clickhouse.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
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

// ListEstimators returns the distinct estimator names present in the
// checkpoint table.
func (q *clickhouseQuerier) ListEstimators(ctx context.Context, req *v1.ListEstimatorsRequest) (*v1.ListEstimatorsResponse, error) {
	rows, err := q.conn.Query(ctx, "SELECT DISTINCT Estimator FROM estimator_checkpoints ORDER BY Estimator")
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var estimators []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan estimator name: %w", err)
		}
		estimators = append(estimators, name)
	}

	return &v1.ListEstimatorsResponse{Estimators: estimators}, nil
}

// QueryCheckpoints returns the recorded checkpoints for one estimator within
// an optional time range, oldest first.
func (q *clickhouseQuerier) QueryCheckpoints(ctx context.Context, req *v1.QueryCheckpointsRequest) (*v1.QueryCheckpointsResponse, error) {
	if req.Estimator == "" {
		return nil, fmt.Errorf("estimator name is required")
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			Timestamp,
			EventCount,
			Estimator,
			AvgRelativeError,
			TopKAccuracy,
			Entries,
			AvgUpdateLatencyNs
		FROM estimator_checkpoints
	`)

	whereClauses := []string{"Estimator = ?"}
	args := []interface{}{req.Estimator}

	if req.StartTime > 0 {
		whereClauses = append(whereClauses, "Timestamp >= ?")
		args = append(args, secondsToTime(req.StartTime))
	}
	if req.EndTime > 0 {
		whereClauses = append(whereClauses, "Timestamp <= ?")
		args = append(args, secondsToTime(req.EndTime))
	}

	queryBuilder.WriteString(" WHERE " + strings.Join(whereClauses, " AND "))
	queryBuilder.WriteString(" ORDER BY Timestamp")

	if req.Limit > 0 {
		queryBuilder.WriteString(" LIMIT ?")
		args = append(args, req.Limit)
	}

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var checkpoints []*v1.Checkpoint
	for rows.Next() {
		var (
			ts      time.Time
			count   uint64
			m       v1.EstimatorMetrics
			entries uint64
		)
		if err := rows.Scan(&ts, &count, &m.Name, &m.AvgRelativeError, &m.TopkAccuracy, &entries, &m.AvgUpdateLatencyNs); err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint row: %w", err)
		}
		m.Entries = entries
		checkpoints = append(checkpoints, &v1.Checkpoint{
			Timestamp:  float64(ts.UnixNano()) / 1e9,
			EventCount: count,
			Metrics:    []*v1.EstimatorMetrics{&m},
		})
	}

	return &v1.QueryCheckpointsResponse{Checkpoints: checkpoints}, nil
}

func secondsToTime(s float64) time.Time {
	sec := int64(s)
	nsec := int64((s - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
