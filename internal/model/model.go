package model

// Event is a single observation from the stream. Item identifiers are
// normalized to strings at the transport boundary; the estimators never see
// the raw wire representation.
type Event struct {
	// Timestamp is in seconds since the Unix epoch.
	Timestamp float64
	ItemID    string
	// Value is an optional numeric payload (e.g. packet size). It is carried
	// through the pipeline but the estimators count occurrences.
	Value float64
}

// ScoredKey is a single entry of a top-k result, scored by the estimator's
// own scoring function (decayed weight or windowed count).
type ScoredKey struct {
	Key   string
	Score float64
}

// EstimatorMetrics holds the metrics computed for one estimator at a
// checkpoint.
type EstimatorMetrics struct {
	Name string
	// AvgRelativeError is averaged over the tracked key set.
	AvgRelativeError float64
	// TopKAccuracy is |estimated top-k ∩ true top-k| / k.
	TopKAccuracy float64
	// Entries is the estimator's memory footprint in stored entries.
	Entries int
	// AvgUpdateLatencyNs is the mean Update latency in nanoseconds over the
	// interval since the previous checkpoint.
	AvgUpdateLatencyNs float64
}

// Checkpoint is one periodic evaluation point of the harness.
type Checkpoint struct {
	Timestamp  float64
	EventCount uint64
	Metrics    []EstimatorMetrics
}

// Series holds one estimator's metrics as parallel arrays indexed by
// checkpoint order.
type Series struct {
	AvgRelativeError   []float64 `json:"avg_relative_error"`
	TopKAccuracy       []float64 `json:"topk_accuracy"`
	Entries            []int     `json:"entries"`
	AvgUpdateLatencyNs []float64 `json:"avg_update_latency_ns"`
}

// Result is the full output of an evaluation run: parallel arrays indexed by
// checkpoint order, one series per estimator. It is what external reporting
// consumes.
type Result struct {
	Timestamps  []float64          `json:"timestamps"`
	EventCounts []uint64           `json:"event_counts"`
	Estimators  map[string]*Series `json:"estimators"`
}

// Append records a checkpoint at the end of every series.
func (r *Result) Append(cp *Checkpoint) {
	if r.Estimators == nil {
		r.Estimators = make(map[string]*Series)
	}
	r.Timestamps = append(r.Timestamps, cp.Timestamp)
	r.EventCounts = append(r.EventCounts, cp.EventCount)
	for _, m := range cp.Metrics {
		s, ok := r.Estimators[m.Name]
		if !ok {
			s = &Series{}
			r.Estimators[m.Name] = s
		}
		s.AvgRelativeError = append(s.AvgRelativeError, m.AvgRelativeError)
		s.TopKAccuracy = append(s.TopKAccuracy, m.TopKAccuracy)
		s.Entries = append(s.Entries, m.Entries)
		s.AvgUpdateLatencyNs = append(s.AvgUpdateLatencyNs, m.AvgUpdateLatencyNs)
	}
}

// Len returns the number of recorded checkpoints.
func (r *Result) Len() int {
	return len(r.Timestamps)
}
