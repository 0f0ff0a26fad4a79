// Package gen produces synthetic Zipf-distributed event streams for
// exercising the estimators.
package gen

import (
	"math/rand"
	"strconv"

	"DecaySpectra/internal/model"
)

// ZipfConfig holds the parameters of the synthetic stream.
type ZipfConfig struct {
	// NumItems is the size of the key universe; item ids are "1".."NumItems".
	NumItems int
	// Alpha is the Zipf skew parameter, > 1.
	Alpha float64
	// Rate is the stream rate in events per second.
	Rate float64
	// Jitter, when positive, perturbs each timestamp by ±Jitter seconds to
	// produce a mildly out-of-order stream.
	Jitter float64
	// StartTime is the timestamp of the first event, seconds since the epoch.
	StartTime float64
	Seed      int64
}

// ZipfGenerator emits a Zipf-distributed event stream with monotonically
// advancing base timestamps.
type ZipfGenerator struct {
	rng    *rand.Rand
	zipf   *rand.Zipf
	clock  float64
	step   float64
	jitter float64
}

// NewZipfGenerator creates a generator from the given config.
func NewZipfGenerator(cfg ZipfConfig) *ZipfGenerator {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &ZipfGenerator{
		rng:    rng,
		zipf:   rand.NewZipf(rng, cfg.Alpha, 1, uint64(cfg.NumItems-1)),
		clock:  cfg.StartTime,
		step:   1.0 / cfg.Rate,
		jitter: cfg.Jitter,
	}
}

// Next returns the next event of the stream. The value field carries a
// uniform packet size between 40 and 1500 bytes.
func (g *ZipfGenerator) Next() model.Event {
	ts := g.clock
	g.clock += g.step
	if g.jitter > 0 {
		ts += (g.rng.Float64()*2 - 1) * g.jitter
	}

	return model.Event{
		Timestamp: ts,
		ItemID:    strconv.FormatUint(g.zipf.Uint64()+1, 10),
		Value:     float64(g.rng.Intn(1461) + 40),
	}
}
