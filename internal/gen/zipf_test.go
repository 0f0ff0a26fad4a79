package gen

import (
	"strconv"
	"testing"
)

func TestZipfGeneratorRanges(t *testing.T) {
	g := NewZipfGenerator(ZipfConfig{
		NumItems:  100,
		Alpha:     1.2,
		Rate:      1000,
		StartTime: 1000,
		Seed:      1,
	})

	prev := -1.0
	for i := 0; i < 10000; i++ {
		ev := g.Next()

		id, err := strconv.Atoi(ev.ItemID)
		if err != nil || id < 1 || id > 100 {
			t.Fatalf("item id out of range: %q", ev.ItemID)
		}
		if ev.Value < 40 || ev.Value > 1500 {
			t.Fatalf("value out of range: %v", ev.Value)
		}
		if ev.Timestamp <= prev {
			t.Fatalf("timestamps not strictly increasing without jitter: %v after %v", ev.Timestamp, prev)
		}
		prev = ev.Timestamp
	}
}

func TestZipfGeneratorSkew(t *testing.T) {
	g := NewZipfGenerator(ZipfConfig{
		NumItems: 1000,
		Alpha:    1.2,
		Rate:     1000,
		Seed:     7,
	})

	counts := make(map[string]int)
	for i := 0; i < 50000; i++ {
		counts[g.Next().ItemID]++
	}

	// The head of a Zipf distribution dominates the tail.
	if counts["1"] <= counts["100"] {
		t.Errorf("expected item 1 (%d) to dominate item 100 (%d)", counts["1"], counts["100"])
	}
	if counts["1"] < 50000/10 {
		t.Errorf("item 1 should carry a large share of the stream, got %d of 50000", counts["1"])
	}
}

func TestZipfGeneratorDeterministicSeed(t *testing.T) {
	cfg := ZipfConfig{NumItems: 100, Alpha: 1.2, Rate: 1000, Seed: 99}
	a, b := NewZipfGenerator(cfg), NewZipfGenerator(cfg)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed produced different streams at event %d", i)
		}
	}
}
