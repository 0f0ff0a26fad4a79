package estimator

import (
	"testing"

	"DecaySpectra/internal/gen"
	"DecaySpectra/internal/model"
)

func makeEvents(n int) []model.Event {
	g := gen.NewZipfGenerator(gen.ZipfConfig{
		NumItems: 1000,
		Alpha:    1.2,
		Rate:     1000,
		Seed:     42,
	})
	events := make([]model.Event, n)
	for i := range events {
		events[i] = g.Next()
	}
	return events
}

func BenchmarkEstimators(b *testing.B) {
	events := makeEvents(100000)

	b.Run("Forward_Update", func(b *testing.B) {
		f := NewForwardDecay("forward", 0.01)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ev := events[i%len(events)]
			f.Update(ev.ItemID, ev.Timestamp)
		}
	})

	b.Run("Backward_Update", func(b *testing.B) {
		bd := NewBackwardDecay("backward", 0.01)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ev := events[i%len(events)]
			bd.Update(ev.ItemID, ev.Timestamp)
		}
	})

	b.Run("Sliding_Update", func(b *testing.B) {
		s := NewSlidingWindow("sliding", 30)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ev := events[i%len(events)]
			s.Update(ev.ItemID, ev.Timestamp)
		}
	})

	b.Run("Forward_TopK", func(b *testing.B) {
		f := NewForwardDecay("forward", 0.01)
		for _, ev := range events {
			f.Update(ev.ItemID, ev.Timestamp)
		}
		now := events[len(events)-1].Timestamp
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			f.TopK(5, now)
		}
	})

	b.Run("Backward_TopK", func(b *testing.B) {
		bd := NewBackwardDecay("backward", 0.01)
		for _, ev := range events {
			bd.Update(ev.ItemID, ev.Timestamp)
		}
		now := events[len(events)-1].Timestamp
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			bd.TopK(5, now)
		}
	})

	b.Run("Sliding_TopK", func(b *testing.B) {
		s := NewSlidingWindow("sliding", 30)
		for _, ev := range events {
			s.Update(ev.ItemID, ev.Timestamp)
		}
		now := events[len(events)-1].Timestamp
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.TopK(5, now)
		}
	})
}
