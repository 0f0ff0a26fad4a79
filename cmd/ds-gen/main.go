package main

import (
	"flag"
	"log"
	"time"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/gen"
	"DecaySpectra/internal/stream"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	count := flag.Int("count", 100000, "Number of events to publish.")
	numItems := flag.Int("items", 1000, "Size of the item universe.")
	alpha := flag.Float64("alpha", 1.2, "Zipf skew parameter (> 1).")
	rate := flag.Float64("rate", 1000, "Stream rate in events per second.")
	jitter := flag.Float64("jitter", 0, "Timestamp jitter in seconds for out-of-order streams.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed.")
	flag.Parse()

	if *alpha <= 1 {
		log.Fatalf("alpha must be > 1, got %v", *alpha)
	}
	if *numItems < 2 {
		log.Fatalf("items must be at least 2, got %d", *numItems)
	}
	if *rate <= 0 {
		log.Fatalf("rate must be positive, got %v", *rate)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pub, err := stream.NewPublisher(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	generator := gen.NewZipfGenerator(gen.ZipfConfig{
		NumItems:  *numItems,
		Alpha:     *alpha,
		Rate:      *rate,
		Jitter:    *jitter,
		StartTime: float64(time.Now().Unix()),
		Seed:      *seed,
	})

	log.Printf("Publishing %d Zipf(alpha=%.2f) events over %d items...", *count, *alpha, *numItems)

	published := 0
	for i := 0; i < *count; i++ {
		ev := generator.Next()
		if err := pub.Publish(&ev); err != nil {
			log.Printf("Failed to publish event: %v", err)
			continue
		}
		published++
		if published%10000 == 0 {
			log.Printf("%d events published...", published)
		}
	}

	log.Printf("Done. Published %d events.", published)
}
