package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/engine/streameval"
	"DecaySpectra/internal/model"
	"DecaySpectra/internal/stream"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	flag.Parse()

	log.Println("Starting ds-engine...")

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize the stream evaluator
	evaluator, err := streameval.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create stream evaluator: %v", err)
	}

	// 3. Start the evaluator worker
	evaluator.Start()

	// 4. Subscribe to the event stream and feed the evaluator
	sub, err := stream.NewSubscriber(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}

	input := evaluator.InputChannel()
	err = sub.Start(func(ev model.Event) {
		input <- &ev
	})
	if err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	// 5. Wait for a shutdown signal for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Println("Shutdown signal received, stopping evaluator...")
	sub.Close()
	evaluator.Stop()
	log.Println("Shutdown complete.")
}
