package main

import (
	"flag"
	"log"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
	"DecaySpectra/internal/stream"
	"DecaySpectra/pkg/pcap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	file := flag.String("file", "", "Path to the pcap file to replay (required).")
	flag.Parse()

	if *file == "" {
		log.Fatalln("Error: -file flag is required.")
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

	reader, err := pcap.NewReader(*file)
	if err != nil {
		log.Fatalf("Failed to open pcap file %s: %v", *file, err)
	}
	defer reader.Close()

	log.Printf("Replaying %s as an event stream...", *file)

	events := make(chan *model.Event, 1024)
	go reader.ReadEvents(events)

	published := 0
	for ev := range events {
		if err := pub.Publish(ev); err != nil {
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
