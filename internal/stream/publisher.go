package stream

import (
	"log"

	v1 "DecaySpectra/api/gen/v1"
	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// Publisher is responsible for publishing events to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.NATSConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.URL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes an Event to Protobuf and publishes it to the configured NATS subject.
func (p *Publisher) Publish(ev *model.Event) error {
	pbEvent := &v1.Event{
		Timestamp: ev.Timestamp,
		ItemId:    ev.ItemID,
		Value:     ev.Value,
	}

	data, err := proto.Marshal(pbEvent)
	if err != nil {
		return err
	}

	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
