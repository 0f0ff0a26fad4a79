// Package pcap replays capture files as event streams, keyed by source IP.
package pcap

import (
	"log"

	"DecaySpectra/internal/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

// Reader reads packets from a pcap file.
type Reader struct {
	handle *pcap.Handle
}

// NewReader creates a new pcap reader for the given file path.
func NewReader(filePath string) (*Reader, error) {
	handle, err := pcap.OpenOffline(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{handle: handle}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.handle.Close()
}

// ReadEvents reads all packets from the pcap file and sends one event per
// packet to the provided channel, keyed by source IP. Packets without a
// network layer are skipped. The channel is closed when the file is
// exhausted.
func (r *Reader) ReadEvents(out chan<- *model.Event) {
	defer close(out)

	skipped := 0
	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	for packet := range packetSource.Packets() {
		netLayer := packet.NetworkLayer()
		if netLayer == nil {
			skipped++
			continue
		}

		meta := packet.Metadata()
		out <- &model.Event{
			Timestamp: float64(meta.Timestamp.UnixNano()) / 1e9,
			ItemID:    netLayer.NetworkFlow().Src().String(),
			Value:     float64(meta.Length),
		}
	}

	if skipped > 0 {
		log.Printf("Skipped %d packets without a network layer", skipped)
	}
}
