package model

// Writer defines a generic interface for persisting evaluation output.
type Writer interface {
	// WriteCheckpoint persists a single checkpoint as it is produced.
	// Implementations that only care about the final series may ignore it.
	WriteCheckpoint(cp *Checkpoint) error

	// Flush persists the accumulated result series. Called once, when the
	// run stops.
	Flush(result *Result) error

	// Close releases any underlying resources.
	Close() error
}
