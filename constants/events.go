package constants

// Event queue sizing
const (
	// EventQueueSize is the ring buffer capacity. Must be a power of two.
	// Pointer move traffic dominates; 1024 slots absorbs a full frame of
	// moves from every tracked contact with headroom.
	EventQueueSize = 1024

	// EventBufferMask converts a monotonically increasing index into a
	// ring slot.
	EventBufferMask = EventQueueSize - 1
)
