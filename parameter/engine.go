package parameter

// Engine sizing

const (
	// EventQueueSize is the session event ring capacity. Power of two so
	// index masking stays branch-free
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1

	// MutatorQueueDepth bounds pending scene-graph mutations
	MutatorQueueDepth = 64
)
