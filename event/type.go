package event

// EventType identifies a session event
type EventType uint16

const (
	EventNone EventType = iota

	// Stroke lifecycle
	EventPointAdded
	EventPointMovedToSurface
	EventCouldNotPlace

	// Reticle
	EventAnchorVisited

	// Tracking
	EventTrackingUpdate
	EventTrackingLost

	// Session lifecycle
	EventSessionReset
	EventSessionInterrupted
	EventSessionFailed
)

var eventNames = map[EventType]string{
	EventNone:                "none",
	EventPointAdded:          "point_added",
	EventPointMovedToSurface: "point_moved_to_surface",
	EventCouldNotPlace:       "could_not_place",
	EventAnchorVisited:       "anchor_visited",
	EventTrackingUpdate:      "tracking_update",
	EventTrackingLost:        "tracking_lost",
	EventSessionReset:        "session_reset",
	EventSessionInterrupted:  "session_interrupted",
	EventSessionFailed:       "session_failed",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event pairs a type with its payload and the frame it was emitted on
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
