package event

import (
	"github.com/strokelab/airsketch/vmath"
)

// PointPayload accompanies EventPointAdded
type PointPayload struct {
	Seq      int
	Position vmath.Vec3
}

// SurfacePayload accompanies EventPointMovedToSurface
type SurfacePayload struct {
	Position vmath.Vec3
	PlaneID  string
}

// AnchorPayload accompanies EventAnchorVisited
type AnchorPayload struct {
	PlaneID string
}

// TrackingPayload accompanies EventTrackingUpdate. Region is the tracked
// fingertip rectangle in view coordinates
type TrackingPayload struct {
	X, Y, W, H float64
	Confidence float64
}

// FailurePayload accompanies EventSessionInterrupted and EventSessionFailed
type FailurePayload struct {
	Reason      string
	Recoverable bool
}
