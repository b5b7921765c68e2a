// Package scene defines the narrow contracts the drawing core consumes from
// the host AR/rendering platform, plus the serialized mutation context for
// scene-graph changes.
package scene

import (
	"github.com/strokelab/airsketch/vmath"
)

// ScreenPoint is a 2D location in the view's coordinate space (pixels)
type ScreenPoint struct {
	X, Y float64
}

// Region is a tracked rectangle in view coordinates
type Region struct {
	X, Y, W, H float64
}

// Center returns the region's midpoint
func (r Region) Center() ScreenPoint {
	return ScreenPoint{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PlaneHit is one plane hit-test result
type PlaneHit struct {
	Position vmath.Vec3
	PlaneID  string
}

// PlaneHitTester queries detected-surface geometry at a screen location.
// Results are ordered by relevance, nearest first. An empty result is a
// normal outcome, not an error
type PlaneHitTester interface {
	HitTestPlanes(pt ScreenPoint) []PlaneHit
}

// RayCaster converts a screen location into a world-space ray.
// ok is false when no camera frame is available
type RayCaster interface {
	ScreenRay(pt ScreenPoint) (vmath.Ray, bool)
}

// PoseProvider supplies the current camera snapshot.
// ok is false when there is no current frame
type PoseProvider interface {
	CurrentPose() (Pose, bool)
}

// VisualBackend owns the marker visuals in the host scene graph.
// All calls are made from the serialized Mutator goroutine; implementations
// must not assume any other caller
type VisualBackend interface {
	AttachMarker(seq int, pos vmath.Vec3, heightScale float64)
	DetachMarker(seq int)
	SetMarkerHeight(seq int, heightScale float64)
}

// FingertipTracker follows a fingertip region between frames.
// Confidence below parameter.MinTrackingConfidence means tracking lost
type FingertipTracker interface {
	Track(prev Region) (Region, float64)
}
