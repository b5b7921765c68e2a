package parameter

import (
	"math"
	"time"
)

// Reticle smoothing and orientation tuning

const (
	// SmoothingWindow is the number of recent world positions averaged to
	// suppress tracking jitter
	SmoothingWindow = 8

	// Camera tilt thresholds for yaw correction. Below TiltBlendStart the
	// reticle follows the camera yaw; above TiltBlendEnd it follows the raw
	// look-direction yaw; in between the two are blended linearly
	TiltBlendStart = (math.Pi / 2) * 0.65
	TiltBlendEnd   = (math.Pi / 2) * 0.75

	// Distance-based scale: unity at the pivot distance, shallow linear
	// growth beyond it (~1.2 at 1.5m)
	ScalePivotDistance = 0.7
	ScaleFarSlope      = 0.25
	ScaleFarOffset     = 0.825

	// SegmentCount is the number of rim sub-parts owned by the reticle
	SegmentCount = 8

	// ReticleAnimationDuration is the open/close transition length.
	// Updates arriving while a transition plays are ignored
	ReticleAnimationDuration = 200 * time.Millisecond

	// FlashDuration is the one-time fill flash on first plane contact
	FlashDuration = 350 * time.Millisecond
)
