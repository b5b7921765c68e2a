package reticle

import (
	"math"

	"github.com/strokelab/airsketch/parameter"
	"github.com/strokelab/airsketch/vmath"
)

// CorrectedYaw returns the display yaw for the reticle.
// Below TiltBlendStart the camera's own yaw is used directly. Above
// TiltBlendEnd the raw look-direction yaw is used. In between the camera
// yaw is first normalized by quarter turns toward the look yaw (the reticle
// is 4-fold symmetric, so this never changes its appearance) and then
// blended linearly, which avoids a visible snap as the camera tips down
func CorrectedYaw(cameraPitch, cameraYaw, lookYaw float64) float64 {
	tilt := math.Abs(cameraPitch)

	switch {
	case tilt < parameter.TiltBlendStart:
		return cameraYaw
	case tilt < parameter.TiltBlendEnd:
		t := (tilt - parameter.TiltBlendStart) / (parameter.TiltBlendEnd - parameter.TiltBlendStart)
		return vmath.LerpAngle(vmath.MinimalRotation(cameraYaw, lookYaw), lookYaw, t)
	default:
		return lookYaw
	}
}

// DistanceScale dampens the reticle's apparent size change with distance:
// proportional up to the pivot (unity at 0.7m), then a shallow linear
// growth (~1.2 at 1.5m)
func DistanceScale(distance float64) float64 {
	if distance < parameter.ScalePivotDistance {
		return distance / parameter.ScalePivotDistance
	}
	return parameter.ScaleFarSlope*distance + parameter.ScaleFarOffset
}
