package scene

import (
	"math"

	"github.com/strokelab/airsketch/vmath"
)

// Pose is a camera snapshot: orientation plus world position.
// Yaw 0 faces -Z, positive yaw turns toward +X; negative pitch looks down
type Pose struct {
	Pitch    float64
	Yaw      float64
	Position vmath.Vec3
}

// Forward returns the normalized look direction
func (p Pose) Forward() vmath.Vec3 {
	cp := math.Cos(p.Pitch)
	return vmath.Vec3{
		X: math.Sin(p.Yaw) * cp,
		Y: math.Sin(p.Pitch),
		Z: -math.Cos(p.Yaw) * cp,
	}
}

// LookYaw returns the raw look-direction yaw projected onto the ground
// plane. Degenerate (straight up/down) poses fall back to the camera yaw
func (p Pose) LookYaw() float64 {
	f := p.Forward()
	if f.X == 0 && f.Z == 0 {
		return p.Yaw
	}
	return math.Atan2(f.X, -f.Z)
}

// Viewport describes the virtual camera's image plane
type Viewport struct {
	Width  float64 // pixels
	Height float64 // pixels
	FOV    float64 // horizontal field of view, radians
}

// NewScreenRay builds the world-space pinhole ray through a screen point
func NewScreenRay(pose Pose, view Viewport, pt ScreenPoint) vmath.Ray {
	forward := pose.Forward()
	right := vmath.V3Cross(forward, vmath.Vec3{Y: 1})
	if vmath.V3MagSq(right) == 0 {
		// Looking straight up or down: derive right from yaw alone
		right = vmath.Vec3{X: math.Cos(pose.Yaw), Z: math.Sin(pose.Yaw)}
	} else {
		right = vmath.V3Normalize(right)
	}
	up := vmath.V3Cross(right, forward)

	tanHalf := math.Tan(view.FOV / 2)
	aspect := view.Height / view.Width
	u := (pt.X/view.Width - 0.5) * 2 * tanHalf
	v := (0.5 - pt.Y/view.Height) * 2 * tanHalf * aspect

	dir := vmath.V3Add(forward, vmath.V3Add(vmath.V3Scale(right, u), vmath.V3Scale(up, v)))
	return vmath.Ray{Origin: pose.Position, Direction: vmath.V3Normalize(dir)}
}
