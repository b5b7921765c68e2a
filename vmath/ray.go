package vmath

// Ray is a half-line from Origin along a normalized Direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// IntersectHorizontalPlane intersects the ray with the infinite horizontal
// plane at height planeY.
// A ray parallel to the plane hits only when its origin lies on the plane,
// in which case the origin itself is returned. A negative ray parameter
// means the plane is behind the origin: no hit
func (r Ray) IntersectHorizontalPlane(planeY float64) (Vec3, bool) {
	if r.Direction.Y == 0 {
		if r.Origin.Y == planeY {
			return r.Origin, true
		}
		return Vec3{}, false
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return Vec3{}, false
	}

	return V3Add(r.Origin, V3Scale(r.Direction, t)), true
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Direction, t))
}
