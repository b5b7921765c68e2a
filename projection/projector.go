// Package projection resolves 2D view locations into 3D world positions
// using the host's plane detection, with an optional infinite-plane
// fallback.
package projection

import (
	"github.com/strokelab/airsketch/scene"
	"github.com/strokelab/airsketch/vmath"
)

// Result is a successful screen-to-world projection
type Result struct {
	Position vmath.Vec3
	PlaneID  string
	HitPlane bool // true when a bounded detected plane answered
}

// Projector converts screen points to world positions.
// Bounded plane hit-tests are preferred; the infinite horizontal fallback
// plane is disabled until a reference height is set, matching the intended
// production behavior where only detected surfaces are trusted
type Projector struct {
	planes scene.PlaneHitTester
	rays   scene.RayCaster // may be nil; required only for the fallback path

	fallbackY   float64
	useFallback bool
}

func NewProjector(planes scene.PlaneHitTester, rays scene.RayCaster) *Projector {
	return &Projector{
		planes: planes,
		rays:   rays,
	}
}

// SetFallbackPlane enables the degraded path: an infinite horizontal plane
// at worldY consulted when no bounded plane is hit
func (p *Projector) SetFallbackPlane(worldY float64) {
	p.fallbackY = worldY
	p.useFallback = true
}

// ClearFallbackPlane disables the degraded path
func (p *Projector) ClearFallbackPlane() {
	p.useFallback = false
}

// Project resolves a screen point to a world position. Ordered, first match
// wins: bounded detected planes, then the optional fallback plane.
// ok is false when no surface answers; that is an expected per-frame
// outcome, never an error
func (p *Projector) Project(pt scene.ScreenPoint) (Result, bool) {
	if hits := p.planes.HitTestPlanes(pt); len(hits) > 0 {
		return Result{
			Position: hits[0].Position,
			PlaneID:  hits[0].PlaneID,
			HitPlane: true,
		}, true
	}

	if p.useFallback && p.rays != nil {
		if ray, ok := p.rays.ScreenRay(pt); ok {
			if ipt, hit := ray.IntersectHorizontalPlane(p.fallbackY); hit {
				return Result{Position: ipt}, true
			}
		}
	}

	return Result{}, false
}
