package projection

import (
	"testing"

	"github.com/strokelab/airsketch/scene"
	"github.com/strokelab/airsketch/vmath"
)

// stubPlanes returns canned hit-test results
type stubPlanes struct {
	hits []scene.PlaneHit
}

func (s stubPlanes) HitTestPlanes(scene.ScreenPoint) []scene.PlaneHit {
	return s.hits
}

// stubRays returns a fixed downward ray
type stubRays struct {
	ray   vmath.Ray
	valid bool
}

func (s stubRays) ScreenRay(scene.ScreenPoint) (vmath.Ray, bool) {
	return s.ray, s.valid
}

func TestProjectPrefersBoundedPlaneHit(t *testing.T) {
	planes := stubPlanes{hits: []scene.PlaneHit{
		{Position: vmath.Vec3{X: 1, Y: 0, Z: 2}, PlaneID: "table"},
		{Position: vmath.Vec3{X: 5, Y: 0, Z: 5}, PlaneID: "floor"},
	}}
	rays := stubRays{ray: vmath.Ray{Origin: vmath.Vec3{Y: 1}, Direction: vmath.Vec3{Y: -1}}, valid: true}

	p := NewProjector(planes, rays)
	p.SetFallbackPlane(0)

	res, ok := p.Project(scene.ScreenPoint{})
	if !ok {
		t.Fatal("expected a projection result")
	}
	if !res.HitPlane {
		t.Error("expected HitPlane for a bounded plane hit")
	}
	if res.PlaneID != "table" {
		t.Errorf("PlaneID = %q, want the most relevant hit (table)", res.PlaneID)
	}
	if res.Position != (vmath.Vec3{X: 1, Y: 0, Z: 2}) {
		t.Errorf("Position = %v", res.Position)
	}
}

func TestProjectFallbackDisabledByDefault(t *testing.T) {
	rays := stubRays{ray: vmath.Ray{Origin: vmath.Vec3{Y: 1}, Direction: vmath.Vec3{Y: -1}}, valid: true}
	p := NewProjector(stubPlanes{}, rays)

	if _, ok := p.Project(scene.ScreenPoint{}); ok {
		t.Error("expected no result with no plane hits and fallback disabled")
	}
}

func TestProjectFallbackPlane(t *testing.T) {
	rays := stubRays{ray: vmath.Ray{Origin: vmath.Vec3{X: 2, Y: 1, Z: 3}, Direction: vmath.Vec3{Y: -1}}, valid: true}
	p := NewProjector(stubPlanes{}, rays)
	p.SetFallbackPlane(0)

	res, ok := p.Project(scene.ScreenPoint{})
	if !ok {
		t.Fatal("expected fallback intersection")
	}
	if res.HitPlane {
		t.Error("fallback result must not report a bounded plane hit")
	}
	if res.PlaneID != "" {
		t.Errorf("fallback result has PlaneID %q, want none", res.PlaneID)
	}
	want := vmath.Vec3{X: 2, Y: 0, Z: 3}
	if res.Position != want {
		t.Errorf("Position = %v, want %v", res.Position, want)
	}
}

func TestProjectFallbackBehindRay(t *testing.T) {
	// Ray pointing up: the fallback plane at 0 is behind the origin
	rays := stubRays{ray: vmath.Ray{Origin: vmath.Vec3{Y: 1}, Direction: vmath.Vec3{Y: 1}}, valid: true}
	p := NewProjector(stubPlanes{}, rays)
	p.SetFallbackPlane(0)

	if _, ok := p.Project(scene.ScreenPoint{}); ok {
		t.Error("expected no result when the fallback plane is behind the ray origin")
	}
}

func TestProjectClearFallback(t *testing.T) {
	rays := stubRays{ray: vmath.Ray{Origin: vmath.Vec3{Y: 1}, Direction: vmath.Vec3{Y: -1}}, valid: true}
	p := NewProjector(stubPlanes{}, rays)
	p.SetFallbackPlane(0)
	p.ClearFallbackPlane()

	if _, ok := p.Project(scene.ScreenPoint{}); ok {
		t.Error("expected no result after fallback cleared")
	}
}

func TestProjectNoCameraFrame(t *testing.T) {
	p := NewProjector(stubPlanes{}, stubRays{valid: false})
	p.SetFallbackPlane(0)

	if _, ok := p.Project(scene.ScreenPoint{}); ok {
		t.Error("expected no result without a camera frame")
	}
}
