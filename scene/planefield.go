package scene

import (
	"fmt"
	"sort"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/strokelab/airsketch/vmath"
)

// Plane is a synthetic detected surface: a height plus a boundary polygon
// in the XZ plane
type Plane struct {
	ID       string
	Y        float64
	boundary geom.Polygon
}

// PlaneField is an in-process plane-detection service used by the sandbox
// and tests in place of a platform AR framework. Hit-testing casts the
// pinhole ray through the screen point and keeps intersections whose XZ
// footprint lies within a plane's boundary polygon
type PlaneField struct {
	pose   PoseProvider
	view   Viewport
	planes []Plane
}

func NewPlaneField(pose PoseProvider, view Viewport) *PlaneField {
	return &PlaneField{
		pose: pose,
		view: view,
	}
}

// AddHorizontalPlane registers a detected surface with an axis-aligned
// rectangular boundary centered at (cx, cz)
func (f *PlaneField) AddHorizontalPlane(id string, y, cx, cz, halfW, halfD float64) error {
	coords := []float64{
		cx - halfW, cz - halfD,
		cx + halfW, cz - halfD,
		cx + halfW, cz + halfD,
		cx - halfW, cz + halfD,
		cx - halfW, cz - halfD,
	}
	ring := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	poly := geom.NewPolygon([]geom.LineString{ring})
	if err := poly.Validate(); err != nil {
		return fmt.Errorf("plane %s boundary: %w", id, err)
	}

	f.planes = append(f.planes, Plane{ID: id, Y: y, boundary: poly})
	return nil
}

// Planes returns the registered surfaces
func (f *PlaneField) Planes() []Plane {
	return f.planes
}

// ScreenRay implements RayCaster
func (f *PlaneField) ScreenRay(pt ScreenPoint) (vmath.Ray, bool) {
	pose, ok := f.pose.CurrentPose()
	if !ok {
		return vmath.Ray{}, false
	}
	return NewScreenRay(pose, f.view, pt), true
}

// HitTestPlanes implements PlaneHitTester. Nearest hit first
func (f *PlaneField) HitTestPlanes(pt ScreenPoint) []PlaneHit {
	ray, ok := f.ScreenRay(pt)
	if !ok {
		return nil
	}

	type scored struct {
		hit  PlaneHit
		dist float64
	}
	var results []scored

	for _, p := range f.planes {
		ipt, hit := ray.IntersectHorizontalPlane(p.Y)
		if !hit {
			continue
		}
		footprint := geom.NewPoint(geom.Coordinates{
			XY:   geom.XY{X: ipt.X, Y: ipt.Z},
			Type: geom.DimXY,
		})
		if !geom.Intersects(p.boundary.AsGeometry(), footprint.AsGeometry()) {
			continue
		}
		results = append(results, scored{
			hit:  PlaneHit{Position: ipt, PlaneID: p.ID},
			dist: vmath.V3Dist(ray.Origin, ipt),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].dist < results[j].dist
	})

	hits := make([]PlaneHit, len(results))
	for i, r := range results {
		hits[i] = r.hit
	}
	return hits
}
