// Package picking turns screen coordinates into world rays and finds what
// they hit.
package picking

import (
	"sort"

	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// DefaultLineThreshold is the distance within which a ray hits a line
const DefaultLineThreshold = 1.0

// NDC is a normalized device coordinate in [-1, 1] with Y pointing up
type NDC struct {
	X, Y float64
}

// Viewport is the drawable size in pixels
type Viewport struct {
	Width, Height float64
}

// Aspect returns width / height, or 1 for a degenerate viewport
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// FromScreen converts a pixel position (origin top left) to NDC
func FromScreen(x, y float64, viewport Viewport) NDC {
	return NDC{
		X: x/viewport.Width*2 - 1,
		Y: -(y/viewport.Height)*2 + 1,
	}
}

// RayFromNDC builds the ray from the camera eye through ndc
func RayFromNDC(camera *scene.Camera, ndc NDC, aspect float64) geometry.Ray {
	through := camera.Unproject(ndc.X, ndc.Y, 0.5, aspect)
	return geometry.NewRay(camera.Position, through.Sub(camera.Position))
}

// RayFromScreen builds the ray from the camera eye through a pixel
func RayFromScreen(camera *scene.Camera, x, y float64, viewport Viewport) geometry.Ray {
	return RayFromNDC(camera, FromScreen(x, y, viewport), viewport.Aspect())
}

// Hit is an intersection between a ray and an object
type Hit struct {
	Object   *scene.Object
	Point    geometry.Vector3
	Distance float64
}

// Picker intersects rays with scene objects
type Picker struct {
	LineThreshold float64
}

// NewPicker creates a picker. A threshold <= 0 uses DefaultLineThreshold.
func NewPicker(lineThreshold float64) *Picker {
	if lineThreshold <= 0 {
		lineThreshold = DefaultLineThreshold
	}
	return &Picker{LineThreshold: lineThreshold}
}

// Pick casts a ray through a pixel and intersects it with objects
func (p *Picker) Pick(camera *scene.Camera, x, y float64, viewport Viewport, objects []*scene.Object) []Hit {
	return p.Intersect(RayFromScreen(camera, x, y, viewport), objects)
}

// Intersect returns the hits of ray against objects, nearest first
func (p *Picker) Intersect(ray geometry.Ray, objects []*scene.Object) []Hit {
	var hits []Hit
	for _, obj := range objects {
		hits = append(hits, p.IntersectObject(ray, obj)...)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// IntersectObject returns the nearest hit of ray against a single object, if any
func (p *Picker) IntersectObject(ray geometry.Ray, obj *scene.Object) []Hit {
	if obj == nil {
		return nil
	}

	// Intersect in local space so geometry never needs rewriting on move
	local := geometry.Ray{Origin: ray.Origin.Sub(obj.Position), Direction: ray.Direction}

	var (
		t  float64
		ok bool
	)
	switch obj.Kind {
	case scene.KindLine:
		t, ok = p.intersectLine(local, obj)
	default:
		t, ok = intersectMesh(local, obj)
	}
	if !ok {
		return nil
	}
	return []Hit{{Object: obj, Point: ray.At(t), Distance: t}}
}

func intersectMesh(ray geometry.Ray, obj *scene.Object) (float64, bool) {
	if !obj.LocalBounds().IntersectsRay(ray) {
		return 0, false
	}

	nearest, found := 0.0, false
	for _, tri := range obj.Triangles() {
		if t, ok := tri.IntersectRay(ray); ok && (!found || t < nearest) {
			nearest, found = t, true
		}
	}
	return nearest, found
}

func (p *Picker) intersectLine(ray geometry.Ray, obj *scene.Object) (float64, bool) {
	points := obj.Points()
	limit := p.LineThreshold * p.LineThreshold

	nearest, found := 0.0, false
	for i := 0; i+1 < len(points); i++ {
		t, distSq := ray.ClosestToSegment(points[i], points[i+1])
		if distSq <= limit && (!found || t < nearest) {
			nearest, found = t, true
		}
	}
	return nearest, found
}

// Nearest returns the first hit, if any
func Nearest(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
