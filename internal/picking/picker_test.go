package picking

import (
	"math"
	"testing"

	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var down = geometry.NewVector3(0, 0, -1)

func plane(size, z float64) *scene.Object {
	a := geometry.NewVector3(-size, -size, z)
	b := geometry.NewVector3(size, -size, z)
	c := geometry.NewVector3(size, size, z)
	d := geometry.NewVector3(-size, size, z)
	up := geometry.NewVector3(0, 0, 1)
	return scene.NewMesh("terrain", "terrain", []geometry.Triangle{
		geometry.NewTriangle(up, a, b, c),
		geometry.NewTriangle(up, a, c, d),
	})
}

func TestFromScreen(t *testing.T) {
	viewport := Viewport{Width: 800, Height: 600}
	tests := []struct {
		x, y     float64
		expected NDC
	}{
		{0, 0, NDC{-1, 1}},
		{400, 300, NDC{0, 0}},
		{800, 600, NDC{1, -1}},
		{200, 450, NDC{-0.5, -0.5}},
	}

	for _, tt := range tests {
		got := FromScreen(tt.x, tt.y, viewport)
		if math.Abs(got.X-tt.expected.X) > 1e-10 || math.Abs(got.Y-tt.expected.Y) > 1e-10 {
			t.Errorf("FromScreen(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestViewportAspect(t *testing.T) {
	if got := (Viewport{Width: 800, Height: 400}).Aspect(); got != 2 {
		t.Errorf("Aspect = %v, expected 2", got)
	}
	if got := (Viewport{}).Aspect(); got != 1 {
		t.Errorf("Degenerate aspect = %v, expected 1", got)
	}
}

func TestRayFromScreenCenter(t *testing.T) {
	cam := scene.NewCamera(geometry.NewVector3(100, 100, 100), geometry.Vector3{}, 65, 0.1, 1000)
	ray := RayFromScreen(cam, 400, 300, Viewport{Width: 800, Height: 600})

	assert.Equal(t, cam.Position, ray.Origin)
	assert.True(t, ray.Direction.ApproxEqual(cam.Forward(), 1e-9), "center ray follows the view direction")
}

func TestIntersectOrdersByDistance(t *testing.T) {
	terrain := plane(50, 0)
	marker := scene.NewMarker(geometry.NewVector3(0, 0, 5), 1)
	picker := NewPicker(0)

	ray := geometry.NewRay(geometry.NewVector3(0.1, 0.3, 50), down)
	hits := picker.Intersect(ray, []*scene.Object{terrain, marker})

	require.Len(t, hits, 2)
	assert.Same(t, marker, hits[0].Object)
	assert.Same(t, terrain, hits[1].Object)
	assert.InDelta(t, 50, hits[1].Distance, 1e-9)
	assert.InDelta(t, 0, hits[1].Point.Z, 1e-9)
	assert.Less(t, hits[0].Distance, hits[1].Distance)

	nearest, ok := Nearest(hits)
	assert.True(t, ok)
	assert.Same(t, marker, nearest.Object)
}

func TestIntersectMiss(t *testing.T) {
	picker := NewPicker(0)
	terrain := plane(10, 0)

	tests := []struct {
		name string
		ray  geometry.Ray
	}{
		{"pointing away", geometry.NewRay(geometry.NewVector3(0, 0, 10), geometry.NewVector3(0, 0, 1))},
		{"outside footprint", geometry.NewRay(geometry.NewVector3(20, 0, 10), down)},
		{"surface behind origin", geometry.NewRay(geometry.NewVector3(0, 0, -10), down)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := picker.Intersect(tt.ray, []*scene.Object{terrain})
			assert.Empty(t, hits)
			_, ok := Nearest(hits)
			assert.False(t, ok)
		})
	}
}

func TestIntersectFollowsPosition(t *testing.T) {
	picker := NewPicker(0)
	marker := scene.NewMarker(geometry.Vector3{}, 1)
	ray := geometry.NewRay(geometry.NewVector3(30.05, 40.05, 50), down)

	assert.Empty(t, picker.IntersectObject(ray, marker))

	marker.Position = geometry.NewVector3(30, 40, 0)
	hits := picker.IntersectObject(ray, marker)
	require.Len(t, hits, 1)
	assert.InDelta(t, 0.8316, hits[0].Point.Z, 1e-4, "upper face of the icosahedron")
	assert.InDelta(t, 30.05, hits[0].Point.X, 1e-9)
}

func TestIntersectLineThreshold(t *testing.T) {
	line := scene.NewLine("l", "dashed", []geometry.Vector3{
		geometry.NewVector3(-10, 0, 0),
		geometry.NewVector3(10, 0, 0),
	})

	picker := NewPicker(1)
	near := geometry.NewRay(geometry.NewVector3(0, 0.5, 50), down)
	hits := picker.IntersectObject(near, line)
	require.Len(t, hits, 1)
	assert.InDelta(t, 50, hits[0].Distance, 1e-9)

	far := geometry.NewRay(geometry.NewVector3(0, 3, 50), down)
	assert.Empty(t, picker.IntersectObject(far, line))

	wide := NewPicker(5)
	assert.Len(t, wide.IntersectObject(far, line), 1)
}

func TestPickThroughCamera(t *testing.T) {
	cam := scene.NewCamera(geometry.NewVector3(10, 0, 50), geometry.NewVector3(10, 20, 5), 65, 0.1, 1000)
	terrain := plane(100, 5)

	hits := NewPicker(0).Pick(cam, 400, 300, Viewport{Width: 800, Height: 600}, []*scene.Object{terrain})
	require.Len(t, hits, 1)
	assert.InDelta(t, 10, hits[0].Point.X, 1e-6)
	assert.InDelta(t, 20, hits[0].Point.Y, 1e-6)
	assert.InDelta(t, 5, hits[0].Point.Z, 1e-6)
}
