package stl

import (
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// degenerateArea is the area below which a facet is treated as a sliver
const degenerateArea = 1e-12

// Model is the facet list of one STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
	// Skipped counts zero-area facets that AddTriangle dropped
	Skipped int
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a facet. Zero-area facets are dropped, and facets
// exported without a normal get one from their winding.
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	if triangle.Area() < degenerateArea {
		m.Skipped++
		return
	}
	if triangle.Normal.LengthSquared() == 0 {
		triangle.Normal = triangle.CalculateNormal()
	}
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of facets kept
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}
