// Package model holds a format-independent view of a loaded terrain file:
// layered meshes and polylines.
package model

import (
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// Layer is a named classification shared by meshes and polylines
type Layer struct {
	Name string
}

// Mesh is a triangle soup on one layer
type Mesh struct {
	Name      string
	Layer     int
	Triangles []geometry.Triangle
}

// Polyline is an open line strip on one layer
type Polyline struct {
	Layer  int
	Points []geometry.Vector3
}

// Document is the loaded content of a model file
type Document struct {
	Name      string
	Layers    []Layer
	Meshes    []Mesh
	Polylines []Polyline

	// Sources lists every file the document was built from, for watching
	Sources []string
}

// LayerName returns the name of the layer at index, or "" when out of range
func (d *Document) LayerName(index int) string {
	if index < 0 || index >= len(d.Layers) {
		return ""
	}
	return d.Layers[index].Name
}

// LayerIndex returns the index of the named layer, adding it when missing
func (d *Document) LayerIndex(name string) int {
	for i, layer := range d.Layers {
		if layer.Name == name {
			return i
		}
	}
	d.Layers = append(d.Layers, Layer{Name: name})
	return len(d.Layers) - 1
}

// TriangleCount returns the number of triangles across all meshes
func (d *Document) TriangleCount() int {
	count := 0
	for _, mesh := range d.Meshes {
		count += len(mesh.Triangles)
	}
	return count
}

// BoundingBox covers all meshes and polylines
func (d *Document) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, mesh := range d.Meshes {
		for _, triangle := range mesh.Triangles {
			bbox.Extend(triangle.V1)
			bbox.Extend(triangle.V2)
			bbox.Extend(triangle.V3)
		}
	}
	for _, line := range d.Polylines {
		for _, p := range line.Points {
			bbox.Extend(p)
		}
	}
	return bbox
}
