// Package analysis computes statistics of a loaded terrain document.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/terrainpick/pkg/geometry"
	"github.com/philipparndt/terrainpick/pkg/model"
)

// LayerStats counts the geometry on one layer
type LayerStats struct {
	Name       string
	Triangles  int
	Polylines  int
	Points     int
	LineLength float64
}

// Result contains measurements of a terrain document
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	ProjectedArea float64 // Area of the horizontal footprint of all triangles
	TriangleCount int
	PolylineCount int
	MinHeight     float64
	MaxHeight     float64
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Layers        []LayerStats
}

// Analyze measures every mesh and polyline of doc
func Analyze(doc *model.Document) *Result {
	result := &Result{
		BoundingBox:   doc.BoundingBox(),
		TriangleCount: doc.TriangleCount(),
		PolylineCount: len(doc.Polylines),
		Layers:        make([]LayerStats, len(doc.Layers)),
	}
	result.Dimensions = result.BoundingBox.Size()
	for i, layer := range doc.Layers {
		result.Layers[i].Name = layer.Name
	}

	minHeight, maxHeight := math.MaxFloat64, -math.MaxFloat64
	minLength, maxLength, totalLength := math.MaxFloat64, 0.0, 0.0

	for _, mesh := range doc.Meshes {
		stats := result.layer(mesh.Layer)
		for _, triangle := range mesh.Triangles {
			if stats != nil {
				stats.Triangles++
			}
			result.SurfaceArea += triangle.Area()
			result.ProjectedArea += flatten(triangle).Area()

			for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
				minHeight = math.Min(minHeight, v.Z)
				maxHeight = math.Max(maxHeight, v.Z)
			}

			for _, length := range triangle.EdgeLengths() {
				result.EdgeCount++
				totalLength += length
				minLength = math.Min(minLength, length)
				maxLength = math.Max(maxLength, length)
			}
		}
	}

	for _, line := range doc.Polylines {
		stats := result.layer(line.Layer)
		if stats == nil {
			continue
		}
		stats.Polylines++
		stats.Points += len(line.Points)
		for i := 0; i+1 < len(line.Points); i++ {
			stats.LineLength += line.Points[i].Distance(line.Points[i+1])
		}
	}

	if result.TriangleCount > 0 {
		result.MinHeight = minHeight
		result.MaxHeight = maxHeight
	}
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// Layer returns the statistics of the named layer
func (r *Result) Layer(name string) (LayerStats, bool) {
	for _, stats := range r.Layers {
		if stats.Name == name {
			return stats, true
		}
	}
	return LayerStats{}, false
}

func (r *Result) layer(index int) *LayerStats {
	if index < 0 || index >= len(r.Layers) {
		return nil
	}
	return &r.Layers[index]
}

func flatten(t geometry.Triangle) geometry.Triangle {
	return geometry.Triangle{V1: t.V1.WithZ(0), V2: t.V2.WithZ(0), V3: t.V3.WithZ(0)}
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
