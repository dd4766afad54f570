package analysis

import (
	"fmt"
	"io"

	"github.com/philipparndt/terrainpick/pkg/model"
)

// WriteReport prints a human readable summary of doc
func WriteReport(w io.Writer, filename string, doc *model.Document, result *Result) error {
	p := &printer{w: w}

	p.println("Terrain Information")
	p.println("===================")
	if doc.Name != "" {
		p.printf("Name: %s\n", doc.Name)
	}
	p.printf("File: %s\n\n", filename)

	p.println("Model Statistics:")
	p.printf("  Triangles: %d\n", result.TriangleCount)
	p.printf("  Polylines: %d\n", result.PolylineCount)
	p.printf("  Surface Area: %s\n", FormatMeasurement(result.SurfaceArea, "square units"))
	p.printf("  Footprint Area: %s\n\n", FormatMeasurement(result.ProjectedArea, "square units"))

	p.println("Bounding Box:")
	p.printf("  Min: %s\n", FormatVector(result.BoundingBox.Min))
	p.printf("  Max: %s\n", FormatVector(result.BoundingBox.Max))
	p.printf("  Size: %s\n\n", FormatVector(result.Dimensions))

	p.println("Height:")
	p.printf("  Minimum: %s\n", FormatMeasurement(result.MinHeight, ""))
	p.printf("  Maximum: %s\n\n", FormatMeasurement(result.MaxHeight, ""))

	p.println("Edge Lengths:")
	p.printf("  Minimum: %s\n", FormatMeasurement(result.MinEdgeLength, ""))
	p.printf("  Maximum: %s\n", FormatMeasurement(result.MaxEdgeLength, ""))
	p.printf("  Average: %s\n\n", FormatMeasurement(result.AvgEdgeLength, ""))

	p.println("Layers:")
	for _, layer := range result.Layers {
		p.printf("  %-16s %6d triangles %4d lines %8.2f line length\n",
			layer.Name, layer.Triangles, layer.Polylines, layer.LineLength)
	}
	return p.err
}

// printer remembers the first write error so the report reads linearly
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}
