package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/terrainpick/pkg/obj"
	"github.com/philipparndt/terrainpick/pkg/openscad"
	"github.com/philipparndt/terrainpick/pkg/stl"
)

// ErrUnsupportedFormat is returned for file extensions without a loader
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Load reads a model file, choosing the loader from the file extension.
// OpenSCAD sources are rendered to a temporary STL that is removed afterwards.
func Load(ctx context.Context, path string) (*Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		m, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		doc := FromSTL(m)
		doc.Sources = []string{path}
		return doc, nil

	case ".obj":
		m, err := obj.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse OBJ file: %w", err)
		}
		doc := FromOBJ(m)
		if doc.Name == "" {
			doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		doc.Sources = []string{path}
		return doc, nil

	case ".scad":
		return loadSCAD(ctx, path)

	default:
		return nil, fmt.Errorf("%w: %s (expected .stl, .obj or .scad)", ErrUnsupportedFormat, ext)
	}
}

func loadSCAD(ctx context.Context, path string) (*Document, error) {
	renderer := openscad.NewRenderer(filepath.Dir(path))

	tempFile := filepath.Join(os.TempDir(), fmt.Sprintf("terrainpick_%d.stl", time.Now().UnixNano()))
	defer os.Remove(tempFile)

	if err := renderer.RenderToSTL(ctx, filepath.Base(path), tempFile); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	m, err := stl.Parse(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}

	doc := FromSTL(m)
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	deps, err := renderer.ResolveDependencies(filepath.Base(path))
	if err != nil {
		deps = []string{path}
	}
	doc.Sources = deps
	return doc, nil
}

// FromSTL wraps an STL model as a single-layer document
func FromSTL(m *stl.Model) *Document {
	doc := &Document{Name: m.Name}
	layer := doc.LayerIndex("default")
	if len(m.Triangles) > 0 {
		doc.Meshes = append(doc.Meshes, Mesh{Name: m.Name, Layer: layer, Triangles: m.Triangles})
	}
	return doc
}

// FromOBJ maps OBJ groups to layers
func FromOBJ(m *obj.Model) *Document {
	doc := &Document{Name: m.Name}
	for _, group := range m.Groups {
		layer := doc.LayerIndex(group.Name)
		if len(group.Triangles) > 0 {
			doc.Meshes = append(doc.Meshes, Mesh{Name: group.Name, Layer: layer, Triangles: group.Triangles})
		}
		for _, points := range group.Polylines {
			doc.Polylines = append(doc.Polylines, Polyline{Layer: layer, Points: points})
		}
	}
	return doc
}
