package app

import (
	"maps"
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/terrainpick/internal/config"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

func toVec3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toColor(c config.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(r, g, b, a)
}

// drawScene draws markers first, then loaded meshes, and the translucent
// terrain last so everything else shows through it
func (app *App) drawScene(snap scene.Snapshot) {
	for _, obj := range snap.Objects {
		switch obj.Kind {
		case scene.KindLine:
			if app.Render.showLines {
				app.drawLine(obj)
			}
		case scene.KindMarker:
			rl.DrawMesh(app.meshFor(obj), app.Render.material, translation(obj))
		}
	}

	for _, obj := range snap.Objects {
		if obj.Kind == scene.KindMesh && !obj.Terrain {
			app.drawLoadedMesh(obj)
		}
	}
	for _, obj := range snap.Objects {
		if obj.Terrain {
			app.drawLoadedMesh(obj)
		}
	}
}

func translation(obj scene.ObjectView) rl.Matrix {
	return rl.MatrixTranslate(float32(obj.Position.X), float32(obj.Position.Y), float32(obj.Position.Z))
}

// drawLoadedMesh draws a mesh from the model file with both faces
func (app *App) drawLoadedMesh(obj scene.ObjectView) {
	// Model files do not agree on winding
	rl.DisableBackfaceCulling()
	rl.DrawMesh(app.meshFor(obj), app.Render.material, translation(obj))
	rl.EnableBackfaceCulling()

	if app.Render.showWireframe {
		app.drawWireframe(obj)
	}
}

// drawLine draws a polyline in its layer color
func (app *App) drawLine(obj scene.ObjectView) {
	color := toColor(app.cfg.Viewer.LineColor)
	if obj.Layer == app.cfg.Viewer.HighlightLayer {
		color = toColor(app.cfg.Viewer.HighlightColor)
	}
	for i := 0; i+1 < len(obj.Points); i++ {
		rl.DrawLine3D(toVec3(obj.Points[i].Add(obj.Position)), toVec3(obj.Points[i+1].Add(obj.Position)), color)
	}
}

// meshFor returns the GPU mesh of an object, uploading it on first use.
// Object geometry never changes, so meshes are cached by ID.
func (app *App) meshFor(obj scene.ObjectView) rl.Mesh {
	if mesh, ok := app.Render.meshes[obj.ID]; ok {
		return mesh
	}

	var mesh rl.Mesh
	if obj.Kind == scene.KindMesh {
		base := toColor(app.cfg.Viewer.TerrainColor)
		base.A = uint8(math.Round(app.cfg.Viewer.TerrainOpacity * float64(base.A)))
		mesh = buildMesh(obj.Triangles, func(t geometry.Triangle) rl.Color {
			return shadedColor(base, t.CalculateNormal())
		})
	} else {
		mesh = buildMesh(obj.Triangles, func(t geometry.Triangle) rl.Color {
			return normalColor(t.CalculateNormal())
		})
	}
	app.Render.meshes[obj.ID] = mesh
	return mesh
}

// pruneMeshes releases meshes of objects that left the scene
func (app *App) pruneMeshes() {
	ids := slices.Collect(maps.Keys(app.Render.meshes))
	for _, id := range app.Scene.scene.Stale(ids) {
		mesh := app.Render.meshes[id]
		rl.UnloadMesh(&mesh)
		delete(app.Render.meshes, id)
	}
}

func (app *App) unloadMeshes() {
	for id, mesh := range app.Render.meshes {
		rl.UnloadMesh(&mesh)
		delete(app.Render.meshes, id)
	}
}

// lightDir is the direction of the baked light, coming from above
var lightDir = geometry.NewVector3(-0.5, -0.5, -1.0).Normalize()

// shadedColor applies baked diffuse lighting to base. Both faces are lit.
func shadedColor(base rl.Color, normal geometry.Vector3) rl.Color {
	intensity := math.Max(0.55, math.Abs(normal.Dot(lightDir)))
	return rl.NewColor(
		uint8(float64(base.R)*intensity),
		uint8(float64(base.G)*intensity),
		uint8(float64(base.B)*intensity),
		base.A,
	)
}

// normalColor maps a unit normal to RGB, giving faceted markers
func normalColor(normal geometry.Vector3) rl.Color {
	channel := func(v float64) uint8 {
		return uint8(math.Round((v*0.5 + 0.5) * 255))
	}
	return rl.NewColor(channel(normal.X), channel(normal.Y), channel(normal.Z), 255)
}

// buildMesh converts triangles to a Raylib mesh with per-face vertex colors
func buildMesh(triangles []geometry.Triangle, colorOf func(geometry.Triangle) rl.Color) rl.Mesh {
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	for _, triangle := range triangles {
		normal := triangle.CalculateNormal()
		color := colorOf(triangle)
		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
			colors = append(colors, color.R, color.G, color.B, color.A)
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}
