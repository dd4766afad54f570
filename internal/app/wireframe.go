package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

type edgeKey [2]geometry.Vector3

func newEdgeKey(a, b geometry.Vector3) edgeKey {
	// Shared edges are stored in either direction by neighbouring faces
	if a.X > b.X || (a.X == b.X && (a.Y > b.Y || (a.Y == b.Y && a.Z > b.Z))) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// drawWireframe outlines the terrain triangles, drawing shared edges once
func (app *App) drawWireframe(obj scene.ObjectView) {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	drawnEdges := make(map[edgeKey]bool, len(obj.Triangles)*2)

	for _, triangle := range obj.Triangles {
		t := triangle.Translate(obj.Position)
		for _, edge := range [3][2]geometry.Vector3{{t.V1, t.V2}, {t.V2, t.V3}, {t.V3, t.V1}} {
			key := newEdgeKey(edge[0], edge[1])
			if drawnEdges[key] {
				continue
			}
			drawnEdges[key] = true
			rl.DrawLine3D(toVec3(edge[0]), toVec3(edge[1]), wireframeColor)
		}
	}
}
