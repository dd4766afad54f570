package scene

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/philipparndt/terrainpick/pkg/geometry"
	"github.com/philipparndt/terrainpick/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatSquare(size, z float64) []geometry.Triangle {
	a := geometry.NewVector3(-size, -size, z)
	b := geometry.NewVector3(size, -size, z)
	c := geometry.NewVector3(size, size, z)
	d := geometry.NewVector3(-size, size, z)
	up := geometry.NewVector3(0, 0, 1)
	return []geometry.Triangle{
		geometry.NewTriangle(up, a, b, c),
		geometry.NewTriangle(up, a, c, d),
	}
}

func TestSetTerrainSingleDesignation(t *testing.T) {
	s := New(nil)
	first := NewMesh("a", "terrain", flatSquare(10, 0))
	second := NewMesh("b", "terrain", flatSquare(10, 5))

	s.SetTerrain(first)
	assert.True(t, s.IsTerrain(first))
	assert.Equal(t, 1, s.Len())

	s.SetTerrain(second)
	assert.False(t, s.IsTerrain(first))
	assert.True(t, s.IsTerrain(second))
	assert.Same(t, second, s.Terrain())
	assert.Equal(t, 2, s.Len())

	// Re-designating an object already in the scene does not duplicate it
	s.SetTerrain(first)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.IsTerrain(nil))
}

func TestPickablesSkipsDecorativeLines(t *testing.T) {
	s := New(nil)
	s.SetTerrain(NewMesh("t", "terrain", flatSquare(10, 0)))
	s.Add(NewLine("l", "dashed", []geometry.Vector3{{X: 0}, {X: 1}}))
	s.Add(NewMarker(geometry.NewVector3(1, 2, 3), 1))

	assert.Equal(t, 3, s.Len())
	assert.Len(t, s.Pickables(), 2)
	require.Len(t, s.Markers(), 1)
	assert.Equal(t, KindMarker, s.Markers()[0].Kind)
}

func TestReplaceLoadedKeepsMarkers(t *testing.T) {
	s := New(nil)
	s.SetTerrain(NewMesh("old", "terrain", flatSquare(10, 0)))
	s.Add(NewLine("l", "dashed", []geometry.Vector3{{X: 0}, {X: 1}}))
	marker := NewMarker(geometry.NewVector3(1, 1, 0), 1)
	s.Add(marker)

	terrain := NewMesh("new", "terrain", flatSquare(20, 2))
	s.ReplaceLoaded([]*Object{terrain}, terrain)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, terrain, s.Terrain())
	assert.Equal(t, []*Object{marker}, s.Markers())
}

func TestStaleAfterReload(t *testing.T) {
	s := New(nil)
	old := NewMesh("old", "terrain", flatSquare(10, 0))
	s.SetTerrain(old)
	var lines []*Object
	for i := 0; i < 5; i++ {
		line := NewLine("l", "dashed", []geometry.Vector3{{X: 0}, {X: 1}})
		lines = append(lines, line)
		s.Add(line)
	}
	marker := NewMarker(geometry.NewVector3(1, 1, 0), 1)
	s.Add(marker)

	// Only meshes are cached for drawing, so the cache is smaller than the scene
	cached := []uuid.UUID{old.ID, marker.ID}
	assert.Empty(t, s.Stale(cached))

	terrain := NewMesh("new", "terrain", flatSquare(20, 2))
	s.ReplaceLoaded(append([]*Object{terrain}, lines...), terrain)

	assert.Equal(t, []uuid.UUID{old.ID}, s.Stale(cached))
}

func TestObjectBoundsFollowPosition(t *testing.T) {
	marker := NewMarker(geometry.NewVector3(10, 20, 5), 1)
	bounds := marker.Bounds()

	assert.InDelta(t, 10, bounds.Center().X, 1e-9)
	assert.InDelta(t, 20, bounds.Center().Y, 1e-9)
	assert.InDelta(t, 5, bounds.Center().Z, 1e-9)

	// Icosahedron vertices sit on the unit sphere but none at the poles
	phi := (1 + math.Sqrt(5)) / 2
	assert.InDelta(t, 2*phi/math.Sqrt(1+phi*phi), bounds.Size().Z, 1e-9)
	for _, tri := range marker.Triangles() {
		for _, v := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			assert.InDelta(t, 1, v.Length(), 1e-9)
		}
	}
}

func TestFromDocument(t *testing.T) {
	doc := &model.Document{Name: "site"}
	rockLayer := doc.LayerIndex("rocks")
	terrainLayer := doc.LayerIndex("terrain")
	dashedLayer := doc.LayerIndex("dashed")
	doc.Meshes = []model.Mesh{
		{Name: "rock", Layer: rockLayer, Triangles: flatSquare(2, 10)},
		{Name: "ground", Layer: terrainLayer, Triangles: flatSquare(5, 0)},
	}
	doc.Polylines = []model.Polyline{
		{Layer: dashedLayer, Points: []geometry.Vector3{{X: 0}, {X: 1}}},
	}

	objs, terrain := FromDocument(doc, LoadOptions{})
	require.Len(t, objs, 3)
	require.NotNil(t, terrain)
	assert.Same(t, objs[1], terrain, "the last mesh is the terrain")
	assert.Equal(t, "ground", terrain.Name)
	assert.Equal(t, "terrain", terrain.Layer)
	assert.Equal(t, geometry.Vector3{}, terrain.Position)

	rock := objs[0]
	assert.Equal(t, KindMesh, rock.Kind)
	assert.True(t, rock.Pickable)
	assert.Equal(t, "rocks", rock.Layer)
	assert.Equal(t, geometry.NewVector3(0, 0, 10), rock.Position, "anchored at its bottom center")
	assert.InDelta(t, 10, rock.Bounds().Min.Z, 1e-9)
	assert.InDelta(t, 0, rock.LocalBounds().Min.Z, 1e-9)

	line := objs[2]
	assert.Equal(t, KindLine, line.Kind)
	assert.Equal(t, "dashed", line.Layer)
	assert.Equal(t, "dashed#0", line.Name)
	assert.False(t, line.Pickable)

	objs, _ = FromDocument(doc, LoadOptions{LinesPickable: true})
	assert.True(t, objs[2].Pickable)
}

func TestFromDocumentTerrainLayer(t *testing.T) {
	doc := &model.Document{Name: "site"}
	terrainLayer := doc.LayerIndex("terrain")
	rockLayer := doc.LayerIndex("rocks")
	doc.Meshes = []model.Mesh{
		{Name: "ground", Layer: terrainLayer, Triangles: flatSquare(5, 0)},
		{Name: "rock", Layer: rockLayer, Triangles: flatSquare(2, 10)},
	}

	tests := []struct {
		name     string
		layer    string
		expected string
	}{
		{"named layer", "terrain", "ground"},
		{"unknown layer falls back to last mesh", "missing", "rock"},
		{"empty layer uses last mesh", "", "rock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objs, terrain := FromDocument(doc, LoadOptions{TerrainLayer: tt.layer})
			require.NotNil(t, terrain)
			assert.Equal(t, tt.expected, terrain.Name)
			assert.Len(t, objs, 2)
		})
	}
}

func TestFromDocumentWithoutMeshes(t *testing.T) {
	objs, terrain := FromDocument(&model.Document{}, LoadOptions{})
	assert.Empty(t, objs)
	assert.Nil(t, terrain)
}

func TestSnapshot(t *testing.T) {
	cam := NewCamera(geometry.NewVector3(100, 100, 100), geometry.Vector3{}, 65, 0.1, 1000)
	s := New(cam)
	terrain := NewMesh("t", "terrain", flatSquare(10, 0))
	s.SetTerrain(terrain)
	marker := NewMarker(geometry.NewVector3(1, 2, 3), 1)
	s.Add(marker)

	snap := s.Snapshot(marker)
	require.Len(t, snap.Objects, 2)
	assert.True(t, snap.Objects[0].Terrain)
	assert.False(t, snap.Objects[0].Attached)
	assert.True(t, snap.Objects[1].Attached)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), snap.Objects[1].Position)

	// The snapshot is detached from later mutation
	marker.Position = geometry.Vector3{}
	cam.Zoom(1)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), snap.Objects[1].Position)
	assert.Equal(t, geometry.NewVector3(100, 100, 100), snap.Camera.Position)
}
