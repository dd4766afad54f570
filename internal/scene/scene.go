// Package scene owns the authoritative set of objects, the camera, and the
// single terrain surface used for marker placement and height snapping.
package scene

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/philipparndt/terrainpick/pkg/geometry"
	"github.com/philipparndt/terrainpick/pkg/model"
)

// Scene holds every object in insertion order. At most one object is the
// terrain at any time.
type Scene struct {
	Camera *Camera

	objects []*Object
	terrain *Object
}

// New creates an empty scene viewed through camera
func New(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

// Add appends an object
func (s *Scene) Add(obj *Object) {
	s.objects = append(s.objects, obj)
}

// Objects returns all objects in insertion order
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Len returns the number of objects
func (s *Scene) Len() int {
	return len(s.objects)
}

// Pickables returns the objects the ray picker may hit
func (s *Scene) Pickables() []*Object {
	pickables := make([]*Object, 0, len(s.objects))
	for _, obj := range s.objects {
		if obj.Pickable {
			pickables = append(pickables, obj)
		}
	}
	return pickables
}

// Markers returns the placed markers
func (s *Scene) Markers() []*Object {
	var markers []*Object
	for _, obj := range s.objects {
		if obj.Kind == KindMarker {
			markers = append(markers, obj)
		}
	}
	return markers
}

// Terrain returns the terrain surface, or nil before a model is loaded
func (s *Scene) Terrain() *Object {
	return s.terrain
}

// IsTerrain reports whether obj is the terrain surface
func (s *Scene) IsTerrain(obj *Object) bool {
	return obj != nil && obj == s.terrain
}

// SetTerrain designates obj as the terrain, adding it when it is not in the
// scene yet. The previous terrain, if any, loses the designation.
func (s *Scene) SetTerrain(obj *Object) {
	if obj != nil && s.find(obj.ID) == nil {
		s.Add(obj)
	}
	s.terrain = obj
}

// ReplaceLoaded swaps out everything that came from a model file (meshes and
// lines) for objs, keeping placed markers. terrain must be one of objs or nil.
func (s *Scene) ReplaceLoaded(objs []*Object, terrain *Object) {
	kept := make([]*Object, 0, len(objs)+len(s.objects))
	kept = append(kept, objs...)
	for _, obj := range s.objects {
		if obj.Kind == KindMarker {
			kept = append(kept, obj)
		}
	}
	s.objects = kept
	s.terrain = nil
	s.SetTerrain(terrain)
}

// Stale returns the ids that no longer belong to an object in the scene
func (s *Scene) Stale(ids []uuid.UUID) []uuid.UUID {
	live := make(map[uuid.UUID]bool, len(s.objects))
	for _, obj := range s.objects {
		live[obj.ID] = true
	}
	var stale []uuid.UUID
	for _, id := range ids {
		if !live[id] {
			stale = append(stale, id)
		}
	}
	return stale
}

func (s *Scene) find(id uuid.UUID) *Object {
	for _, obj := range s.objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}

// LoadOptions controls how a document becomes scene objects
type LoadOptions struct {
	LinesPickable bool
	// TerrainLayer selects the terrain mesh by layer name. When empty or not
	// found, the last mesh is the terrain.
	TerrainLayer string
}

// FromDocument builds scene objects from a loaded model. One mesh becomes the
// terrain surface; the other meshes become draggable objects anchored at the
// bottom center of their footprint, and each polyline becomes a line object.
func FromDocument(doc *model.Document, opts LoadOptions) (objs []*Object, terrain *Object) {
	terrainIndex := terrainMesh(doc, opts.TerrainLayer)
	for i, mesh := range doc.Meshes {
		layer := doc.LayerName(mesh.Layer)
		if i == terrainIndex {
			name := mesh.Name
			if name == "" {
				name = doc.Name
			}
			terrain = NewMesh(name, layer, mesh.Triangles)
			objs = append(objs, terrain)
			continue
		}
		objs = append(objs, newAnchoredMesh(mesh.Name, layer, mesh.Triangles))
	}
	for i, line := range doc.Polylines {
		obj := NewLine(lineName(doc, i), doc.LayerName(line.Layer), line.Points)
		obj.Pickable = opts.LinesPickable
		objs = append(objs, obj)
	}
	return objs, terrain
}

// terrainMesh returns the index of the terrain mesh, or -1 without meshes
func terrainMesh(doc *model.Document, layer string) int {
	if layer != "" {
		for i := len(doc.Meshes) - 1; i >= 0; i-- {
			if doc.LayerName(doc.Meshes[i].Layer) == layer {
				return i
			}
		}
	}
	return len(doc.Meshes) - 1
}

// newAnchoredMesh moves the geometry so the object's position is the bottom
// center of its bounds. Reprojection then rests the base on the terrain.
func newAnchoredMesh(name, layer string, triangles []geometry.Triangle) *Object {
	bounds := geometry.NewBoundingBox()
	for _, t := range triangles {
		bounds.Extend(t.V1)
		bounds.Extend(t.V2)
		bounds.Extend(t.V3)
	}
	anchor := bounds.Center().WithZ(bounds.Min.Z)

	local := make([]geometry.Triangle, len(triangles))
	offset := anchor.Mul(-1)
	for i, t := range triangles {
		local[i] = t.Translate(offset)
	}

	obj := NewMesh(name, layer, local)
	obj.Position = anchor
	return obj
}

func lineName(doc *model.Document, index int) string {
	return doc.LayerName(doc.Polylines[index].Layer) + "#" + strconv.Itoa(index)
}

// ObjectView is a read-only copy of an object's state for one frame
type ObjectView struct {
	ID       uuid.UUID
	Kind     Kind
	Layer    string
	Position geometry.Vector3
	Terrain  bool
	Attached bool

	// Shared with the object; geometry is immutable after construction
	Triangles []geometry.Triangle
	Points    []geometry.Vector3
}

// Snapshot is what the render loop reads each frame
type Snapshot struct {
	Camera  Camera
	Objects []ObjectView
}

// Snapshot copies the current state. attached marks the object bound to the
// gizmo, if any.
func (s *Scene) Snapshot(attached *Object) Snapshot {
	snap := Snapshot{Objects: make([]ObjectView, 0, len(s.objects))}
	if s.Camera != nil {
		snap.Camera = *s.Camera
	}
	for _, obj := range s.objects {
		snap.Objects = append(snap.Objects, ObjectView{
			ID:        obj.ID,
			Kind:      obj.Kind,
			Layer:     obj.Layer,
			Position:  obj.Position,
			Terrain:   obj == s.terrain,
			Attached:  obj == attached,
			Triangles: obj.triangles,
			Points:    obj.points,
		})
	}
	return snap
}
