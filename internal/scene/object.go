package scene

import (
	"github.com/google/uuid"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// Kind classifies what an object is and how it is drawn
type Kind int

const (
	KindMesh Kind = iota
	KindMarker
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindMarker:
		return "marker"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Object is an entity in the scene. Geometry is stored in local space and is
// never modified after construction; Position translates it into the world.
type Object struct {
	ID       uuid.UUID
	Name     string
	Kind     Kind
	Layer    string
	Position geometry.Vector3
	Pickable bool

	triangles []geometry.Triangle
	points    []geometry.Vector3
	bounds    geometry.BoundingBox
}

// NewMesh creates a pickable triangle mesh at the origin
func NewMesh(name, layer string, triangles []geometry.Triangle) *Object {
	obj := &Object{
		ID:        uuid.New(),
		Name:      name,
		Kind:      KindMesh,
		Layer:     layer,
		Pickable:  true,
		triangles: triangles,
		bounds:    geometry.NewBoundingBox(),
	}
	for _, t := range triangles {
		obj.bounds.Extend(t.V1)
		obj.bounds.Extend(t.V2)
		obj.bounds.Extend(t.V3)
	}
	return obj
}

// NewMarker creates an icosahedron marker centered on position
func NewMarker(position geometry.Vector3, radius float64) *Object {
	obj := NewMesh("marker", "", geometry.Icosahedron(radius))
	obj.Kind = KindMarker
	obj.Position = position
	return obj
}

// NewLine creates a polyline. Lines are decorative unless made pickable.
func NewLine(name, layer string, points []geometry.Vector3) *Object {
	obj := &Object{
		ID:     uuid.New(),
		Name:   name,
		Kind:   KindLine,
		Layer:  layer,
		points: points,
		bounds: geometry.NewBoundingBox(),
	}
	for _, p := range points {
		obj.bounds.Extend(p)
	}
	return obj
}

// Triangles returns the local-space triangles. Callers must not modify them.
func (o *Object) Triangles() []geometry.Triangle {
	return o.triangles
}

// Points returns the local-space polyline points. Callers must not modify them.
func (o *Object) Points() []geometry.Vector3 {
	return o.points
}

// LocalBounds returns the bounding box of the untranslated geometry
func (o *Object) LocalBounds() geometry.BoundingBox {
	return o.bounds
}

// Bounds returns the world-space bounding box
func (o *Object) Bounds() geometry.BoundingBox {
	return o.bounds.Translate(o.Position)
}
