package interaction

import (
	"math"

	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// Axis is a gizmo handle
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisXY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisXY:
		return "xy"
	default:
		return "none"
	}
}

// Direction returns the unit vector of a single-axis handle
func (a Axis) Direction() geometry.Vector3 {
	switch a {
	case AxisX:
		return geometry.NewVector3(1, 0, 0)
	case AxisY:
		return geometry.NewVector3(0, 1, 0)
	case AxisZ:
		return geometry.Up
	default:
		return geometry.Vector3{}
	}
}

// Handle proportions relative to the gizmo size
const (
	HandlePickRadius = 0.08
	PlaneHandleInner = 0.15
	PlaneHandleOuter = 0.45
)

// Gizmo translates its target along one axis or across the horizontal plane.
// Pointer rays are projected onto a constraint plane through the target.
type Gizmo struct {
	target   *scene.Object
	axis     Axis
	dragging bool

	planePoint  geometry.Vector3
	planeNormal geometry.Vector3
	grab        geometry.Vector3
	start       geometry.Vector3

	listeners []func(dragging bool)
}

// NewGizmo creates an unattached gizmo
func NewGizmo() *Gizmo {
	return &Gizmo{}
}

// OnDraggingChanged registers fn to run whenever dragging starts or stops
func (g *Gizmo) OnDraggingChanged(fn func(dragging bool)) {
	g.listeners = append(g.listeners, fn)
}

// Attach binds the gizmo to obj
func (g *Gizmo) Attach(obj *scene.Object) {
	g.EndDrag()
	g.target = obj
}

// Detach unbinds the gizmo, ending any drag in progress first
func (g *Gizmo) Detach() {
	g.EndDrag()
	g.target = nil
}

// Target returns the bound object, or nil
func (g *Gizmo) Target() *scene.Object {
	return g.target
}

// Dragging reports whether a drag is in progress
func (g *Gizmo) Dragging() bool {
	return g.dragging
}

// Axis returns the handle being dragged, or AxisNone
func (g *Gizmo) Axis() Axis {
	return g.axis
}

// HandleAt returns the handle under ray for a gizmo drawn with the given size
func (g *Gizmo) HandleAt(ray geometry.Ray, size float64) Axis {
	if g.target == nil || size <= 0 {
		return AxisNone
	}
	center := g.target.Position

	if t, ok := ray.IntersectPlane(center, geometry.Up); ok {
		local := ray.At(t).Sub(center)
		if inRange(local.X, size) && inRange(local.Y, size) {
			return AxisXY
		}
	}

	best, bestT := AxisNone, math.MaxFloat64
	limit := (HandlePickRadius * size) * (HandlePickRadius * size)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		end := center.Add(axis.Direction().Mul(size))
		t, distSq := ray.ClosestToSegment(center, end)
		if distSq <= limit && t < bestT {
			best, bestT = axis, t
		}
	}
	return best
}

func inRange(v, size float64) bool {
	return v >= PlaneHandleInner*size && v <= PlaneHandleOuter*size
}

// BeginDrag starts dragging along axis. It fails when nothing is attached,
// a drag is already running, or the ray cannot reach the constraint plane.
func (g *Gizmo) BeginDrag(axis Axis, ray geometry.Ray) bool {
	if g.target == nil || g.dragging || axis == AxisNone {
		return false
	}

	normal := constraintNormal(axis, ray.Direction)
	t, ok := ray.IntersectPlane(g.target.Position, normal)
	if !ok {
		return false
	}

	g.axis = axis
	g.planePoint = g.target.Position
	g.planeNormal = normal
	g.grab = ray.At(t)
	g.start = g.target.Position
	g.setDragging(true)
	return true
}

// Drag moves the target to follow ray. Returns false when not dragging or
// the ray misses the constraint plane.
func (g *Gizmo) Drag(ray geometry.Ray) bool {
	if !g.dragging {
		return false
	}
	t, ok := ray.IntersectPlane(g.planePoint, g.planeNormal)
	if !ok {
		return false
	}

	delta := ray.At(t).Sub(g.grab)
	switch g.axis {
	case AxisX:
		delta = geometry.NewVector3(delta.X, 0, 0)
	case AxisY:
		delta = geometry.NewVector3(0, delta.Y, 0)
	case AxisZ:
		delta = geometry.NewVector3(0, 0, delta.Z)
	case AxisXY:
		delta = delta.WithZ(0)
	}
	g.target.Position = g.start.Add(delta)
	return true
}

// EndDrag finishes a drag. It is a no-op when not dragging.
func (g *Gizmo) EndDrag() {
	if !g.dragging {
		return
	}
	g.axis = AxisNone
	g.setDragging(false)
}

func (g *Gizmo) setDragging(dragging bool) {
	g.dragging = dragging
	for _, fn := range g.listeners {
		fn(dragging)
	}
}

// constraintNormal picks the plane through the handle that faces the viewer
// best. view is the pointer ray direction.
func constraintNormal(axis Axis, view geometry.Vector3) geometry.Vector3 {
	up := geometry.Up
	switch axis {
	case AxisX:
		return mostFacing(view, up, geometry.NewVector3(0, 1, 0))
	case AxisY:
		return mostFacing(view, up, geometry.NewVector3(1, 0, 0))
	case AxisZ:
		horizontal := view.Horizontal()
		if horizontal.LengthSquared() < 1e-12 {
			return geometry.NewVector3(1, 0, 0)
		}
		return horizontal.Normalize()
	default:
		return up
	}
}

func mostFacing(view, a, b geometry.Vector3) geometry.Vector3 {
	if math.Abs(view.Dot(a)) >= math.Abs(view.Dot(b)) {
		return a
	}
	return b
}
