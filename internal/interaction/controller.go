package interaction

import (
	"log/slog"

	"github.com/philipparndt/terrainpick/internal/picking"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// DefaultMarkerRadius is the circumradius of placed markers
const DefaultMarkerRadius = 1.0

// Result is the effect of a click
type Result struct {
	Outcome Outcome
	Object  *scene.Object
	Point   geometry.Vector3
}

// Options configures a Controller
type Options struct {
	MarkerRadius float64
}

// Controller decides what a click does based on the current mode and what
// the pointer ray hits.
type Controller struct {
	scene       *scene.Scene
	picker      *picking.Picker
	gizmo       *Gizmo
	reprojector *Reprojector
	mode        Mode
	opts        Options
	log         *slog.Logger
}

// NewController creates a controller in Idle mode with its own gizmo
func NewController(sc *scene.Scene, picker *picking.Picker, reprojector *Reprojector, opts Options, logger *slog.Logger) *Controller {
	if opts.MarkerRadius <= 0 {
		opts.MarkerRadius = DefaultMarkerRadius
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		scene:       sc,
		picker:      picker,
		gizmo:       NewGizmo(),
		reprojector: reprojector,
		opts:        opts,
		log:         logger,
	}
	c.gizmo.OnDraggingChanged(c.draggingChanged)
	return c
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// OrbitEnabled reports whether the camera may orbit
func (c *Controller) OrbitEnabled() bool {
	return c.mode == ModeIdle
}

// Attached returns the object bound to the gizmo, or nil
func (c *Controller) Attached() *scene.Object {
	return c.gizmo.Target()
}

// Gizmo returns the controller's gizmo
func (c *Controller) Gizmo() *Gizmo {
	return c.gizmo
}

// Click handles a click at a pixel position
func (c *Controller) Click(x, y float64, viewport picking.Viewport) Result {
	c.log.Debug("click", "x", x, "y", y, "mode", c.mode)
	return c.ClickRay(picking.RayFromScreen(c.scene.Camera, x, y, viewport))
}

// ClickRay handles a click whose pointer ray is already known
func (c *Controller) ClickRay(ray geometry.Ray) Result {
	hit, ok := picking.Nearest(c.picker.Intersect(ray, c.scene.Pickables()))

	if c.mode == ModeAttached {
		if ok {
			return Result{Outcome: OutcomeIgnored, Object: hit.Object, Point: hit.Point}
		}
		obj := c.gizmo.Target()
		c.Detach()
		return Result{Outcome: OutcomeDetached, Object: obj}
	}

	if !ok {
		return Result{Outcome: OutcomeMissed}
	}

	if c.scene.IsTerrain(hit.Object) {
		marker := scene.NewMarker(hit.Point, c.opts.MarkerRadius)
		c.scene.Add(marker)
		c.log.Info("placed marker", "id", marker.ID,
			"x", hit.Point.X, "y", hit.Point.Y, "z", hit.Point.Z)
		return Result{Outcome: OutcomeMarkerPlaced, Object: marker, Point: hit.Point}
	}

	c.gizmo.Attach(hit.Object)
	c.mode = ModeAttached
	c.log.Info("attached gizmo", "id", hit.Object.ID, "kind", hit.Object.Kind)
	return Result{Outcome: OutcomeAttached, Object: hit.Object, Point: hit.Point}
}

// Detach unbinds the gizmo and returns to Idle. Calling it while Idle does
// nothing.
func (c *Controller) Detach() {
	if c.mode != ModeAttached {
		return
	}
	obj := c.gizmo.Target()
	// Detach ends a running drag, which still reprojects while Attached
	c.gizmo.Detach()
	c.mode = ModeIdle
	c.log.Info("detached gizmo", "id", obj.ID)
}

// draggingChanged is registered once on the gizmo and lives as long as the
// controller.
func (c *Controller) draggingChanged(dragging bool) {
	if c.mode != ModeAttached {
		return
	}
	target := c.gizmo.Target()
	if dragging {
		c.log.Debug("drag started", "id", target.ID, "axis", c.gizmo.Axis())
		return
	}
	if c.reprojector != nil {
		c.reprojector.Reproject(target)
	}
}
