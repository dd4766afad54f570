package interaction

import (
	"log/slog"

	"github.com/philipparndt/terrainpick/internal/picking"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// DefaultCastHeight is the height the downward snapping ray starts from
const DefaultCastHeight = 100.0

// Reprojector snaps objects onto the terrain surface below them
type Reprojector struct {
	scene      *scene.Scene
	picker     *picking.Picker
	castHeight float64
	log        *slog.Logger
}

// NewReprojector creates a reprojector. A cast height <= 0 uses
// DefaultCastHeight.
func NewReprojector(sc *scene.Scene, picker *picking.Picker, castHeight float64, logger *slog.Logger) *Reprojector {
	if castHeight <= 0 {
		castHeight = DefaultCastHeight
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reprojector{scene: sc, picker: picker, castHeight: castHeight, log: logger}
}

// Reproject casts a ray straight down through the object's horizontal
// position and moves the object to where it meets the terrain. On a miss the
// object keeps its position and false is returned.
func (r *Reprojector) Reproject(obj *scene.Object) bool {
	terrain := r.scene.Terrain()
	if terrain == nil {
		r.log.Warn("no terrain to reproject onto", "object", obj.ID)
		return false
	}

	// Start above the terrain even when it rises past the configured height
	height := r.castHeight
	if top := terrain.Bounds().Max.Z + 1; top > height {
		height = top
	}

	ray := geometry.NewRay(obj.Position.WithZ(height), geometry.NewVector3(0, 0, -1))
	hit, ok := picking.Nearest(r.picker.IntersectObject(ray, terrain))
	if !ok {
		r.log.Warn("no terrain below object, keeping position",
			"object", obj.ID, "x", obj.Position.X, "y", obj.Position.Y)
		return false
	}

	from := obj.Position
	obj.Position = obj.Position.WithZ(hit.Point.Z)
	r.log.Info("reprojected object onto terrain",
		"object", obj.ID, "from_z", from.Z, "to_z", obj.Position.Z)
	return true
}
