package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/terrainpick/internal/config"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

const (
	orbitSpeed = 0.01
	zoomSpeed  = 0.1
)

func newCamera(cfg config.CameraConfig) *scene.Camera {
	return scene.NewCamera(
		geometry.NewVector3(cfg.Position[0], cfg.Position[1], cfg.Position[2]),
		geometry.NewVector3(cfg.Target[0], cfg.Target[1], cfg.Target[2]),
		cfg.FOV, cfg.Near, cfg.Far,
	)
}

// toRaylibCamera converts the scene camera for drawing
func toRaylibCamera(c scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVec3(c.Position),
		Target:     toVec3(c.Target),
		Up:         toVec3(c.Up),
		Fovy:       float32(c.FOV),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView restores the configured camera
func (app *App) resetCameraView() {
	*app.Scene.scene.Camera = *newCamera(app.cfg.Camera)
}

// setCameraTopView looks straight down
func (app *App) setCameraTopView() {
	app.Scene.scene.Camera.SetView(-math.Pi/2, math.Pi/2)
}

// setCameraFrontView looks from -Y towards +Y
func (app *App) setCameraFrontView() {
	app.Scene.scene.Camera.SetView(-math.Pi/2, 0.3)
}

// setCameraBackView looks from +Y towards -Y
func (app *App) setCameraBackView() {
	app.Scene.scene.Camera.SetView(math.Pi/2, 0.3)
}

// setCameraLeftView looks from -X towards +X
func (app *App) setCameraLeftView() {
	app.Scene.scene.Camera.SetView(math.Pi, 0.3)
}

// setCameraRightView looks from +X towards -X
func (app *App) setCameraRightView() {
	app.Scene.scene.Camera.SetView(0, 0.3)
}

// frameTerrain fits the terrain into view
func (app *App) frameTerrain() {
	if terrain := app.Scene.scene.Terrain(); terrain != nil {
		app.Scene.scene.Camera.Frame(terrain.Bounds())
	}
}

// doOrbit rotates the camera by a mouse delta
func (app *App) doOrbit(delta rl.Vector2) {
	app.Scene.scene.Camera.Orbit(-float64(delta.X)*orbitSpeed, float64(delta.Y)*orbitSpeed)
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	app.Scene.scene.Camera.Pan(float64(delta.X), float64(delta.Y))
}

// doZoom zooms towards the target on wheel movement
func (app *App) doZoom(wheel float32) {
	app.Scene.scene.Camera.Zoom(-float64(wheel) * zoomSpeed)
}
