package app

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/terrainpick/internal/interaction"
	"github.com/philipparndt/terrainpick/internal/picking"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// viewport returns the current drawable size, which changes on resize
func viewport() picking.Viewport {
	return picking.Viewport{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
}

// pointerRay returns the world ray under the mouse (or primary touch)
func (app *App) pointerRay(pos rl.Vector2) geometry.Ray {
	return picking.RayFromScreen(app.Scene.scene.Camera, float64(pos.X), float64(pos.Y), viewport())
}

// handleInput processes user input. All scene mutation happens here.
func (app *App) handleInput(ctx context.Context) {
	app.handleKeys(ctx)

	controller := app.Scene.controller
	gizmo := controller.Gizmo()
	pos := rl.GetMousePosition()
	ray := app.pointerRay(pos)

	// Hover feedback for gizmo handles
	if gizmo.Dragging() {
		app.Input.hoveredAxis = gizmo.Axis()
	} else {
		app.Input.hoveredAxis = gizmo.HandleAt(ray, app.gizmoSize())
	}

	// Raylib reports the primary touch point as the left mouse button
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Input.isPanning = shiftPressed

		if !shiftPressed && app.Input.hoveredAxis != interaction.AxisNone && gizmo.BeginDrag(app.Input.hoveredAxis, ray) {
			app.Input.pointer.Cancel()
		} else {
			app.Input.pointer.Press(float64(pos.X), float64(pos.Y))
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		switch {
		case gizmo.Dragging():
			gizmo.Drag(ray)
		case app.Input.isPanning:
			app.doPan(delta)
		case controller.OrbitEnabled():
			app.doOrbit(delta)
		}
		app.Input.pointer.Move(float64(pos.X), float64(pos.Y))
	}

	// Camera panning with middle mouse button drag works in any mode
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if gizmo.Dragging() {
			// Ending the drag triggers reprojection through the controller
			gizmo.EndDrag()
		} else if app.Input.pointer.Release(float64(pos.X), float64(pos.Y)) && !app.Input.isPanning {
			app.handleClick(pos)
		}
		app.Input.isPanning = false
	}
}

// handleClick forwards a click or tap to the interaction controller
func (app *App) handleClick(pos rl.Vector2) {
	result := app.Scene.controller.Click(float64(pos.X), float64(pos.Y), viewport())
	app.Input.lastOutcome = result
	app.Input.outcomeAt = time.Now()
	app.log.Debug("click handled", "outcome", result.Outcome, "mode", app.Scene.controller.Mode())
}

func (app *App) handleKeys(ctx context.Context) {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.frameTerrain()
	}

	if rl.IsKeyPressed(rl.KeyW) {
		app.Render.showWireframe = !app.Render.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.Render.showLines = !app.Render.showLines
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.startLoad(ctx)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.Scene.controller.Detach()
	}
}
