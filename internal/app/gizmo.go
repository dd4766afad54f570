package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/terrainpick/internal/interaction"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// gizmoScreenFraction keeps the gizmo a constant size on screen
const gizmoScreenFraction = 0.15

var axisColors = map[interaction.Axis]rl.Color{
	interaction.AxisX:  rl.Red,
	interaction.AxisY:  rl.Green,
	interaction.AxisZ:  rl.Blue,
	interaction.AxisXY: rl.NewColor(255, 200, 0, 120),
}

func gizmoSizeFor(camera scene.Camera, position geometry.Vector3) float64 {
	return camera.Position.Distance(position) * gizmoScreenFraction
}

// gizmoSize returns the handle length for the attached object, or 0
func (app *App) gizmoSize() float64 {
	target := app.Scene.controller.Attached()
	if target == nil {
		return 0
	}
	return gizmoSizeFor(*app.Scene.scene.Camera, target.Position)
}

// drawGizmo draws the translate handles on the attached object
func (app *App) drawGizmo(snap scene.Snapshot) {
	for _, obj := range snap.Objects {
		if !obj.Attached {
			continue
		}

		size := gizmoSizeFor(snap.Camera, obj.Position)
		center := toVec3(obj.Position)
		radius := float32(size * 0.02)

		rl.DisableDepthTest()
		for _, axis := range []interaction.Axis{interaction.AxisX, interaction.AxisY, interaction.AxisZ} {
			color := app.handleColor(axis)
			end := toVec3(obj.Position.Add(axis.Direction().Mul(size)))
			rl.DrawCylinderEx(center, end, radius, radius, 8, color)
			tip := toVec3(obj.Position.Add(axis.Direction().Mul(size * 1.15)))
			rl.DrawCylinderEx(end, tip, radius*3, 0, 12, color)
		}

		// Horizontal plane handle, drawn from both sides
		inner := size * interaction.PlaneHandleInner
		outer := size * interaction.PlaneHandleOuter
		corners := [4]rl.Vector3{
			toVec3(obj.Position.Add(geometry.NewVector3(inner, inner, 0))),
			toVec3(obj.Position.Add(geometry.NewVector3(outer, inner, 0))),
			toVec3(obj.Position.Add(geometry.NewVector3(outer, outer, 0))),
			toVec3(obj.Position.Add(geometry.NewVector3(inner, outer, 0))),
		}
		color := app.handleColor(interaction.AxisXY)
		rl.DrawTriangle3D(corners[0], corners[1], corners[2], color)
		rl.DrawTriangle3D(corners[0], corners[2], corners[3], color)
		rl.DrawTriangle3D(corners[0], corners[2], corners[1], color)
		rl.DrawTriangle3D(corners[0], corners[3], corners[2], color)
		rl.EnableDepthTest()
	}
}

func (app *App) handleColor(axis interaction.Axis) rl.Color {
	if axis == app.Input.hoveredAxis {
		return rl.Yellow
	}
	return axisColors[axis]
}

// drawOrientationAxes draws a small world axis indicator in the bottom-right
// corner that follows the camera rotation
func (app *App) drawOrientationAxes(camera scene.Camera) {
	length := float32(40)
	origin := rl.Vector2{
		X: float32(rl.GetScreenWidth()) - length - 30,
		Y: float32(rl.GetScreenHeight()) - length - 30,
	}
	view := camera.ViewMatrix()

	for _, axis := range []interaction.Axis{interaction.AxisX, interaction.AxisY, interaction.AxisZ} {
		d := axis.Direction()
		v := view.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
		end := rl.Vector2{X: origin.X + float32(v.X())*length, Y: origin.Y - float32(v.Y())*length}
		rl.DrawLineEx(origin, end, 2, axisColors[axis])
		rl.DrawTextEx(app.UI.font, axis.String(), rl.Vector2{X: end.X + 3, Y: end.Y - 7}, 14, 1, axisColors[axis])
	}
}
