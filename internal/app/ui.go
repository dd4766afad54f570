package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/terrainpick/internal/interaction"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/version"
)

var (
	headingColor = rl.NewColor(40, 40, 40, 255)
	textColor    = rl.NewColor(70, 70, 70, 255)
	hintColor    = rl.NewColor(120, 120, 120, 255)
	accentColor  = rl.NewColor(200, 0, 200, 255)
)

// drawUI draws the HUD on top of the scene
func (app *App) drawUI(snap scene.Snapshot) {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	text := func(s string, size float32, color rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, color)
		y += lineHeight
	}

	// Loading indicator
	if app.Load.isLoading {
		elapsed := time.Since(app.Load.startTime).Seconds()
		spinnerChars := []string{"|", "/", "-", "\\"}
		spinnerIdx := int(elapsed*10) % len(spinnerChars)
		loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinnerChars[spinnerIdx], elapsed)

		boxWidth := float32(250)
		boxHeight := float32(40)
		boxX := float32(rl.GetScreenWidth()) - boxWidth - 20
		boxY := float32(20)

		rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 180))
		textSize := rl.MeasureTextEx(app.UI.font, loadingText, 18, 1)
		rl.DrawTextEx(app.UI.font, loadingText, rl.Vector2{X: boxX + (boxWidth-textSize.X)/2, Y: boxY + (boxHeight-textSize.Y)/2}, 18, 1, rl.Yellow)
	}

	// === MODEL ===
	text("Model:", fontSize16, headingColor)
	if doc, stats := app.Scene.document, app.Scene.stats; doc != nil && stats != nil {
		text(fmt.Sprintf("  Name: %s", doc.Name), fontSize14, textColor)
		text(fmt.Sprintf("  Triangles: %d | Lines: %d", stats.TriangleCount, stats.PolylineCount), fontSize14, textColor)
		text(fmt.Sprintf("  Size: %.1f × %.1f × %.1f", stats.Dimensions.X, stats.Dimensions.Y, stats.Dimensions.Z), fontSize14, textColor)
		text(fmt.Sprintf("  Height: %.2f to %.2f", stats.MinHeight, stats.MaxHeight), fontSize14, textColor)
	} else {
		text(fmt.Sprintf("  %s (not loaded)", app.Load.path), fontSize14, hintColor)
	}
	y += lineHeight

	// === SCENE ===
	markers := 0
	for _, obj := range snap.Objects {
		if obj.Kind == scene.KindMarker {
			markers++
		}
	}
	controller := app.Scene.controller
	text("Scene:", fontSize16, headingColor)
	text(fmt.Sprintf("  Mode: %s", controller.Mode()), fontSize14, accentColor)
	text(fmt.Sprintf("  Objects: %d | Markers: %d", len(snap.Objects), markers), fontSize14, textColor)
	if attached := controller.Attached(); attached != nil {
		p := attached.Position
		text(fmt.Sprintf("  Attached: %s at (%.2f, %.2f, %.2f)", attached.Kind, p.X, p.Y, p.Z), fontSize14, textColor)
	}
	if time.Since(app.Input.outcomeAt) < 3*time.Second {
		text(fmt.Sprintf("  Last click: %s", app.Input.lastOutcome.Outcome), fontSize14, hintColor)
	}
	y += lineHeight

	// === CONTROLS ===
	text("Controls:", fontSize16, headingColor)
	if controller.Mode() == interaction.ModeAttached {
		text("  Drag handle: Move | Click empty: Release", fontSize14, hintColor)
		text("  ESC: Release", fontSize14, hintColor)
	} else {
		text("  Click terrain: Place marker", fontSize14, hintColor)
		text("  Click object: Attach gizmo", fontSize14, hintColor)
		text("  Left Drag: Rotate | Shift+Drag: Pan", fontSize14, hintColor)
	}
	text("  Mouse Wheel: Zoom | Middle: Pan", fontSize14, hintColor)
	text("  Home: Reset | T: Top | 1-4: Sides | F: Frame", fontSize14, hintColor)
	text("  W: Wireframe | L: Lines | R: Reload", fontSize14, hintColor)

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, hintColor)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, hintColor)
}
