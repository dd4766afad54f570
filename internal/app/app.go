// Package app runs the raylib viewer window around the interaction core.
package app

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/philipparndt/terrainpick/internal/config"
	"github.com/philipparndt/terrainpick/internal/interaction"
	"github.com/philipparndt/terrainpick/internal/picking"
	"github.com/philipparndt/terrainpick/internal/scene"
	"golang.org/x/image/font/gofont/gomono"
)

// Options configures a viewer run
type Options struct {
	Config config.Config
	Logger *slog.Logger
}

// New builds the application state without opening a window
func New(opts Options) *App {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sc := scene.New(newCamera(cfg.Camera))
	picker := picking.NewPicker(cfg.Interaction.LineThreshold)
	reprojector := interaction.NewReprojector(sc, picker, cfg.Interaction.CastHeight, logger)
	controller := interaction.NewController(sc, picker, reprojector, interaction.Options{
		MarkerRadius: cfg.Interaction.MarkerRadius,
	}, logger)

	return &App{
		cfg: cfg,
		log: logger,
		Scene: SceneState{
			scene:      sc,
			picker:     picker,
			controller: controller,
		},
		Input: InputState{
			pointer: interaction.NewPointerTracker(cfg.Interaction.ClickTolerance),
		},
		Render: RenderState{
			meshes:    make(map[uuid.UUID]rl.Mesh),
			showLines: true,
		},
		Load: LoadState{
			path:    cfg.Model,
			results: make(chan loadResult, 1),
			reloads: make(chan string, 1),
		},
	}
}

// Run opens the window and blocks until it is closed
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := New(opts)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(app.cfg.Viewer.Width), int32(app.cfg.Viewer.Height), "terrainpick")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Escape detaches the gizmo instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	app.UI.font = rl.LoadFontFromMemory(".ttf", gomono.TTF, 48, hudRunes())
	defer rl.UnloadFont(app.UI.font)
	app.Render.material = rl.LoadMaterialDefault()
	defer app.unloadMeshes()

	if app.cfg.Watch {
		if err := app.setupFileWatcher(); err != nil {
			app.log.Warn("auto-reload not available", "error", err)
		} else {
			defer app.Load.fileWatcher.Close()
		}
	}

	app.startLoad(ctx)

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}
		if ctx.Err() != nil {
			break
		}

		app.pollReloads(ctx)
		app.applyLoadedModel(ctx)

		app.handleInput(ctx)

		snap := app.Scene.scene.Snapshot(app.Scene.controller.Attached())
		app.draw(snap)
	}

	return nil
}

// draw renders one frame from a snapshot
func (app *App) draw(snap scene.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(app.cfg.Viewer.Background))

	rl.BeginMode3D(toRaylibCamera(snap.Camera))
	app.drawScene(snap)
	app.drawGizmo(snap)
	rl.EndMode3D()

	app.drawOrientationAxes(snap.Camera)
	app.drawUI(snap)

	rl.EndDrawing()
}

func hudRunes() []rune {
	runes := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, '°', '×')
}
