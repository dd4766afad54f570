package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/analysis"
	"github.com/philipparndt/terrainpick/pkg/model"
	"github.com/philipparndt/terrainpick/pkg/watcher"
)

// setupFileWatcher watches the model file. The watched set is refreshed
// after each load, since OpenSCAD sources can pull in more files.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.cfg.WatchDebounce(), app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	app.Load.fileWatcher = fw
	if err := app.watchSources([]string{app.Load.path}); err != nil {
		fw.Close()
		app.Load.fileWatcher = nil
		return err
	}

	fw.Start()
	return nil
}

func (app *App) watchSources(sources []string) error {
	fw := app.Load.fileWatcher
	if fw == nil || slices.Equal(sources, app.Load.watched) {
		return nil
	}

	if err := fw.RemoveAll(); err != nil {
		return fmt.Errorf("failed to reset watched files: %w", err)
	}

	// Runs on a timer goroutine; the main loop picks the request up
	callback := func(changedFile string) {
		select {
		case app.Load.reloads <- changedFile:
		default:
		}
	}
	if err := fw.Watch(sources, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	app.Load.watched = sources
	app.log.Info("watching for changes", "files", len(sources))
	return nil
}

// pollReloads starts a reload when the watcher reported a change
func (app *App) pollReloads(ctx context.Context) {
	select {
	case changed := <-app.Load.reloads:
		app.log.Info("file changed", "path", changed)
		app.startLoad(ctx)
	default:
	}
}

// startLoad loads the model in the background. Scene state is only touched
// on the main goroutine once the result arrives.
func (app *App) startLoad(ctx context.Context) {
	if app.Load.isLoading {
		app.Load.pending = true
		return
	}

	app.Load.isLoading = true
	app.Load.startTime = time.Now()
	app.log.Info("loading model", "path", app.Load.path)

	path := app.Load.path
	go func() {
		start := time.Now()
		doc, err := model.Load(ctx, path)
		app.Load.results <- loadResult{doc: doc, err: err, elapsed: time.Since(start)}
	}()
}

// applyLoadedModel swaps in a finished load (must be called on main thread)
func (app *App) applyLoadedModel(ctx context.Context) {
	var result loadResult
	select {
	case result = <-app.Load.results:
	default:
		return
	}

	app.Load.isLoading = false
	defer func() {
		if app.Load.pending {
			app.Load.pending = false
			app.startLoad(ctx)
		}
	}()

	if result.err != nil {
		app.log.Error("failed to load model", "path", app.Load.path, "error", result.err)
		return
	}

	doc := result.doc
	objs, terrain := scene.FromDocument(doc, scene.LoadOptions{
		LinesPickable: app.cfg.Interaction.LinesPickable,
		TerrainLayer:  app.cfg.Interaction.TerrainLayer,
	})

	// Only markers survive a reload, so anything else attached goes away
	if attached := app.Scene.controller.Attached(); attached != nil && attached.Kind != scene.KindMarker {
		app.Scene.controller.Detach()
	}
	app.Scene.scene.ReplaceLoaded(objs, terrain)
	app.pruneMeshes()
	app.Scene.document = doc
	app.Scene.stats = analysis.Analyze(doc)

	if err := app.watchSources(doc.Sources); err != nil {
		app.log.Warn("failed to update watched files", "error", err)
	}

	app.log.Info("model loaded",
		"name", doc.Name,
		"triangles", doc.TriangleCount(),
		"lines", len(doc.Polylines),
		"elapsed", result.elapsed.Round(time.Millisecond))
}
