package app

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/philipparndt/terrainpick/internal/config"
	"github.com/philipparndt/terrainpick/internal/interaction"
	"github.com/philipparndt/terrainpick/internal/picking"
	"github.com/philipparndt/terrainpick/internal/scene"
	"github.com/philipparndt/terrainpick/pkg/analysis"
	"github.com/philipparndt/terrainpick/pkg/model"
	"github.com/philipparndt/terrainpick/pkg/watcher"
)

// SceneState is the authoritative interaction state. Input handlers mutate
// it; rendering only sees snapshots of it.
type SceneState struct {
	scene      *scene.Scene
	picker     *picking.Picker
	controller *interaction.Controller
	document   *model.Document
	stats      *analysis.Result
}

// InputState tracks the pointer gesture in progress
type InputState struct {
	pointer     *interaction.PointerTracker
	isPanning   bool
	hoveredAxis interaction.Axis
	lastOutcome interaction.Result
	outcomeAt   time.Time
}

// RenderState holds GPU resources. Only the main goroutine touches it.
type RenderState struct {
	meshes        map[uuid.UUID]rl.Mesh
	material      rl.Material
	showWireframe bool
	showLines     bool
}

// LoadState tracks background model loading and file watching
type LoadState struct {
	path        string
	results     chan loadResult
	reloads     chan string
	isLoading   bool
	pending     bool
	startTime   time.Time
	fileWatcher *watcher.FileWatcher
	watched     []string
}

// UIState holds HUD resources
type UIState struct {
	font rl.Font
}

type loadResult struct {
	doc     *model.Document
	err     error
	elapsed time.Duration
}

// App ties the state structs together for the lifetime of the window
type App struct {
	cfg    config.Config
	log    *slog.Logger
	Scene  SceneState
	Input  InputState
	Render RenderState
	Load   LoadState
	UI     UIState
}
