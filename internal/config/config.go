// Package config loads viewer settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the complete viewer configuration
type Config struct {
	Model           string            `toml:"model"`
	Watch           bool              `toml:"watch"`
	WatchDebounceMs int               `toml:"watch_debounce_ms"`
	Viewer          ViewerConfig      `toml:"viewer"`
	Camera          CameraConfig      `toml:"camera"`
	Interaction     InteractionConfig `toml:"interaction"`
}

// ViewerConfig controls the window and colors
type ViewerConfig struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	HighlightLayer string  `toml:"highlight_layer"`
	TerrainOpacity float64 `toml:"terrain_opacity"`
	Background     Color   `toml:"background"`
	TerrainColor   Color   `toml:"terrain_color"`
	HighlightColor Color   `toml:"highlight_color"`
	LineColor      Color   `toml:"line_color"`
}

// CameraConfig is the initial perspective camera
type CameraConfig struct {
	FOV      float64    `toml:"fov"`
	Near     float64    `toml:"near"`
	Far      float64    `toml:"far"`
	Position [3]float64 `toml:"position"`
	Target   [3]float64 `toml:"target"`
}

// InteractionConfig tunes picking and dragging
type InteractionConfig struct {
	MarkerRadius   float64 `toml:"marker_radius"`
	CastHeight     float64 `toml:"cast_height"`
	LineThreshold  float64 `toml:"line_threshold"`
	LinesPickable  bool    `toml:"lines_pickable"`
	ClickTolerance float64 `toml:"click_tolerance"`
	// TerrainLayer picks the terrain mesh by layer; empty means the last mesh
	TerrainLayer string `toml:"terrain_layer"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Model:           "mesh.obj",
		WatchDebounceMs: 500,
		Viewer: ViewerConfig{
			Width:          1400,
			Height:         900,
			HighlightLayer: "dashed",
			TerrainOpacity: 0.75,
			Background:     Color{255, 255, 255, 255},
			TerrainColor:   Color{255, 255, 255, 255},
			HighlightColor: Color{255, 0, 255, 255},
			LineColor:      Color{0, 0, 0, 255},
		},
		Camera: CameraConfig{
			FOV:      65,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{100, 100, 100},
		},
		Interaction: InteractionConfig{
			MarkerRadius:   1,
			CastHeight:     100,
			LineThreshold:  1,
			ClickTolerance: 5,
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders cfg as TOML
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	var errs []error
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range [%v, %v] is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Viewer.TerrainOpacity < 0 || c.Viewer.TerrainOpacity > 1 {
		errs = append(errs, fmt.Errorf("viewer.terrain_opacity must be in [0, 1], got %v", c.Viewer.TerrainOpacity))
	}
	if c.Interaction.MarkerRadius <= 0 {
		errs = append(errs, fmt.Errorf("interaction.marker_radius must be positive, got %v", c.Interaction.MarkerRadius))
	}
	if c.WatchDebounceMs < 0 {
		errs = append(errs, fmt.Errorf("watch_debounce_ms must not be negative, got %v", c.WatchDebounceMs))
	}
	return errors.Join(errs...)
}

// WatchDebounce returns the debounce delay for file watching
func (c Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}
