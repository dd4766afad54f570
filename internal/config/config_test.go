package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terrainpick.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "mesh.obj", cfg.Model)
	assert.Equal(t, 65.0, cfg.Camera.FOV)
	assert.Equal(t, [3]float64{100, 100, 100}, cfg.Camera.Position)
	assert.Equal(t, "dashed", cfg.Viewer.HighlightLayer)
	assert.Equal(t, 0.75, cfg.Viewer.TerrainOpacity)
	assert.Equal(t, 100.0, cfg.Interaction.CastHeight)
	assert.False(t, cfg.Interaction.LinesPickable)
	assert.Empty(t, cfg.Interaction.TerrainLayer)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
model = "site.obj"
watch = true

[viewer]
highlight_layer = "contour"
highlight_color = "#00ff0080"

[camera]
fov = 45.0
position = [0.0, -50.0, 80.0]

[interaction]
lines_pickable = true
terrain_layer = "ground"
cast_height = 500.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "site.obj", cfg.Model)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "contour", cfg.Viewer.HighlightLayer)
	assert.Equal(t, Color{0, 255, 0, 128}, cfg.Viewer.HighlightColor)
	assert.Equal(t, 45.0, cfg.Camera.FOV)
	assert.Equal(t, [3]float64{0, -50, 80}, cfg.Camera.Position)
	assert.True(t, cfg.Interaction.LinesPickable)
	assert.Equal(t, "ground", cfg.Interaction.TerrainLayer)
	assert.Equal(t, 500.0, cfg.Interaction.CastHeight)

	// Untouched values keep their defaults
	assert.Equal(t, 0.1, cfg.Camera.Near)
	assert.Equal(t, 0.75, cfg.Viewer.TerrainOpacity)
	assert.Equal(t, 1.0, cfg.Interaction.MarkerRadius)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "model = "},
		{"unknown key", "modle = \"x\""},
		{"bad color", "[viewer]\nbackground = \"white\""},
		{"invalid fov", "[camera]\nfov = 200.0"},
		{"invalid clip", "[camera]\nnear = 10.0\nfar = 1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Default().Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "highlight_color")
	assert.Contains(t, string(data), "#ff00ff")

	cfg, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestColorUnmarshal(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#102030")))
	assert.Equal(t, Color{0x10, 0x20, 0x30, 0xff}, c)

	require.NoError(t, c.UnmarshalText([]byte("10203040")))
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30, 0x40}, []uint8{r, g, b, a})

	assert.Error(t, c.UnmarshalText([]byte("#12")))
	assert.Error(t, c.UnmarshalText([]byte("#zzzzzz")))
}
