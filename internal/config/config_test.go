package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"softcube/internal/geom"
	"softcube/internal/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	require.Equal(t, render.DefaultParams(800, 600), cfg.Scene())
	require.Equal(t, color.RGBA{A: 255}, cfg.BackgroundColor())
	require.Equal(t, 0.0001, cfg.AngleStep)
	require.Equal(t, 1000, cfg.FPS)
}

func TestDecode(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(`
width: 320
height: 240
light: [0, 1, 0]
background: [10, 20, 30]
wireframe: true
surface: gg
backend: headless
ticks: 500
export:
  dir: out
  every: 5
log:
  level: debug
`))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		require.Equal(t, 320, cfg.Width)
		require.Equal(t, 240, cfg.Height)
		require.Equal(t, geom.Vec3{0, 1, 0}, cfg.Scene().Light)
		require.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, cfg.BackgroundColor())
		require.True(t, cfg.Wireframe)
		require.Equal(t, SurfaceGG, cfg.Surface)
		require.Equal(t, BackendHeadless, cfg.Backend)
		require.Equal(t, uint64(500), cfg.Ticks)
		require.Equal(t, "out", cfg.Export.Dir)
		require.Equal(t, uint64(5), cfg.Export.Every)
		require.Equal(t, uint64(100), cfg.Export.Frames)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "console", cfg.Log.Encoding)

		// Untouched fields keep their defaults.
		require.Equal(t, 90.0, cfg.FOV)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Decode(strings.NewReader("widht: 3\n"))
		require.Error(t, err)
	})

	t.Run("wrong light arity", func(t *testing.T) {
		_, err := Decode(strings.NewReader("light: [1, 2]\n"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 60\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 60, cfg.FPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"near past far", func(c *Config) { c.Near = 2000 }},
		{"zero near", func(c *Config) { c.Near = 0 }},
		{"zero fov", func(c *Config) { c.FOV = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative step", func(c *Config) { c.AngleStep = -1 }},
		{"zero light", func(c *Config) { c.Light = [3]float64{} }},
		{"unknown surface", func(c *Config) { c.Surface = "svg" }},
		{"unknown backend", func(c *Config) { c.Backend = "sdl" }},
		{"zero ticks per frame", func(c *Config) { c.TicksPerFrame = 0 }},
		{"export without frames", func(c *Config) { c.Export.Dir = "out"; c.Export.Frames = 0 }},
		{"export without workers", func(c *Config) { c.Export.Dir = "out"; c.Export.Workers = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := Default()
		cfg.Width = -1
		cfg.Backend = "sdl"
		err := cfg.Validate()
		require.ErrorContains(t, err, "size")
		require.ErrorContains(t, err, "sdl")
	})
}
