// Package config loads renderer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"softcube/internal/geom"
	"softcube/internal/render"
	"softcube/internal/schedule"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Backends.
const (
	BackendGLFW     = "glfw"
	BackendEbiten   = "ebiten"
	BackendHeadless = "headless"
)

// Surfaces.
const (
	SurfaceRaster = "raster"
	SurfaceGG     = "gg"
)

type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FOV    float64 `yaml:"fov"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`

	FPS       int     `yaml:"fps"`
	AngleStep float64 `yaml:"angle_step"`

	Camera     [3]float64 `yaml:"camera"`
	Light      [3]float64 `yaml:"light"`
	Background [3]uint8   `yaml:"background"`
	Wireframe  bool       `yaml:"wireframe"`

	Surface string `yaml:"surface"`
	Backend string `yaml:"backend"`
	// Ticks stops a headless run after that many ticks; zero runs forever.
	Ticks uint64 `yaml:"ticks"`
	// TicksPerFrame is how many ticks a window backend runs per presented
	// frame.
	TicksPerFrame int `yaml:"ticks_per_frame"`

	Export Export `yaml:"export"`
	Log    Log    `yaml:"log"`
}

// Export writes rendered frames as PNG files.
type Export struct {
	Dir     string `yaml:"dir"`
	Frames  uint64 `yaml:"frames"`
	Every   uint64 `yaml:"every"`
	Workers int    `yaml:"workers"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the reference setup: an 800x600 window spinning the cube
// at 1000 ticks per second.
func Default() Config {
	return Config{
		Width:         800,
		Height:        600,
		FOV:           render.DefaultFOV,
		Near:          render.DefaultNear,
		Far:           render.DefaultFar,
		FPS:           schedule.DefaultFPS,
		AngleStep:     render.DefaultAngleStep,
		Light:         [3]float64{0, 0, -1},
		Surface:       SurfaceRaster,
		Backend:       BackendGLFW,
		TicksPerFrame: 16,
		Export: Export{
			Frames:  100,
			Every:   1,
			Workers: 4,
		},
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem found in c.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Width <= 0 || c.Height <= 0 {
		add("size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Near <= 0 || c.Near >= c.Far {
		add("need 0 < near < far, got near=%v far=%v", c.Near, c.Far)
	}
	if c.FOV <= 0 {
		add("fov must be positive, got %v", c.FOV)
	}
	if c.FPS <= 0 {
		add("fps must be positive, got %d", c.FPS)
	}
	if c.AngleStep < 0 {
		add("angle_step must not be negative, got %v", c.AngleStep)
	}
	if c.Light == [3]float64{} {
		add("light direction must be non-zero")
	}
	switch c.Surface {
	case SurfaceRaster, SurfaceGG:
	default:
		add("unknown surface %q", c.Surface)
	}
	switch c.Backend {
	case BackendGLFW, BackendEbiten, BackendHeadless:
	default:
		add("unknown backend %q", c.Backend)
	}
	if c.TicksPerFrame <= 0 {
		add("ticks_per_frame must be positive, got %d", c.TicksPerFrame)
	}
	if c.Export.Dir != "" {
		if c.Export.Frames == 0 || c.Export.Every == 0 {
			add("export needs frames and every > 0")
		}
		if c.Export.Workers <= 0 {
			add("export workers must be positive, got %d", c.Export.Workers)
		}
	}
	return errors.Join(errs...)
}

// Scene returns the fixed scene parameters.
func (c Config) Scene() render.Params {
	return render.Params{
		Width:  c.Width,
		Height: c.Height,
		FOV:    c.FOV,
		Near:   c.Near,
		Far:    c.Far,
		Camera: geom.Vec3(c.Camera),
		Light:  geom.Vec3(c.Light),
	}
}

// BackgroundColor returns the opaque clear color.
func (c Config) BackgroundColor() color.RGBA {
	return color.RGBA{R: c.Background[0], G: c.Background[1], B: c.Background[2], A: 255}
}
