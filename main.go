// Command softcube spins a flat-shaded cube drawn by a software rasterizer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"runtime"

	"go.uber.org/zap"

	"softcube/internal/config"
	"softcube/internal/export"
	"softcube/internal/logging"
	"softcube/internal/raster"
	"softcube/internal/render"
	"softcube/internal/schedule"
	"softcube/internal/window"
)

const title = "softcube"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// target is a surface whose pixels can be read back.
type target interface {
	render.Surface
	Image() *image.RGBA
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		backend    = flag.String("backend", "", "glfw, ebiten or headless")
		surface    = flag.String("surface", "", "raster or gg")
		ticks      = flag.Uint64("ticks", 0, "stop a headless run after N ticks (0 = run forever)")
		exportDir  = flag.String("export", "", "write PNG frames to this directory and exit")
		frames     = flag.Uint64("frames", 0, "ticks to run when exporting")
		wireframe  = flag.Bool("wireframe", false, "draw triangle outlines only")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "surface":
			cfg.Surface = *surface
		case "ticks":
			cfg.Ticks = *ticks
		case "export":
			cfg.Export.Dir = *exportDir
		case "frames":
			cfg.Export.Frames = *frames
		case "wireframe":
			cfg.Wireframe = *wireframe
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	surf, closeSurface := newTarget(cfg)
	defer closeSurface()

	r := render.NewRenderer(
		render.NewState(cfg.Scene()),
		render.Cube(),
		surf,
		render.Options{
			AngleStep:  cfg.AngleStep,
			Background: cfg.BackgroundColor(),
			Wireframe:  cfg.Wireframe,
			Logger:     log.Named("render"),
		},
	)

	if cfg.Export.Dir != "" {
		_, err := export.Run(ctx, r, surf, export.Options{
			Dir:     cfg.Export.Dir,
			Frames:  cfg.Export.Frames,
			Every:   cfg.Export.Every,
			Workers: cfg.Export.Workers,
			Logger:  log.Named("export"),
		})
		return errors.Join(err, surfaceErr(surf))
	}

	log.Info("starting",
		zap.String("backend", cfg.Backend),
		zap.String("surface", cfg.Surface),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("fps", cfg.FPS),
	)

	err := newScheduler(cfg, surf, log).Run(ctx, func() { r.Tick() })
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	totals := r.Totals()
	log.Info("stopped",
		zap.Uint64("frames", totals.Frames),
		zap.Uint64("drawn", totals.Drawn),
		zap.Uint64("culled", totals.Culled),
		zap.Float64("angle", r.State().Angle),
		zap.String("digest", fmt.Sprintf("%016x", raster.Digest(surf.Image()))),
	)
	return errors.Join(err, surfaceErr(surf))
}

func newTarget(cfg config.Config) (target, func()) {
	if cfg.Surface == config.SurfaceGG {
		c := raster.NewGGCanvas(cfg.Width, cfg.Height)
		return c, func() { _ = c.Close() }
	}
	return raster.NewCanvas(cfg.Width, cfg.Height), func() {}
}

func surfaceErr(s target) error {
	if c, ok := s.(*raster.GGCanvas); ok {
		return c.Err()
	}
	return nil
}

func newScheduler(cfg config.Config, src window.Source, log *zap.Logger) schedule.Scheduler {
	switch cfg.Backend {
	case config.BackendHeadless:
		t := schedule.Every(cfg.FPS)
		t.Limit = cfg.Ticks
		return t
	case config.BackendEbiten:
		return &window.Ebiten{
			Title:         title,
			Width:         cfg.Width,
			Height:        cfg.Height,
			TicksPerFrame: cfg.TicksPerFrame,
			Source:        src,
			Logger:        log,
		}
	default:
		return &window.GLFW{
			Title:         title,
			Width:         cfg.Width,
			Height:        cfg.Height,
			TicksPerFrame: cfg.TicksPerFrame,
			Source:        src,
			Logger:        log,
		}
	}
}
