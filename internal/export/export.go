// Package export renders frames offline and writes them as PNG files.
package export

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"softcube/internal/raster"
	"softcube/internal/render"
	"softcube/internal/schedule"
)

// Source exposes the pixels of the surface a renderer draws on.
type Source interface {
	Image() *image.RGBA
}

type Options struct {
	Dir string
	// Frames is the number of ticks to run.
	Frames uint64
	// Every writes one file per Every ticks.
	Every   uint64
	Workers int
	Logger  *zap.Logger
}

// Run ticks r Frames times and writes every Every-th frame of src to
// Dir/frame_NNNNN.png. Frames are rendered in order on the calling goroutine;
// only PNG encoding runs in parallel. It returns the written paths in frame
// order.
func Run(ctx context.Context, r *render.Renderer, src Source, opts Options) ([]string, error) {
	if opts.Every == 0 {
		opts.Every = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	paths := make([]string, 0, opts.Frames/opts.Every)
	var last uint64
	runErr := schedule.Steps{N: opts.Frames}.Run(gctx, func() {
		stats := r.Tick()
		if stats.Frame%opts.Every != 0 {
			return
		}
		frame := clone(src.Image())
		last = raster.Digest(frame)
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame_%05d.png", stats.Frame))
		paths = append(paths, path)

		g.Go(func() error {
			if err := writePNG(path, frame); err != nil {
				return err
			}
			log.Debug("frame written",
				zap.String("path", path),
				zap.Uint64("frame", stats.Frame),
				zap.Int("drawn", stats.Drawn),
			)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}

	log.Info("export finished",
		zap.String("dir", opts.Dir),
		zap.Int("files", len(paths)),
		zap.String("last_digest", fmt.Sprintf("%016x", last)),
	)
	return paths, nil
}

func clone(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close frame: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
