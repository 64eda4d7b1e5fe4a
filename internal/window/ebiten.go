package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Ebiten shows frames in an ebiten window updated at 60 ticks per second.
type Ebiten struct {
	Title         string
	Width, Height int
	TicksPerFrame int
	Source        Source
	Logger        *zap.Logger
}

// Run opens the window and blocks until it is closed or ctx is canceled.
func (e *Ebiten) Run(ctx context.Context, tick func()) error {
	if e.Logger != nil {
		e.Logger.Info("window opened", zap.String("backend", "ebiten"))
	}

	g := &game{
		ctx:   ctx,
		tick:  tick,
		ticks: e.TicksPerFrame,
		src:   e.Source,
		w:     e.Width,
		h:     e.Height,
	}
	ebiten.SetWindowTitle(e.Title)
	ebiten.SetWindowSize(e.Width, e.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	ctx   context.Context
	tick  func()
	ticks int
	src   Source
	w, h  int

	frame *ebiten.Image
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	for i := 0; i < g.ticks; i++ {
		g.tick()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.src.Image()
	b := img.Bounds()
	if g.frame == nil || g.frame.Bounds().Dx() != b.Dx() || g.frame.Bounds().Dy() != b.Dy() {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}
