// Package render turns the cube mesh into draw calls, one frame per tick.
package render

import (
	"image/color"

	"go.uber.org/zap"

	"softcube/internal/geom"
)

// Options tune a Renderer.
type Options struct {
	// AngleStep is added to the angle on every tick, in degrees.
	AngleStep  float64
	Background color.RGBA
	// Wireframe draws triangle outlines instead of filled faces.
	Wireframe bool
	Logger    *zap.Logger
}

// FrameStats describes one drawn frame.
type FrameStats struct {
	Frame  uint64
	Angle  float64
	Drawn  int
	Culled int
}

// Totals accumulate FrameStats over the life of a Renderer.
type Totals struct {
	Frames uint64
	Drawn  uint64
	Culled uint64
}

// Renderer owns the frame loop of a single mesh.
type Renderer struct {
	state   *State
	mesh    Mesh
	surface Surface
	opts    Options
	log     *zap.Logger

	totals Totals
}

// NewRenderer returns a renderer drawing mesh onto surface. The mesh is
// copied.
func NewRenderer(state *State, mesh Mesh, surface Surface, opts Options) *Renderer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := make(Mesh, len(mesh))
	copy(m, mesh)
	return &Renderer{
		state:   state,
		mesh:    m,
		surface: surface,
		opts:    opts,
		log:     log,
	}
}

// State returns the renderer's state.
func (r *Renderer) State() *State { return r.state }

// Totals returns the stats accumulated so far.
func (r *Renderer) Totals() Totals { return r.totals }

// Tick runs one frame: clear, advance the angle, draw.
func (r *Renderer) Tick() FrameStats {
	r.surface.Clear(r.opts.Background)
	r.state.Angle += r.opts.AngleStep
	return r.Draw()
}

// Draw draws the mesh at the current angle without clearing the surface.
func (r *Renderer) Draw() FrameStats {
	s := r.state
	stats := FrameStats{Frame: r.totals.Frames + 1, Angle: s.Angle}

	for _, tri := range r.mesh {
		p1 := geom.ApplyRotation(tri[0], s.Angle)
		p2 := geom.ApplyRotation(tri[1], s.Angle)
		p3 := geom.ApplyRotation(tri[2], s.Angle)

		n := geom.SurfaceNormal(p1, p2, p3)
		view := geom.Subtract(s.Camera, p1)
		if geom.Dot(n, view) >= 0 {
			stats.Culled++
			continue
		}

		c := Gray(LightIntensity(n, s.Light))

		x1, y1 := s.Viewport.Offset(geom.ApplyMat4(p1, s.Projection))
		x2, y2 := s.Viewport.Offset(geom.ApplyMat4(p2, s.Projection))
		x3, y3 := s.Viewport.Offset(geom.ApplyMat4(p3, s.Projection))

		r.surface.DrawTriangle(x1, y1, x2, y2, x3, y3, c, c, !r.opts.Wireframe)
		stats.Drawn++
	}

	r.totals.Frames++
	r.totals.Drawn += uint64(stats.Drawn)
	r.totals.Culled += uint64(stats.Culled)

	if ce := r.log.Check(zap.DebugLevel, "frame"); ce != nil {
		ce.Write(
			zap.Uint64("frame", stats.Frame),
			zap.Float64("angle", stats.Angle),
			zap.Int("drawn", stats.Drawn),
			zap.Int("culled", stats.Culled),
		)
	}
	return stats
}
