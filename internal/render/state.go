package render

import "softcube/internal/geom"

// Reference scene parameters.
const (
	DefaultFOV       = 90.0
	DefaultNear      = 0.1
	DefaultFar       = 1000.0
	DefaultAngleStep = 0.0001
)

// Params describe the fixed parts of a scene.
type Params struct {
	Width, Height int
	FOV           float64 // degrees
	Near, Far     float64
	Camera        geom.Vec3
	Light         geom.Vec3
}

// DefaultParams returns the reference scene for a width x height surface:
// camera at the origin and light shining along -Z.
func DefaultParams(width, height int) Params {
	return Params{
		Width:  width,
		Height: height,
		FOV:    DefaultFOV,
		Near:   DefaultNear,
		Far:    DefaultFar,
		Light:  geom.Vec3{0, 0, -1},
	}
}

// State is everything a frame reads. Only Angle changes after NewState.
type State struct {
	// Angle grows by a fixed step every tick and is never wrapped.
	Angle float64

	Camera     geom.Vec3
	Light      geom.Vec3
	Projection geom.Mat4
	Viewport   geom.Viewport
}

// NewState derives the projection and viewport from p and normalizes the
// light direction.
func NewState(p Params) *State {
	aspect := float64(p.Width) / float64(p.Height)
	return &State{
		Camera:     p.Camera,
		Light:      geom.NormalizeUnit(p.Light),
		Projection: geom.BuildProjection(p.FOV, aspect, p.Near, p.Far),
		Viewport:   geom.NewViewport(p.Width, p.Height),
	}
}
