package render

import (
	"image/color"
	"math"

	"softcube/internal/geom"
)

// LightIntensity returns the flat shading intensity of a face with normal n
// under a directional light l. Faces lit from either side shade the same.
func LightIntensity(n, l geom.Vec3) float64 {
	return 255 * math.Abs(geom.Dot(n, l))
}

// Gray returns an opaque gray of the given intensity, clamped to [0, 255].
// NaN maps to black.
func Gray(intensity float64) color.RGBA {
	var v uint8
	switch {
	case intensity >= 255:
		v = 255
	case intensity > 0:
		v = uint8(math.Round(intensity))
	}
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
