// Package raster implements render.Surface on in-memory images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// guard bounds how far off-surface a coordinate may reach before it is
// clamped. It keeps line stepping and scanline fills bounded.
const guard = 1 << 16

// Canvas draws into an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas returns a black width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is overwritten by later draws.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawLine draws a line from (x1, y1) to (x2, y2) with a DDA walk.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col color.RGBA) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	x1, y1, x2, y2 = clamp(x1), clamp(y1), clamp(x2), clamp(y2)

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		c.set(int(x1), int(y1), col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := x1
	y := y1
	for i := 0; i <= int(steps); i++ {
		c.set(int(math.Floor(x)), int(math.Floor(y)), col)
		x += xInc
		y += yInc
	}
}

// DrawTriangle fills and outlines a triangle. Triangles with non-finite
// vertices are dropped.
func (c *Canvas) DrawTriangle(x1, y1, x2, y2, x3, y3 float64, outline, fill color.RGBA, filled bool) {
	if !finite(x1, y1, x2, y2, x3, y3) {
		return
	}
	c.DrawLine(x1, y1, x2, y2, outline)
	c.DrawLine(x2, y2, x3, y3, outline)
	c.DrawLine(x3, y3, x1, y1, outline)
	if !filled {
		return
	}

	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(float32(clamp(x1)), float32(clamp(y1)))
	c.z.LineTo(float32(clamp(x2)), float32(clamp(y2)))
	c.z.LineTo(float32(clamp(x3)), float32(clamp(y3)))
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(fill), image.Point{})
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	offset := c.img.PixOffset(x, y)
	c.img.Pix[offset] = col.R
	c.img.Pix[offset+1] = col.G
	c.img.Pix[offset+2] = col.B
	c.img.Pix[offset+3] = col.A
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp(v float64) float64 {
	return max(-guard, min(guard, v))
}
