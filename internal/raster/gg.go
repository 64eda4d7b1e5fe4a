package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
)

// GGCanvas draws through a gg context. Edges are anti-aliased.
type GGCanvas struct {
	dc  *gg.Context
	img *image.RGBA
	err error
}

// NewGGCanvas returns a width x height gg canvas.
func NewGGCanvas(width, height int) *GGCanvas {
	return &GGCanvas{
		dc:  gg.NewContext(width, height),
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Err returns the first error reported by gg, if any.
func (c *GGCanvas) Err() error { return c.err }

// Close releases the gg context.
func (c *GGCanvas) Close() error { return c.dc.Close() }

// Image copies the current frame into an RGBA image owned by the canvas.
func (c *GGCanvas) Image() *image.RGBA {
	draw.Draw(c.img, c.img.Bounds(), c.dc.Image(), image.Point{}, draw.Src)
	return c.img
}

func (c *GGCanvas) Clear(col color.RGBA) {
	c.dc.ClearWithColor(toGG(col))
}

func (c *GGCanvas) DrawLine(x1, y1, x2, y2 float64, col color.RGBA) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	c.setColor(col)
	c.dc.SetLineWidth(1)
	c.dc.DrawLine(clamp(x1), clamp(y1), clamp(x2), clamp(y2))
	c.check(c.dc.Stroke())
}

func (c *GGCanvas) DrawTriangle(x1, y1, x2, y2, x3, y3 float64, outline, fill color.RGBA, filled bool) {
	if !finite(x1, y1, x2, y2, x3, y3) {
		return
	}
	c.dc.MoveTo(clamp(x1), clamp(y1))
	c.dc.LineTo(clamp(x2), clamp(y2))
	c.dc.LineTo(clamp(x3), clamp(y3))
	c.dc.ClosePath()

	c.setColor(outline)
	c.dc.SetLineWidth(1)
	if !filled {
		c.check(c.dc.Stroke())
		return
	}
	c.check(c.dc.StrokePreserve())
	c.setColor(fill)
	c.check(c.dc.Fill())
}

func (c *GGCanvas) setColor(col color.RGBA) {
	v := toGG(col)
	c.dc.SetRGBA(v.R, v.G, v.B, v.A)
}

func (c *GGCanvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func toGG(col color.RGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
		A: float64(col.A) / 255,
	}
}
