package render

import "image/color"

// Surface is a 2D drawing target in pixel space, origin top-left, Y down.
type Surface interface {
	// Clear fills the whole surface.
	Clear(c color.RGBA)
	DrawLine(x1, y1, x2, y2 float64, c color.RGBA)
	// DrawTriangle fills the triangle with fill and strokes it with outline.
	// When filled is false only the outline is drawn.
	DrawTriangle(x1, y1, x2, y2, x3, y3 float64, outline, fill color.RGBA, filled bool)
}
