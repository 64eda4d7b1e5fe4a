package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"softcube/internal/render"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

var (
	_ render.Surface = (*Canvas)(nil)
	_ render.Surface = (*GGCanvas)(nil)
)

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(16, 8)
	c.Clear(red)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, red, c.Image().RGBAAt(x, y))
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		c := NewCanvas(20, 20)
		c.Clear(black)
		c.DrawLine(2, 5, 12, 5, white)
		for x := 2; x <= 12; x++ {
			require.Equal(t, white, c.Image().RGBAAt(x, 5), "x=%d", x)
		}
		require.Equal(t, black, c.Image().RGBAAt(13, 5))
		require.Equal(t, black, c.Image().RGBAAt(7, 6))
	})

	t.Run("diagonal", func(t *testing.T) {
		c := NewCanvas(20, 20)
		c.DrawLine(0, 0, 9, 9, white)
		for i := 0; i <= 9; i++ {
			require.Equal(t, white, c.Image().RGBAAt(i, i))
		}
	})

	t.Run("single point", func(t *testing.T) {
		c := NewCanvas(4, 4)
		c.DrawLine(1, 2, 1, 2, white)
		require.Equal(t, white, c.Image().RGBAAt(1, 2))
	})

	t.Run("clipped", func(t *testing.T) {
		c := NewCanvas(10, 10)
		require.NotPanics(t, func() {
			c.DrawLine(-50, 5, 50, 5, white)
			c.DrawLine(-1e12, -1e12, 1e12, 1e12, white)
		})
		require.Equal(t, white, c.Image().RGBAAt(0, 5))
		require.Equal(t, white, c.Image().RGBAAt(9, 5))
	})
}

func TestCanvasDrawTriangle(t *testing.T) {
	t.Run("filled", func(t *testing.T) {
		c := NewCanvas(100, 100)
		c.Clear(black)
		c.DrawTriangle(10, 10, 90, 10, 50, 90, red, white, true)

		require.Equal(t, white, c.Image().RGBAAt(50, 40))
		require.Equal(t, black, c.Image().RGBAAt(5, 95))
	})

	t.Run("outline only", func(t *testing.T) {
		c := NewCanvas(100, 100)
		c.Clear(black)
		c.DrawTriangle(10, 10, 90, 10, 50, 90, red, white, false)

		require.Equal(t, black, c.Image().RGBAAt(50, 40))
		require.Equal(t, red, c.Image().RGBAAt(50, 10))
	})

	t.Run("non-finite is dropped", func(t *testing.T) {
		c := NewCanvas(32, 32)
		c.Clear(black)
		before := Digest(c.Image())
		require.NotPanics(t, func() {
			c.DrawTriangle(math.NaN(), 1, 2, 3, 4, 5, white, white, true)
			c.DrawTriangle(1, 1, math.Inf(1), 3, 4, 5, white, white, true)
			c.DrawLine(math.NaN(), 0, 5, 5, white)
		})
		require.Equal(t, before, Digest(c.Image()))
	})

	t.Run("far off surface", func(t *testing.T) {
		c := NewCanvas(32, 32)
		require.NotPanics(t, func() {
			c.DrawTriangle(-1e9, -1e9, 1e9, -1e9, 16, 1e9, white, white, true)
		})
		require.Equal(t, white, c.Image().RGBAAt(16, 16))
	})
}

func TestDigest(t *testing.T) {
	a := NewCanvas(8, 8)
	b := NewCanvas(8, 8)
	a.Clear(black)
	b.Clear(black)
	require.Equal(t, Digest(a.Image()), Digest(b.Image()))

	b.DrawLine(3, 3, 3, 3, white)
	require.NotEqual(t, Digest(a.Image()), Digest(b.Image()))

	t.Run("sub image", func(t *testing.T) {
		sub := a.Image().SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)
		whole := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for i := 0; i < len(whole.Pix); i += 4 {
			whole.Pix[i+3] = 255
		}
		require.Equal(t, Digest(whole), Digest(sub))
	})
}

func TestGGCanvas(t *testing.T) {
	c := NewGGCanvas(64, 64)
	defer func() { _ = c.Close() }()

	c.Clear(black)
	require.Equal(t, black, c.Image().RGBAAt(1, 1))

	c.DrawTriangle(4, 4, 60, 4, 32, 60, white, white, true)
	require.NoError(t, c.Err())
	require.Equal(t, white, c.Image().RGBAAt(32, 20))
	require.Equal(t, black, c.Image().RGBAAt(2, 62))

	require.NotPanics(t, func() {
		c.DrawTriangle(math.NaN(), 0, 1, 1, 2, 2, white, white, true)
	})
}
