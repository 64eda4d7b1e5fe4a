package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubtract(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 0.5, 9}

	require.Equal(t, Vec3{5, 1.5, -6}, Subtract(a, b))

	ab := Subtract(a, b)
	ba := Subtract(b, a)
	for i := range ab {
		require.Equal(t, ab[i], -ba[i])
	}
}

func TestDotIsSymmetric(t *testing.T) {
	pairs := [][2]Vec3{
		{{1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {0, 0, 1}},
		{NormalizeUnit(Vec3{1, 2, 3}), NormalizeUnit(Vec3{-3, 1, 0.5})},
		{NormalizeUnit(Vec3{1, 1, 1}), NormalizeUnit(Vec3{1, -1, 1})},
	}
	for _, p := range pairs {
		require.Equal(t, Dot(p[0], p[1]), Dot(p[1], p[0]))
	}
	require.Equal(t, 32.0, Dot(Vec3{1, 2, 3}, Vec3{4, 5, 6}))
}

func TestSquaredMagnitude(t *testing.T) {
	require.Equal(t, 14.0, SquaredMagnitude(Vec3{1, 2, 3}))
	require.Equal(t, 0.0, SquaredMagnitude(Vec3{}))
}

func TestNormalize(t *testing.T) {
	t.Run("unit vector unchanged", func(t *testing.T) {
		require.Equal(t, Vec3{0, 0, -1}, Normalize(Vec3{0, 0, -1}))
	})

	t.Run("divides by squared magnitude", func(t *testing.T) {
		// |v|² = 4, so each component is divided by 4 rather than 2.
		require.Equal(t, Vec3{0, 0.5, 0}, Normalize(Vec3{0, 2, 0}))
		require.Equal(t, Vec3{0.2, 0.4, 0}, Normalize(Vec3{1, 2, 0}))
	})

	t.Run("zero vector is non-finite", func(t *testing.T) {
		require.NotPanics(t, func() {
			n := Normalize(Vec3{})
			for _, c := range n {
				require.True(t, math.IsNaN(c))
			}
		})
	})

	t.Run("unit variant", func(t *testing.T) {
		require.InDelta(t, 1.0, NormalizeUnit(Vec3{3, 4, 12}).Len(), 1e-12)
	})
}

func TestSurfaceNormal(t *testing.T) {
	a, b, c := Vec3{0, 0, 0}, Vec3{0, 1, 0}, Vec3{1, 1, 0}

	require.Equal(t, Vec3{0, 0, 1}, SurfaceNormal(a, b, c))

	t.Run("reversed winding flips the cull sign", func(t *testing.T) {
		view := Vec3{0.3, -0.2, -5}
		forward := Dot(SurfaceNormal(a, b, c), view)
		reversed := Dot(SurfaceNormal(c, b, a), view)
		require.Less(t, forward, 0.0)
		require.Greater(t, reversed, 0.0)
		require.InDelta(t, forward, -reversed, 1e-12)
	})

	t.Run("coincident vertices", func(t *testing.T) {
		require.NotPanics(t, func() {
			n := SurfaceNormal(a, a, c)
			require.True(t, math.IsNaN(n[0]) || n.Len() == 0)
		})
	})
}
