// Package geom holds the vector and matrix math of the cube renderer.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a point or direction in 3D space.
type Vec3 = mgl64.Vec3

// Subtract returns a - b componentwise.
func Subtract(a, b Vec3) Vec3 {
	return a.Sub(b)
}

// SquaredMagnitude returns the sum of the squared components of v.
func SquaredMagnitude(v Vec3) float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize scales v by the inverse of its squared magnitude.
//
// The result is unit length only when v already is; flat shading is tuned to
// this scaling. Use NormalizeUnit for a true unit vector.
// A zero vector yields NaN components.
func Normalize(v Vec3) Vec3 {
	s := SquaredMagnitude(v)
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// NormalizeUnit returns v scaled to unit length.
func NormalizeUnit(v Vec3) Vec3 {
	return v.Normalize()
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

// SurfaceNormal returns the normal of the triangle abc.
// The edges are taken as b-a and b-c, so the result depends on winding.
func SurfaceNormal(a, b, c Vec3) Vec3 {
	l1 := Subtract(b, a)
	l2 := Subtract(b, c)
	return Normalize(l1.Cross(l2))
}
