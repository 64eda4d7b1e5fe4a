package render

import "softcube/internal/geom"

// Triangle is three object-space vertices.
type Triangle [3]geom.Vec3

// Mesh is an ordered list of triangles.
type Mesh []Triangle

// cube is a unit cube with corners at 0 and 1 on every axis. The winding of
// each triangle decides which side survives culling.
var cube = [12]Triangle{
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, {{0, 0, 0}, {1, 1, 0}, {1, 0, 0}}, // z = 0
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, {{1, 0, 0}, {1, 1, 1}, {1, 0, 1}}, // x = 1
	{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, {{1, 0, 1}, {0, 1, 1}, {0, 0, 1}}, // z = 1
	{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, {{0, 0, 1}, {0, 1, 0}, {0, 0, 0}}, // x = 0
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}}, {{0, 1, 0}, {1, 1, 1}, {1, 1, 0}}, // y = 1
	{{1, 0, 1}, {0, 0, 1}, {0, 0, 0}}, {{1, 0, 1}, {0, 0, 0}, {1, 0, 0}}, // y = 0
}

// Cube returns a copy of the unit cube mesh.
func Cube() Mesh {
	m := make(Mesh, len(cube))
	copy(m, cube[:])
	return m
}
