package models

import (
	"fmt"
	"strings"

	"github.com/taigrr/tumble/pkg/math3d"
)

// Shape selects one of the built-in meshes.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeTetrahedron1
	ShapeTetrahedron2
	ShapeOctahedron
)

var shapeNames = [...]string{
	ShapeCube:         "cube",
	ShapeTetrahedron1: "tetrahedron1",
	ShapeTetrahedron2: "tetrahedron2",
	ShapeOctahedron:   "octahedron",
}

// Shapes returns every built-in shape in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeCube, ShapeTetrahedron1, ShapeTetrahedron2, ShapeOctahedron}
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape returns the shape with the given (case-insensitive) name.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q (want one of %s)", name, strings.Join(shapeNames[:], ", "))
}

// Mesh builds the mesh for the shape. Unknown shapes yield a cube.
func (s Shape) Mesh() *Mesh {
	switch s {
	case ShapeTetrahedron1:
		return Tetrahedron1()
	case ShapeTetrahedron2:
		return Tetrahedron2()
	case ShapeOctahedron:
		return Octahedron()
	default:
		return Cube()
	}
}

// Cube returns a cube with corners at ±1.
func Cube() *Mesh {
	return MustMesh("cube",
		[]math3d.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		[]Face{
			MustFace(0, 1, 2, 3), // back
			MustFace(4, 5, 6, 7), // front
			MustFace(0, 1, 5, 4), // bottom
			MustFace(2, 3, 7, 6), // top
			MustFace(0, 3, 7, 4), // left
			MustFace(1, 2, 6, 5), // right
		},
	)
}

// Tetrahedron1 returns a regular tetrahedron inscribed in the ±1 cube.
func Tetrahedron1() *Mesh {
	return MustMesh("tetrahedron1",
		[]math3d.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		tetrahedronFaces(),
	)
}

// Tetrahedron2 returns the tetrahedron on the other four cube corners.
func Tetrahedron2() *Mesh {
	return MustMesh("tetrahedron2",
		[]math3d.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: -1},
		},
		tetrahedronFaces(),
	)
}

func tetrahedronFaces() []Face {
	return []Face{
		MustFace(0, 1, 2),
		MustFace(0, 1, 3),
		MustFace(0, 2, 3),
		MustFace(1, 2, 3),
	}
}

// Octahedron returns an octahedron with vertices on the unit axes.
func Octahedron() *Mesh {
	return MustMesh("octahedron",
		[]math3d.Vec3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: -1, Y: 0, Z: 0},
			{X: 0, Y: -1, Z: 0},
			{X: 0, Y: 0, Z: -1},
		},
		[]Face{
			MustFace(0, 1, 2),
			MustFace(1, 3, 2),
			MustFace(3, 4, 2),
			MustFace(4, 0, 2),
			MustFace(0, 1, 5),
			MustFace(1, 3, 5),
			MustFace(3, 4, 5),
			MustFace(4, 0, 5),
		},
	)
}
