package render

import (
	"github.com/taigrr/tumble/pkg/math3d"
)

// Default projection parameters.
const (
	DefaultFocal    = 3.0 // Focal scale factor
	DefaultDistance = 5.0 // Camera offset added to z
)

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Camera is a fixed pinhole looking down the Z axis from Distance units away.
type Camera struct {
	Focal    float64
	Distance float64
}

// NewCamera creates a camera with the default projection parameters.
func NewCamera() *Camera {
	return &Camera{
		Focal:    DefaultFocal,
		Distance: DefaultDistance,
	}
}

// SetDistance moves the camera along Z.
func (c *Camera) SetDistance(d float64) {
	c.Distance = d
}

// Project maps a rotated vertex to a screen cell. The fractional part is
// dropped toward zero. A vertex level with the camera lands on the screen
// center instead of dividing by zero. Vertices near or behind the camera
// plane land far outside the screen, so callers keep z + Distance well above
// zero (meshes fitted to extent 2 with Distance >= 2.5).
func (c *Camera) Project(v math3d.Vec3, width, height int) Point {
	zOffset := v.Z + c.Distance
	if zOffset == 0 {
		return Point{X: width / 2, Y: height / 2}
	}

	w, h := float64(width), float64(height)
	return Point{
		X: int((v.X/zOffset)*c.Focal*w/2 + w/2),
		Y: int((v.Y/zOffset)*c.Focal*h/2 + h/2),
	}
}

// Project maps a vertex to a screen cell with the default camera.
func Project(v math3d.Vec3, width, height int) Point {
	return NewCamera().Project(v, width, height)
}
