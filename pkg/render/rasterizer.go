package render

import (
	"github.com/taigrr/tumble/pkg/math3d"
	"github.com/taigrr/tumble/pkg/models"
)

// Glyphs drawn by each render mode.
const (
	GlyphEdge = '#'
	GlyphFill = '█'
)

// pipEpsilon keeps the edge intercept finite for horizontal edges.
const pipEpsilon = 1e-4

// Rasterizer draws meshes into a framebuffer through a camera.
type Rasterizer struct {
	camera  *Camera
	fb      *Framebuffer
	rotated []math3d.Vec3 // per-frame scratch
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	return &Rasterizer{
		camera: camera,
		fb:     fb,
	}
}

// Framebuffer returns the framebuffer being drawn into.
func (r *Rasterizer) Framebuffer() *Framebuffer {
	return r.fb
}

// SetFramebuffer replaces the target framebuffer, e.g. after a resize.
func (r *Rasterizer) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Height
}

// Render draws one complete frame: it clears the framebuffer and draws the
// mesh rotated by angleX then angleY in the given mode.
func (r *Rasterizer) Render(mesh *models.Mesh, mode Mode, angleX, angleY float64) {
	if r.fb == nil {
		return
	}
	r.fb.Clear()

	switch mode {
	case ModeWireframe:
		r.DrawMeshWireframe(mesh, angleX, angleY)
	case ModeSolid:
		r.DrawMeshSolid(mesh, angleX, angleY)
	}
}

// DrawMeshSolid fills every face back to front (painter's algorithm), each
// in its face color. There is no depth buffer: overlap is decided per face
// by average depth only.
func (r *Rasterizer) DrawMeshSolid(mesh *models.Mesh, angleX, angleY float64) {
	rotated := r.rotate(mesh, angleX, angleY)
	for _, f := range SortFaces(mesh, rotated, r.camera, r.Width(), r.Height()) {
		r.fb.FillPolygon(f.Points, Cell{Glyph: GlyphFill, Color: f.Color})
	}
}

// rotate transforms every vertex of the mesh once into the scratch slice.
func (r *Rasterizer) rotate(mesh *models.Mesh, angleX, angleY float64) []math3d.Vec3 {
	vertices := mesh.Vertices()
	if cap(r.rotated) < len(vertices) {
		r.rotated = make([]math3d.Vec3, len(vertices))
	}
	r.rotated = r.rotated[:len(vertices)]
	for i, v := range vertices {
		r.rotated[i] = v.Rotate(angleX, angleY)
	}
	return r.rotated
}

// FillPolygon fills the polygon outlined by points. Every cell of the
// outline's bounding box is tested with PointInPolygon. Fewer than three
// points draw nothing.
func (fb *Framebuffer) FillPolygon(points []Point, c Cell) {
	if len(points) < 3 {
		return
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	// Cells outside the grid would be discarded anyway.
	minX, maxX = max(minX, 0), min(maxX, fb.Width-1)
	minY, maxY = max(minY, 0), min(maxY, fb.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if PointInPolygon(float64(x), float64(y), points) {
				fb.SetPixel(x, y, c)
			}
		}
	}
}

// PointInPolygon reports whether (x, y) lies inside poly using ray casting.
// An edge counts when exactly one of its endpoints has a y strictly greater
// than the test point's. Horizontal edges are not skipped; a small epsilon in
// the intercept denominator keeps them finite. Points on the outline fall on
// a fixed but unspecified side.
func PointInPolygon(x, y float64, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(poly[i].X), float64(poly[i].Y)
		xj, yj := float64(poly[j].X), float64(poly[j].Y)

		if (yi > y) != (yj > y) && x < xi+(xj-xi)*(y-yi)/(yj-yi+pipEpsilon) {
			inside = !inside
		}
	}
	return inside
}
