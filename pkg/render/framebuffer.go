// Package render rasterizes rotating meshes into a character grid for the
// terminal.
package render

// Cell is one character of a frame: a glyph drawn in a palette color.
type Cell struct {
	Glyph rune
	Color Color
}

// Blank is the background cell every frame starts from.
var Blank = Cell{Glyph: ' ', Color: ColorBlack}

// Framebuffer is a fixed-size grid of cells, one per terminal character.
type Framebuffer struct {
	Width  int    // Width in cells (terminal columns)
	Height int    // Height in cells (terminal rows)
	Cells  []Cell // Row-major cell data
}

// NewFramebuffer creates a blank framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	fb.Clear()
	return fb
}

// Clear resets every cell to Blank.
func (fb *Framebuffer) Clear() {
	for i := range fb.Cells {
		fb.Cells[i] = Blank
	}
}

// SetPixel sets the cell at (x, y). Writes outside the grid are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Cell) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Cells[y*fb.Width+x] = c
}

// At returns the cell at (x, y), or Blank if out of bounds.
func (fb *Framebuffer) At(x, y int) Cell {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Blank
	}
	return fb.Cells[y*fb.Width+x]
}

// Filled returns the number of cells that differ from Blank.
func (fb *Framebuffer) Filled() int {
	n := 0
	for _, c := range fb.Cells {
		if c != Blank {
			n++
		}
	}
	return n
}

// Output hands the whole frame to the sink.
func (fb *Framebuffer) Output(s Sink) error {
	return s.Present(fb)
}

// DrawLine draws a line from p0 to p1 with a uniform-step DDA. Both endpoints
// are plotted; coincident endpoints draw nothing. Endpoints are put in a
// canonical order first so a line covers the same cells in either direction.
// The line is not clipped before stepping, so the cost grows with its full
// length; endpoints should come from vertices well in front of the camera
// (see Camera.Project).
func (fb *Framebuffer) DrawLine(p0, p1 Point, c Cell) {
	if p1.X < p0.X || (p1.X == p0.X && p1.Y < p0.Y) {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return
	}

	for i := 0; i <= steps; i++ {
		fb.SetPixel(p0.X+i*dx/steps, p0.Y+i*dy/steps, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
