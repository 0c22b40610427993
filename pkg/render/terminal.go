package render

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Color is an 8-bit ANSI palette index.
type Color = ansi.IndexedColor

// Colors for convenience
const (
	ColorBlack   Color = 0
	ColorRed     Color = 196
	ColorGreen   Color = 46
	ColorBlue    Color = 21
	ColorYellow  Color = 226
	ColorMagenta Color = 201
	ColorCyan    Color = 51
	ColorWhite   Color = 231
)

// facePalette holds the colors faces are painted with, picked by face index.
var facePalette = [...]Color{
	ColorRed, ColorGreen, ColorBlue, ColorYellow,
	ColorMagenta, ColorCyan, 208, 129,
	118, 39, 214, 163,
	82, 33, 220, 200,
}

// FaceColor returns the palette color for the face at index i. Colors are
// keyed by position, so they stay put only while the face list does.
func FaceColor(i int) Color {
	return facePalette[uint(i)%uint(len(facePalette))]
}

// Sink receives finished frames.
type Sink interface {
	Present(fb *Framebuffer) error
}

// Screen is the part of an ultraviolet terminal the terminal sink needs.
type Screen interface {
	SetCell(x, y int, c *uv.Cell)
	Display() error
}

// FrameSize returns the framebuffer size for a terminal of cols x rows:
// at most maxRows rows (when maxRows > 0) and twice as many columns as rows,
// since terminal cells are roughly twice as tall as wide.
func FrameSize(cols, rows, maxRows int) (width, height int) {
	height = rows
	if maxRows > 0 {
		height = min(height, maxRows)
	}
	width = min(height*2, cols)
	return max(width, 0), max(height, 0)
}

// TerminalSink presents frames on an ultraviolet screen, centered.
type TerminalSink struct {
	scr        Screen
	cols, rows int
}

// NewTerminalSink creates a sink for a screen of cols x rows cells.
func NewTerminalSink(scr Screen, cols, rows int) *TerminalSink {
	return &TerminalSink{scr: scr, cols: cols, rows: rows}
}

// Present draws the frame and displays it.
func (t *TerminalSink) Present(fb *Framebuffer) error {
	origin := image.Pt(max((t.cols-fb.Width)/2, 0), max((t.rows-fb.Height)/2, 0))
	fb.Draw(t.scr, origin)
	return t.scr.Display()
}

// Draw converts the framebuffer to terminal cells with its top-left corner
// at origin.
func (fb *Framebuffer) Draw(scr Screen, origin image.Point) {
	for y := range fb.Height {
		for x := range fb.Width {
			scr.SetCell(origin.X+x, origin.Y+y, toCell(fb.At(x, y)))
		}
	}
}

// toCell converts a framebuffer cell to an ultraviolet cell. Blank cells
// carry no style so the terminal background shows through.
func toCell(c Cell) *uv.Cell {
	if c == Blank {
		return &uv.Cell{Content: " ", Width: 1}
	}
	return &uv.Cell{
		Content: string(c.Glyph),
		Width:   1,
		Style:   uv.Style{Fg: c.Color},
	}
}
