package render

import (
	"errors"
	"image"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

// mockScreen records cells set by the terminal sink.
type mockScreen struct {
	cells    map[Point]*uv.Cell
	displays int
	err      error
}

func newMockScreen() *mockScreen {
	return &mockScreen{cells: make(map[Point]*uv.Cell)}
}

func (m *mockScreen) SetCell(x, y int, c *uv.Cell) {
	m.cells[Point{x, y}] = c
}

func (m *mockScreen) Display() error {
	m.displays++
	return m.err
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		name                string
		cols, rows, maxRows int
		wantW, wantH        int
	}{
		{"capped rows", 200, 80, 50, 100, 50},
		{"uncapped", 200, 30, 0, 60, 30},
		{"narrow terminal", 40, 30, 50, 40, 30},
		{"zero", 0, 0, 50, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FrameSize(tc.cols, tc.rows, tc.maxRows)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("FrameSize = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestFramebufferDraw(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(1, 0, Cell{Glyph: '#', Color: ColorGreen})

	scr := newMockScreen()
	fb.Draw(scr, image.Pt(5, 7))

	if len(scr.cells) != 6 {
		t.Fatalf("set %d cells, want 6", len(scr.cells))
	}
	c := scr.cells[Point{6, 7}]
	if c == nil || c.Content != "#" || c.Style.Fg != ColorGreen {
		t.Errorf("cell (6, 7) = %+v, want green #", c)
	}
	blank := scr.cells[Point{5, 8}]
	if blank == nil || blank.Content != " " || blank.Style.Fg != nil {
		t.Errorf("cell (5, 8) = %+v, want unstyled space", blank)
	}
}

func TestTerminalSinkPresent(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.SetPixel(0, 0, Cell{Glyph: '#', Color: ColorRed})

	scr := newMockScreen()
	sink := NewTerminalSink(scr, 10, 6)
	if err := fb.Output(sink); err != nil {
		t.Fatalf("Output: %v", err)
	}

	if scr.displays != 1 {
		t.Errorf("Display called %d times, want 1", scr.displays)
	}
	// Centered: origin at ((10-4)/2, (6-2)/2) = (3, 2)
	if c := scr.cells[Point{3, 2}]; c == nil || c.Content != "#" {
		t.Errorf("top-left cell not at (3, 2): %+v", c)
	}
	if _, ok := scr.cells[Point{0, 0}]; ok {
		t.Error("cells outside the frame should not be touched")
	}
}

func TestTerminalSinkDisplayError(t *testing.T) {
	scr := newMockScreen()
	scr.err = errors.New("gone")

	err := NewTerminalSink(scr, 4, 4).Present(NewFramebuffer(2, 2))
	if !errors.Is(err, scr.err) {
		t.Errorf("Present error = %v, want %v", err, scr.err)
	}
}
