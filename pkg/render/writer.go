package render

import (
	"bytes"
	"fmt"
	"io"
)

const (
	escHomeClear = "\x1b[H\x1b[2J"
	escReset     = "\x1b[0m"
)

// WriterSink writes frames as plain ANSI text: the screen is cleared, then
// every row is written with 256-color escapes. Each frame goes out in a
// single Write.
type WriterSink struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Present encodes the frame and writes it.
func (s *WriterSink) Present(fb *Framebuffer) error {
	s.buf.Reset()
	s.buf.WriteString(escHomeClear)

	for y := range fb.Height {
		styled := false
		var current Color
		for x := range fb.Width {
			c := fb.At(x, y)
			if c == Blank {
				if styled {
					s.buf.WriteString(escReset)
					styled = false
				}
				s.buf.WriteByte(' ')
				continue
			}
			if !styled || c.Color != current {
				fmt.Fprintf(&s.buf, "\x1b[38;5;%dm", uint8(c.Color))
				styled, current = true, c.Color
			}
			s.buf.WriteRune(c.Glyph)
		}
		if styled {
			s.buf.WriteString(escReset)
		}
		s.buf.WriteByte('\n')
	}

	if _, err := s.w.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
