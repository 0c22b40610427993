package render

import (
	"fmt"
	"strings"
)

// Mode selects how a mesh is drawn.
type Mode int

const (
	ModeWireframe Mode = iota // Edges only
	ModeSolid                 // Depth-sorted filled faces
)

func (m Mode) String() string {
	switch m {
	case ModeWireframe:
		return "wireframe"
	case ModeSolid:
		return "solid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "wireframe" or "solid" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wireframe", "wire":
		return ModeWireframe, nil
	case "solid":
		return ModeSolid, nil
	default:
		return 0, fmt.Errorf("unknown render mode %q (want wireframe or solid)", s)
	}
}

// Toggle switches between wireframe and solid.
func (m Mode) Toggle() Mode {
	if m == ModeSolid {
		return ModeWireframe
	}
	return ModeSolid
}
