package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
)

// Zoom limits for the camera distance. The near limit stays clear of the
// unit shapes' corners so nothing crosses the camera plane.
const (
	zoomStep    = 0.5
	minDistance = 2.5
	maxDistance = 20.0

	impulseStrength = 0.3
)

// viewer owns all mutable animation state. Only its loop touches it.
type viewer struct {
	mesh      *models.Mesh
	mode      render.Mode
	rotation  *RotationState
	camera    *render.Camera
	rast      *render.Rasterizer
	sink      render.Sink
	maxHeight int
	fps       int
}

func newViewer(mesh *models.Mesh, o *options, sink render.Sink) *viewer {
	camera := render.NewCamera()
	return &viewer{
		mesh:      mesh,
		mode:      o.renderMode,
		rotation:  NewRotationState(o.fps, o.pitch, o.speed),
		camera:    camera,
		rast:      render.NewRasterizer(camera, render.NewFramebuffer(0, 0)),
		sink:      sink,
		maxHeight: o.maxHeight,
		fps:       o.fps,
	}
}

// resize rebuilds the framebuffer for a terminal of cols x rows.
func (v *viewer) resize(cols, rows int) {
	w, h := render.FrameSize(cols, rows, v.maxHeight)
	v.rast.SetFramebuffer(render.NewFramebuffer(w, h))
}

// terminalScreen is the part of the ultraviolet terminal the viewer drives.
type terminalScreen interface {
	render.Screen
	Resize(width, height int) error
}

// resizeTerminal resizes the screen to cols x rows and rebuilds the sink and
// framebuffer to match. On error the previous sink and framebuffer are kept.
func (v *viewer) resizeTerminal(scr terminalScreen, cols, rows int) error {
	if err := scr.Resize(cols, rows); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}
	v.sink = render.NewTerminalSink(scr, cols, rows)
	v.resize(cols, rows)
	return nil
}

// frame draws the current pose, presents it and advances the animation.
func (v *viewer) frame() error {
	v.rast.Render(v.mesh, v.mode, v.rotation.Pitch.Position, v.rotation.Yaw.Position)
	if err := v.rast.Framebuffer().Output(v.sink); err != nil {
		return err
	}
	v.rotation.Update()
	return nil
}

func (v *viewer) zoom(delta float64) {
	d := math.Min(maxDistance, math.Max(minDistance, v.camera.Distance+delta))
	v.camera.SetDistance(d)
}

func (v *viewer) reset() {
	v.rotation.Reset()
	v.camera.SetDistance(render.DefaultDistance)
}

// handleKey applies a key press. It reports whether the viewer should quit.
func (v *viewer) handleKey(ev uv.KeyPressEvent) bool {
	switch {
	case ev.MatchString("escape", "ctrl+c", "q"):
		return true
	case ev.MatchString("x"):
		v.mode = v.mode.Toggle()
	case ev.MatchString("space"):
		v.rotation.ApplyImpulse(
			(rand.Float64()-0.5)*impulseStrength,
			(rand.Float64()-0.5)*impulseStrength,
		)
	case ev.MatchString("r"):
		v.reset()
	case ev.MatchString("+", "="):
		v.zoom(-zoomStep)
	case ev.MatchString("-", "_"):
		v.zoom(zoomStep)
	}
	return false
}

// loop runs one frame per interval until ctx is done or handle asks to stop.
// Pending events are drained without blocking before every frame.
func (v *viewer) loop(ctx context.Context, events <-chan uv.Event, handle func(uv.Event) bool) error {
	interval := time.Second / time.Duration(v.fps)

	for {
		start := time.Now()

	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if handle(ev) {
					return nil
				}
			default:
				break drain
			}
		}

		if err := v.frame(); err != nil {
			return err
		}

		if elapsed := time.Since(start); elapsed < interval {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval - elapsed):
			}
		}
	}
}
