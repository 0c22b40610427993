// tumble - Terminal 3D Polyhedron Renderer
// Spins a cube, tetrahedron, octahedron or a loaded model in your terminal,
// drawn as a colored wireframe or as depth-sorted solid faces.
//
// Controls:
//
//	X           - Toggle wireframe/solid
//	Space       - Apply random impulse
//	R           - Reset rotation and zoom
//	+/-         - Adjust zoom
//	Esc/Q       - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tumble"})

	if err := fang.Execute(ctx, newRootCmd(logger), fang.WithVersion(version)); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	o := defaultOptions()

	shapes := make([]string, 0, len(models.Shapes()))
	for _, s := range models.Shapes() {
		shapes = append(shapes, s.String())
	}

	cmd := &cobra.Command{
		Use:   "tumble [model.obj|model.glb]",
		Short: "Spin a 3D mesh in the terminal",
		Long: `tumble spins a polyhedron in the terminal, drawn as a colored wireframe
or as solid faces sorted back to front.

Controls:
  X           Toggle wireframe/solid
  Space       Random spin
  R           Reset view
  +/-         Zoom
  Esc/Q       Quit`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.file = args[0]
			}
			if err := o.validate(); err != nil {
				return err
			}
			logger.SetLevel(o.level)
			return run(cmd.Context(), o, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.shape, "shape", o.shape, "built-in shape ("+strings.Join(shapes, ", ")+")")
	f.StringVar(&o.mode, "mode", o.mode, "render mode (wireframe, solid)")
	f.BoolVar(&o.plain, "plain", o.plain, "write plain ANSI frames to stdout instead of the alt screen")
	f.IntVar(&o.maxHeight, "max-height", o.maxHeight, "maximum frame height in rows (0 = terminal height)")
	f.Float64Var(&o.pitch, "pitch", o.pitch, "tilt about the X axis in radians")
	f.Float64Var(&o.speed, "speed", o.speed, "spin about the Y axis in radians per frame")
	f.IntVar(&o.fps, "fps", o.fps, "target frames per second")
	f.StringVar(&o.logLevel, "log-level", o.logLevel, "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, o *options, logger *log.Logger) error {
	mesh, err := loadMesh(o, logger)
	if err != nil {
		return err
	}
	logger.Info("loaded mesh",
		"name", mesh.Name,
		"vertices", mesh.VertexCount(),
		"faces", mesh.FaceCount(),
		"edges", mesh.EdgeCount(),
		"mode", o.renderMode,
	)

	if o.plain {
		return runPlain(ctx, mesh, o)
	}
	return runTerminal(ctx, mesh, o, logger)
}

// runPlain animates into stdout until interrupted.
func runPlain(ctx context.Context, mesh *models.Mesh, o *options) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	v := newViewer(mesh, o, render.NewWriterSink(os.Stdout))
	v.resize(cols, rows)
	return v.loop(ctx, nil, func(uv.Event) bool { return false })
}

// runTerminal animates on the alternate screen with keyboard controls.
func runTerminal(ctx context.Context, mesh *models.Mesh, o *options, logger *log.Logger) error {
	t := uv.DefaultTerminal()

	cols, rows, err := t.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	t.EnterAltScreen()
	t.HideCursor()

	restore := func() {
		t.ExitAltScreen()
		t.ShowCursor()
		if err := t.Shutdown(context.Background()); err != nil {
			logger.Warn("terminal shutdown", "err", err)
		}
	}

	v := newViewer(mesh, o, nil)
	if err := v.resizeTerminal(t, cols, rows); err != nil {
		restore()
		return err
	}

	handle := func(ev uv.Event) bool {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			t.Erase()
			if err := v.resizeTerminal(t, ev.Width, ev.Height); err != nil {
				logger.Warn("resize", "width", ev.Width, "height", ev.Height, "err", err)
			}
		case uv.KeyPressEvent:
			return v.handleKey(ev)
		}
		return false
	}

	loopErr := v.loop(ctx, t.Events(), handle)
	restore()

	if loopErr != nil {
		return fmt.Errorf("render: %w", loopErr)
	}
	return nil
}
