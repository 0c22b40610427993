package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
)

const (
	defaultMaxHeight = 50
	defaultPitch     = 0.5
	defaultSpeed     = 0.03
	defaultFPS       = 33 // ~30ms per frame
	maxFPS           = 240
)

var errUnsupportedFormat = errors.New("unsupported model format")

// options holds the command line configuration.
type options struct {
	shape     string
	mode      string
	plain     bool
	maxHeight int
	pitch     float64
	speed     float64
	fps       int
	logLevel  string
	file      string

	// Filled in by validate.
	preset     models.Shape
	renderMode render.Mode
	level      log.Level
}

func defaultOptions() *options {
	return &options{
		shape:     models.ShapeCube.String(),
		mode:      render.ModeSolid.String(),
		maxHeight: defaultMaxHeight,
		pitch:     defaultPitch,
		speed:     defaultSpeed,
		fps:       defaultFPS,
		logLevel:  "info",
	}
}

// validate checks the options and resolves the parsed values.
func (o *options) validate() error {
	if o.fps <= 0 || o.fps > maxFPS {
		return fmt.Errorf("--fps must be between 1 and %d, got %d", maxFPS, o.fps)
	}
	if o.maxHeight < 0 {
		return fmt.Errorf("--max-height must not be negative, got %d", o.maxHeight)
	}

	mode, err := render.ParseMode(o.mode)
	if err != nil {
		return err
	}
	o.renderMode = mode

	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	o.level = level

	if o.file != "" {
		switch ext := strings.ToLower(filepath.Ext(o.file)); ext {
		case ".obj", ".glb", ".gltf":
		default:
			return fmt.Errorf("%w: %q (use .obj or .glb)", errUnsupportedFormat, ext)
		}
		return nil
	}

	shape, err := models.ParseShape(o.shape)
	if err != nil {
		return err
	}
	o.preset = shape
	return nil
}

// loadMesh returns the mesh to display: the model file scaled to fit the
// view, or the built-in shape.
func loadMesh(o *options, logger *log.Logger) (*models.Mesh, error) {
	if o.file == "" {
		return o.preset.Mesh(), nil
	}

	var (
		mesh *models.Mesh
		err  error
	)
	switch strings.ToLower(filepath.Ext(o.file)) {
	case ".glb", ".gltf":
		mesh, err = models.LoadGLB(o.file)
	case ".obj":
		loader := &models.OBJLoader{
			OnSkip: func(line int, text string, err error) {
				logger.Debug("skipped line", "file", o.file, "line", line, "text", text, "err", err)
			},
		}
		mesh, err = loader.Load(o.file)
	default:
		err = fmt.Errorf("%w: %s", errUnsupportedFormat, o.file)
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return mesh.Fit(2), nil
}
