package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
)

func TestDefaultOptionsValid(t *testing.T) {
	o := defaultOptions()
	if err := o.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if o.preset != models.ShapeCube || o.renderMode != render.ModeSolid || o.level != log.InfoLevel {
		t.Errorf("resolved %v %v %v", o.preset, o.renderMode, o.level)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*options)
		wantErr bool
	}{
		{"octahedron wireframe", func(o *options) { o.shape, o.mode = "octahedron", "wireframe" }, false},
		{"zero fps", func(o *options) { o.fps = 0 }, true},
		{"too many fps", func(o *options) { o.fps = 1000 }, true},
		{"negative max height", func(o *options) { o.maxHeight = -1 }, true},
		{"unlimited height", func(o *options) { o.maxHeight = 0 }, false},
		{"bad mode", func(o *options) { o.mode = "textured" }, true},
		{"bad shape", func(o *options) { o.shape = "sphere" }, true},
		{"bad log level", func(o *options) { o.logLevel = "loud" }, true},
		{"file overrides shape", func(o *options) { o.shape, o.file = "sphere", "model.obj" }, false},
		{"glb file", func(o *options) { o.file = "Model.GLB" }, false},
		{"unsupported file", func(o *options) { o.file = "model.stl" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := defaultOptions()
			tc.modify(o)
			err := o.validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	o := defaultOptions()
	o.file = "teapot.3ds"
	if err := o.validate(); !errors.Is(err, errUnsupportedFormat) {
		t.Errorf("error = %v, want errUnsupportedFormat", err)
	}
}

func TestLoadMeshPreset(t *testing.T) {
	o := defaultOptions()
	o.shape = "tetrahedron2"
	if err := o.validate(); err != nil {
		t.Fatal(err)
	}

	mesh, err := loadMesh(o, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadMesh: %v", err)
	}
	if mesh.VertexCount() != 4 || mesh.FaceCount() != 4 {
		t.Errorf("got %d vertices, %d faces", mesh.VertexCount(), mesh.FaceCount())
	}
}

func TestLoadMeshFileIsFitted(t *testing.T) {
	const obj = `# big triangle
v 0 0 0
v 10 0 0
v 0 20 0
f 1 2 3
bogus line
`
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	o := defaultOptions()
	o.file = path
	if err := o.validate(); err != nil {
		t.Fatal(err)
	}

	mesh, err := loadMesh(o, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadMesh: %v", err)
	}
	if mesh.Name != "tri.obj" {
		t.Errorf("Name = %q", mesh.Name)
	}
	size := mesh.Size()
	if got := size.MaxComponent(); got < 1.999 || got > 2.001 {
		t.Errorf("largest extent = %v, want 2", got)
	}
}

func TestLoadMeshMissingFile(t *testing.T) {
	o := defaultOptions()
	o.file = filepath.Join(t.TempDir(), "missing.glb")
	if err := o.validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := loadMesh(o, log.New(io.Discard)); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRootCmdRejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"--fps", "0"},
		{"--mode", "textured"},
		{"--shape", "sphere"},
		{"a.obj", "b.obj"},
	}

	for _, args := range tests {
		cmd := newRootCmd(log.New(io.Discard))
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		if err := cmd.Execute(); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}
