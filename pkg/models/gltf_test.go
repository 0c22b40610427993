package models

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tumble/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

// pyramidDocument builds a four-sided pyramid with uint16 indices.
func pyramidDocument() *gltf.Document {
	doc := gltf.NewDocument()
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 1, 1, 3, 2})
	positions := modeler.WritePosition(doc, [][3]float32{
		{0, 1, 0},
		{-1, 0, -1},
		{1, 0, -1},
		{0, 0, 1},
	})
	doc.Meshes = []*gltf.Mesh{{
		Name: "pyramid",
		Primitives: []*gltf.Primitive{{
			Indices:    &indices,
			Attributes: map[string]int{gltf.POSITION: positions},
		}},
	}}
	return doc
}

func TestLoadGLBPyramid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyramid.glb")
	if err := gltf.SaveBinary(pyramidDocument(), path); err != nil {
		t.Fatalf("save glb: %v", err)
	}

	m, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", m.VertexCount())
	}
	if m.FaceCount() != 4 {
		t.Errorf("FaceCount() = %d, want 4", m.FaceCount())
	}
	if m.EdgeCount() != 6 {
		t.Errorf("EdgeCount() = %d, want 6", m.EdgeCount())
	}
	if m.Vertices()[0] != math3d.V3(0, 1, 0) {
		t.Errorf("apex = %v, want (0, 1, 0)", m.Vertices()[0])
	}
}

func TestLoadGLBBadBufferView(t *testing.T) {
	doc := pyramidDocument()
	positions := doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]
	doc.Accessors[positions].BufferView = gltf.Index(7)

	path := filepath.Join(t.TempDir(), "broken.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("save glb: %v", err)
	}

	if _, err := LoadGLB(path); !errors.Is(err, ErrMalformedGLTF) {
		t.Errorf("LoadGLB error = %v, want ErrMalformedGLTF", err)
	}
}

func TestMeshFromMalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(doc *gltf.Document)
	}{
		{"position accessor out of range", func(doc *gltf.Document) {
			doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION] = 42
		}},
		{"index accessor out of range", func(doc *gltf.Document) {
			doc.Meshes[0].Primitives[0].Indices = gltf.Index(-1)
		}},
		{"missing buffer view", func(doc *gltf.Document) {
			doc.Accessors[0].BufferView = nil
		}},
		{"buffer out of range", func(doc *gltf.Document) {
			doc.BufferViews[0].Buffer = 5
		}},
		{"buffer view past buffer", func(doc *gltf.Document) {
			doc.BufferViews[0].ByteLength = 1 << 20
		}},
		{"accessor past buffer view", func(doc *gltf.Document) {
			doc.Accessors[1].Count = 1000
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := pyramidDocument()
			tc.corrupt(doc)
			if _, err := meshFromDocument("broken", doc); !errors.Is(err, ErrMalformedGLTF) {
				t.Errorf("error = %v, want ErrMalformedGLTF", err)
			}
		})
	}
}

func TestMeshFromDocumentIndexOutOfRange(t *testing.T) {
	doc := gltf.NewDocument()
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 9})
	positions := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{{
		Indices:    &indices,
		Attributes: map[string]int{gltf.POSITION: positions},
	}}}}

	if _, err := meshFromDocument("tri", doc); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
}
