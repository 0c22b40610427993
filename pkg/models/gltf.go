package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tumble/pkg/math3d"
)

// ErrMalformedGLTF is returned when a glTF document references data it
// does not contain.
var ErrMalformedGLTF = errors.New("malformed gltf")

// LoadGLB loads a binary glTF (.glb) or glTF file into a triangle mesh.
// Only triangle primitives contribute; lines and points are skipped.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return meshFromDocument(filepath.Base(path), doc)
}

func meshFromDocument(name string, doc *gltf.Document) (*Mesh, error) {
	var (
		vertices []math3d.Vec3
		faces    []Face
	)

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Skip non-triangle primitives (lines, points, etc)
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}

			// Base vertex index for this primitive
			base := len(vertices)
			vertices = append(vertices, positions...)

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", m.Name, err)
				}
			} else {
				// No indices, assume sequential triangles
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				faces = append(faces, Face{Indices: []int{
					base + indices[i],
					base + indices[i+1],
					base + indices[i+2],
				}})
			}
		}
	}

	return NewMesh(name, vertices, faces)
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor, err := checkedAccessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadPosition(doc, accessor, nil)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, len(raw))
	for i, p := range raw {
		result[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor, err := checkedAccessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadIndices(doc, accessor, nil)
	if err != nil {
		return nil, err
	}

	result := make([]int, len(raw))
	for i, idx := range raw {
		result[i] = int(idx)
	}
	return result, nil
}

// checkedAccessor returns the accessor at idx after making sure its buffer
// view, its buffer and every element it addresses exist.
func checkedAccessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("%w: accessor %d out of range", ErrMalformedGLTF, idx)
	}
	accessor := doc.Accessors[idx]
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("%w: accessor %d has no buffer view", ErrMalformedGLTF, idx)
	}

	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) || doc.BufferViews[viewIdx] == nil {
		return nil, fmt.Errorf("%w: buffer view %d out of range", ErrMalformedGLTF, viewIdx)
	}
	view := doc.BufferViews[viewIdx]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) || doc.Buffers[view.Buffer] == nil {
		return nil, fmt.Errorf("%w: buffer %d out of range", ErrMalformedGLTF, view.Buffer)
	}

	data := doc.Buffers[view.Buffer].Data
	if view.ByteOffset < 0 || view.ByteLength < 0 || view.ByteOffset+view.ByteLength > len(data) {
		return nil, fmt.Errorf("%w: buffer view %d past end of buffer %d", ErrMalformedGLTF, viewIdx, view.Buffer)
	}

	if accessor.Count > 0 {
		elemSize := accessor.ComponentType.ByteSize() * accessor.Type.Components()
		stride := view.ByteStride
		if stride == 0 {
			stride = elemSize
		}
		end := accessor.ByteOffset + (accessor.Count-1)*stride + elemSize
		if accessor.ByteOffset < 0 || end > view.ByteLength {
			return nil, fmt.Errorf("%w: accessor %d past end of buffer view %d", ErrMalformedGLTF, idx, viewIdx)
		}
	}
	return accessor, nil
}
