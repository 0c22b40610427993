// Package models provides mesh representation and loading for tumble.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/tumble/pkg/math3d"
)

var (
	// ErrDegenerateFace is returned when a face has fewer than 3 vertex indices.
	ErrDegenerateFace = errors.New("face needs at least 3 vertices")
	// ErrIndexOutOfRange is returned when a face references a missing vertex.
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// Face is an ordered polygon of vertex indices. Winding is not significant.
type Face struct {
	Indices []int
}

// NewFace creates a face from at least 3 vertex indices.
func NewFace(indices ...int) (Face, error) {
	if len(indices) < 3 {
		return Face{}, fmt.Errorf("%w: got %d", ErrDegenerateFace, len(indices))
	}
	return Face{Indices: indices}, nil
}

// MustFace is like NewFace but panics on a degenerate face.
func MustFace(indices ...int) Face {
	f, err := NewFace(indices...)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of vertices in the face.
func (f Face) Len() int {
	return len(f.Indices)
}

// Edge is an unordered pair of vertex indices, stored with V0 <= V1 so that
// it can be compared and used as a map key.
type Edge struct {
	V0, V1 int
}

// NewEdge returns the normalized edge between vertices a and b.
func NewEdge(a, b int) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{V0: a, V1: b}
}

// Mesh is an immutable polyhedral mesh: vertices, polygon faces and the
// unique edge set derived from them.
//
// The slices returned by the accessors are shared with the mesh and must
// not be modified.
type Mesh struct {
	Name string

	vertices []math3d.Vec3
	faces    []Face
	edges    []Edge
}

// NewMesh validates faces against the vertex list and builds a mesh.
// An empty mesh is valid.
func NewMesh(name string, vertices []math3d.Vec3, faces []Face) (*Mesh, error) {
	for i, f := range faces {
		if f.Len() < 3 {
			return nil, fmt.Errorf("face %d: %w: got %d", i, ErrDegenerateFace, f.Len())
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: %w: %d not in [0, %d)", i, ErrIndexOutOfRange, idx, len(vertices))
			}
		}
	}

	return &Mesh{
		Name:     name,
		vertices: vertices,
		faces:    faces,
		edges:    deriveEdges(faces),
	}, nil
}

// MustMesh is like NewMesh but panics if the mesh is invalid.
func MustMesh(name string, vertices []math3d.Vec3, faces []Face) *Mesh {
	m, err := NewMesh(name, vertices, faces)
	if err != nil {
		panic(fmt.Sprintf("mesh %q: %v", name, err))
	}
	return m
}

// deriveEdges walks every face cyclically and collects the normalized edges
// in first-seen order.
func deriveEdges(faces []Face) []Edge {
	seen := make(map[Edge]struct{})
	var edges []Edge
	for _, f := range faces {
		n := f.Len()
		for i := range n {
			e := NewEdge(f.Indices[i], f.Indices[(i+1)%n])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Vertices returns the vertex list.
func (m *Mesh) Vertices() []math3d.Vec3 {
	return m.vertices
}

// Faces returns the face list.
func (m *Mesh) Faces() []Face {
	return m.faces
}

// Edges returns the unique edges of all faces.
func (m *Mesh) Edges() []Edge {
	return m.edges
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// EdgeCount returns the number of unique edges.
func (m *Mesh) EdgeCount() int {
	return len(m.edges)
}

// Bounds returns the axis-aligned bounding box of the vertices.
// Both corners are zero for an empty mesh.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}

	lo, hi = m.vertices[0], m.vertices[0]
	for _, v := range m.vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	lo, hi := m.Bounds()
	return hi.Sub(lo)
}

// Fit returns a copy of the mesh centered on the origin with its largest
// dimension scaled to extent. Flat or empty meshes are only centered.
func (m *Mesh) Fit(extent float64) *Mesh {
	transform := math3d.Translate(m.Center().Negate())
	if maxDim := m.Size().MaxComponent(); maxDim > 0 {
		s := extent / maxDim
		transform = math3d.Scale(math3d.V3(s, s, s)).Mul(transform)
	}

	vertices := make([]math3d.Vec3, len(m.vertices))
	for i, v := range m.vertices {
		vertices[i] = transform.MulVec3(v)
	}

	return &Mesh{
		Name:     m.Name,
		vertices: vertices,
		faces:    m.faces,
		edges:    m.edges,
	}
}
