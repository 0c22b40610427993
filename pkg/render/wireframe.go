package render

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/taigrr/tumble/pkg/models"
)

// DrawMeshWireframe draws every unique edge of the mesh as a line, each in
// its own edge color.
func (r *Rasterizer) DrawMeshWireframe(mesh *models.Mesh, angleX, angleY float64) {
	rotated := r.rotate(mesh, angleX, angleY)
	w, h := r.Width(), r.Height()

	for _, e := range mesh.Edges() {
		p0 := r.camera.Project(rotated[e.V0], w, h)
		p1 := r.camera.Project(rotated[e.V1], w, h)
		r.fb.DrawLine(p0, p1, Cell{Glyph: GlyphEdge, Color: EdgeColor(e)})
	}
}

// EdgeColor derives a palette color from the edge's vertex pair. The same
// pair always gets the same color; different pairs may collide.
func EdgeColor(e models.Edge) Color {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(uint32(e.V0))<<32|uint64(uint32(e.V1)))

	h := fnv.New64a()
	h.Write(key[:])
	return Color(uint8(h.Sum64()))
}
