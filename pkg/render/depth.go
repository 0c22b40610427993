package render

import (
	"cmp"
	"slices"

	"github.com/taigrr/tumble/pkg/math3d"
	"github.com/taigrr/tumble/pkg/models"
)

// ProjectedFace is one face ready for the painter's algorithm.
type ProjectedFace struct {
	Index  int     // Position in the mesh's face list
	Depth  float64 // Mean rotated z of the face's vertices
	Color  Color
	Points []Point // Screen outline in face order
}

// SortFaces projects every face of mesh using the already rotated vertices
// and returns them farthest first. Faces of equal depth keep their face-list
// order.
func SortFaces(mesh *models.Mesh, rotated []math3d.Vec3, cam *Camera, width, height int) []ProjectedFace {
	faces := make([]ProjectedFace, 0, mesh.FaceCount())
	for i, f := range mesh.Faces() {
		pf := ProjectedFace{
			Index:  i,
			Color:  FaceColor(i),
			Points: make([]Point, f.Len()),
		}

		var sumZ float64
		for k, idx := range f.Indices {
			v := rotated[idx]
			sumZ += v.Z
			pf.Points[k] = cam.Project(v, width, height)
		}
		pf.Depth = sumZ / float64(f.Len())

		faces = append(faces, pf)
	}

	sortByDepth(faces)
	return faces
}

// sortByDepth orders faces by descending depth, stable for ties.
func sortByDepth(faces []ProjectedFace) {
	slices.SortStableFunc(faces, func(a, b ProjectedFace) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}
