package repair

import (
	"math"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/mesh"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// ClusterVertices collapses vertices that fall within the same cubic cell
// of a grid sized clusterSize, keeping one representative position per
// occupied cell (the last vertex written to that cell wins), remaps every
// face to its cluster's representative, and re-heals the result to drop
// the now-degenerate faces and pack the vertex list.
//
// Fails with ErrBoundingBoxMissing if m has fewer than two vertices, or
// ErrClusterTooBig if clusterSize doesn't divide the mesh's bounding box
// into at least two cells along every axis.
func ClusterVertices(m mesh.Mesh[geom.Point3], clusterSize float64) (*mesh.IndexedMesh[geom.Point3], error) {
	defer profiling.Track("repair.ClusterVertices")()

	nv := m.NumVertices()
	positions := make([]geom.Point3, nv)
	for i := 0; i < nv; i++ {
		p, err := m.Vertex(mesh.VId{Val: i})
		if err != nil {
			return nil, err
		}
		positions[i] = p
	}

	bb, err := geom.BoundingBox3DFromPoints(positions...)
	if err != nil {
		return nil, ErrBoundingBoxMissing
	}

	nx := int(bb.SizeX() / clusterSize)
	ny := int(bb.SizeY() / clusterSize)
	nz := int(bb.SizeZ() / clusterSize)
	if nx < 2 || ny < 2 || nz < 2 {
		return nil, ErrClusterTooBig
	}

	min := bb.Min()
	cellOf := func(p geom.Point3) [3]int {
		return [3]int{
			int(math.Floor((p.X() - min.X()) / clusterSize)),
			int(math.Floor((p.Y() - min.Y()) / clusterSize)),
			int(math.Floor((p.Z() - min.Z()) / clusterSize)),
		}
	}

	cellOfVertex := make([][3]int, nv)
	representativeOfCell := make(map[[3]int]int, nv)
	for i, p := range positions {
		cell := cellOf(p)
		cellOfVertex[i] = cell
		representativeOfCell[cell] = i // last write wins
	}

	representativePosition := func(oldIndex int) geom.Point3 {
		cell := cellOfVertex[oldIndex]
		return positions[representativeOfCell[cell]]
	}

	nf := m.NumFaces()
	flat := make([]geom.Point3, 0, 3*nf)
	for i := 0; i < nf; i++ {
		face, err := m.FaceVertexIDs(mesh.FId{Val: i})
		if err != nil {
			return nil, err
		}
		flat = append(flat,
			representativePosition(face.A.Val),
			representativePosition(face.B.Val),
			representativePosition(face.C.Val),
		)
	}

	clustered, err := healFromFlatVertices(flat)
	if err != nil {
		return nil, err
	}
	profiling.Summary("cluster.build",
		zap.Int("vertices_in", nv),
		zap.Int("cells", len(representativeOfCell)),
		zap.Int("vertices_out", clustered.NumVertices()),
		zap.Int("faces_out", clustered.NumFaces()),
	)
	return clustered, nil
}
