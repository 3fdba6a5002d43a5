package repair

import (
	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/mesh"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// Heal removes duplicate vertices (by bit-level position equality),
// degenerate faces (any face with two or more equal vertex indices after
// dedup), and duplicate faces (two faces referencing the same unordered
// vertex triple; the first occurrence wins) from m, returning a freshly
// packed mesh.
func Heal(m mesh.Mesh[geom.Point3]) (*mesh.IndexedMesh[geom.Point3], error) {
	defer profiling.Track("repair.Heal")()

	dupedVertices, err := faceVertexPositions(m)
	if err != nil {
		return nil, err
	}
	healed, err := healFromFlatVertices(dupedVertices)
	if err != nil {
		return nil, err
	}
	profiling.Summary("heal.build",
		zap.Int("faces_in", m.NumFaces()),
		zap.Int("vertices_out", healed.NumVertices()),
		zap.Int("faces_out", healed.NumFaces()),
	)
	return healed, nil
}

// faceVertexPositions flattens every face's three vertex positions into a
// single slice, 3 entries per face, in face order.
func faceVertexPositions(m mesh.Mesh[geom.Point3]) ([]geom.Point3, error) {
	nf := m.NumFaces()
	out := make([]geom.Point3, 0, 3*nf)
	for i := 0; i < nf; i++ {
		a, b, c, err := mesh.FaceVertexPositions3(m, mesh.FId{Val: i})
		if err != nil {
			return nil, err
		}
		out = append(out, a, b, c)
	}
	return out, nil
}

// healFromFlatVertices packs a flat, 3-per-face vertex slice through
// dedup, drops degenerate and duplicate faces, and builds the resulting
// mesh.
func healFromFlatVertices(flat []geom.Point3) (*mesh.IndexedMesh[geom.Point3], error) {
	unduped, indices := packDedupIndexed(flat)

	seenFaces := make(map[[3]int]struct{}, len(indices)/3)
	faces := make([]mesh.Face3, 0, len(indices)/3)
	for f := 0; f+2 < len(indices); f += 3 {
		a, b, c := indices[f], indices[f+1], indices[f+2]
		if a == b || a == c || b == c {
			continue
		}
		key := sortedTriple(a, b, c)
		if _, ok := seenFaces[key]; ok {
			continue
		}
		seenFaces[key] = struct{}{}
		faces = append(faces, mesh.Face3{
			A: mesh.VId{Val: a},
			B: mesh.VId{Val: b},
			C: mesh.VId{Val: c},
		})
	}

	return mesh.NewIndexedMesh(unduped, faces), nil
}

// sortedTriple is the winding-independent identity of a face: the same
// three indices in any order produce the same key.
func sortedTriple(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

// packDedupIndexed deduplicates points by bit-level equality
// (geom.Point3.Key), returning the packed unique point list and, for
// every input point, the index into that list it was assigned.
func packDedupIndexed(points []geom.Point3) (packed []geom.Point3, indices []int) {
	seen := make(map[[3]uint64]int, len(points))
	indices = make([]int, 0, len(points))
	packed = make([]geom.Point3, 0, len(points))

	for _, p := range points {
		key := p.Key()
		id, ok := seen[key]
		if !ok {
			id = len(packed)
			packed = append(packed, p)
			seen[key] = id
		}
		indices = append(indices, id)
	}
	return packed, indices
}
