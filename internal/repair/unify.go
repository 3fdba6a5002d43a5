package repair

import (
	"sort"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/mesh"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// UnifyFaces propagates a consistent winding across every connected
// component of m's faces, using vertex adjacency (two faces are
// neighbours if they share any vertex, not necessarily an edge) rather
// than half-edge twins. Within each component, the first unvisited face
// (lowest index) seeds the propagation with its own winding; every face
// reached from it is flipped exactly when its neighbour-derived normal
// disagrees (negative dot product) with the winding decided for the face
// that discovered it.
//
// Faces that only touch at a single vertex still count as neighbours
// here, so two surfaces joined at one point propagate into the same
// component.
func UnifyFaces(m mesh.Mesh[geom.Point3]) (*mesh.IndexedMesh[geom.Point3], error) {
	defer profiling.Track("repair.UnifyFaces")()

	nv := m.NumVertices()
	nf := m.NumFaces()

	vToF, err := vertexToFaces(m, nv, nf)
	if err != nil {
		return nil, err
	}

	checked := make([]bool, nf)
	mustFlip := make([]bool, nf)

	var frontier []int
	checkedLowest := 0
	components := 0

	for checkedLowest < nf {
		for checkedLowest < nf && checked[checkedLowest] {
			checkedLowest++
		}
		if checkedLowest == nf {
			break
		}
		frontier = append(frontier, checkedLowest)
		checked[checkedLowest] = true
		checkedLowest++
		components++

		for len(frontier) > 0 {
			this := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			neighbours, err := collectNeighbourFaces(m, vToF, mesh.FId{Val: this})
			if err != nil {
				return nil, err
			}

			nThis, err := normalOfFace(m, this)
			if err != nil {
				return nil, err
			}

			for _, neighbour := range neighbours {
				if checked[neighbour] {
					continue
				}

				nNeighbour, err := normalOfFace(m, neighbour)
				if err != nil {
					return nil, err
				}

				areDifferent := nThis.Dot(nNeighbour) < 0
				if mustFlip[this] {
					mustFlip[neighbour] = !areDifferent
				} else {
					mustFlip[neighbour] = areDifferent
				}
				frontier = append(frontier, neighbour)
				checked[neighbour] = true
			}
		}
	}

	vertices := make([]geom.Point3, nv)
	for i := 0; i < nv; i++ {
		p, err := m.Vertex(mesh.VId{Val: i})
		if err != nil {
			return nil, err
		}
		vertices[i] = p
	}

	flipped := 0
	faces := make([]mesh.Face3, nf)
	for i := 0; i < nf; i++ {
		f, err := m.FaceVertexIDs(mesh.FId{Val: i})
		if err != nil {
			return nil, err
		}
		if mustFlip[i] {
			faces[i] = mesh.Face3{A: f.A, B: f.C, C: f.B}
			flipped++
		} else {
			faces[i] = f
		}
	}

	profiling.Summary("unify.build",
		zap.Int("faces", nf),
		zap.Int("components", components),
		zap.Int("flipped", flipped),
	)
	return mesh.NewIndexedMesh(vertices, faces), nil
}

func vertexToFaces(m mesh.Mesh[geom.Point3], nv, nf int) ([]map[int]struct{}, error) {
	vToF := make([]map[int]struct{}, nv)
	for i := range vToF {
		vToF[i] = make(map[int]struct{})
	}
	for i := 0; i < nf; i++ {
		f, err := m.FaceVertexIDs(mesh.FId{Val: i})
		if err != nil {
			return nil, err
		}
		vToF[f.A.Val][i] = struct{}{}
		vToF[f.B.Val][i] = struct{}{}
		vToF[f.C.Val][i] = struct{}{}
	}
	return vToF, nil
}

func collectNeighbourFaces(m mesh.Mesh[geom.Point3], vToF []map[int]struct{}, fid mesh.FId) ([]int, error) {
	f, err := m.FaceVertexIDs(fid)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	for _, vid := range [3]mesh.VId{f.A, f.B, f.C} {
		for neighbour := range vToF[vid.Val] {
			seen[neighbour] = struct{}{}
		}
	}
	delete(seen, fid.Val)

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

func normalOfFace(m mesh.Mesh[geom.Point3], faceIdx int) (geom.Point3, error) {
	a, b, c, err := mesh.FaceVertexPositions3(m, mesh.FId{Val: faceIdx})
	if err != nil {
		return geom.Point3{}, err
	}
	return b.Sub(a).Cross(c.Sub(a)), nil
}
