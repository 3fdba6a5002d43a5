package mesh

import "sort"

// SearchableMesh wraps a Mesh with its HalfEdge table and exposes the
// higher-level traversal queries (face/edge/vertex neighborhoods) the
// half-edge table alone doesn't provide directly.
type SearchableMesh[V any] struct {
	mesh Mesh[V]
	he   *HalfEdge
}

// NewSearchableMesh builds a SearchableMesh over m. Like HalfEdge itself,
// it only stays valid as long as m isn't mutated afterward.
func NewSearchableMesh[V any](m Mesh[V]) *SearchableMesh[V] {
	return &SearchableMesh[V]{mesh: m, he: NewHalfEdge(m)}
}

func (s *SearchableMesh[V]) NumVertices() int { return s.mesh.NumVertices() }
func (s *SearchableMesh[V]) NumFaces() int    { return s.mesh.NumFaces() }
func (s *SearchableMesh[V]) NumEdges() int    { return s.mesh.NumFaces() * 3 }

func (s *SearchableMesh[V]) FaceVertexIDs(id FId) (Face3, error) { return s.mesh.FaceVertexIDs(id) }
func (s *SearchableMesh[V]) Vertex(id VId) (V, error)            { return s.mesh.Vertex(id) }

// HalfEdge exposes the underlying table directly for callers that want
// the raw tail/next/prev/twin primitives.
func (s *SearchableMesh[V]) HalfEdge() *HalfEdge { return s.he }

func (s *SearchableMesh[V]) ensureFaceID(id FId) error {
	if id.Val < 0 || id.Val >= s.mesh.NumFaces() {
		return ErrIncorrectFaceID
	}
	return nil
}

// EdgesOfFace returns the three edge IDs belonging to a face.
func (s *SearchableMesh[V]) EdgesOfFace(id FId) (e1, e2, e3 EId, err error) {
	if err = s.ensureFaceID(id); err != nil {
		return
	}
	return EId{Val: id.Val*3 + 0}, EId{Val: id.Val*3 + 1}, EId{Val: id.Val*3 + 2}, nil
}

// EdgesOriginatingFromVertex appends to result every edge whose tail is vid.
func (s *SearchableMesh[V]) EdgesOriginatingFromVertex(vid VId, result []EId) ([]EId, error) {
	return s.he.appendEdgesOriginating(vid, result)
}

// EdgesEndingAtVertex appends to result every edge whose head is vid.
// cache holds the intermediate originating edges; hand the same buffer to
// repeated calls to avoid re-allocating it inside a loop.
func (s *SearchableMesh[V]) EdgesEndingAtVertex(vid VId, cache *[]EId, result []EId) ([]EId, error) {
	if err := s.fillOriginating(vid, cache); err != nil {
		return result, err
	}
	for _, e := range *cache {
		p, err := s.he.Prev(e)
		if err != nil {
			return result, err
		}
		result = append(result, p)
	}
	return result, nil
}

// EdgesOfVertex appends to result every edge connected to vid, both
// originating and ending. cache is scratch space as in EdgesEndingAtVertex.
func (s *SearchableMesh[V]) EdgesOfVertex(vid VId, cache *[]EId, result []EId) ([]EId, error) {
	if err := s.fillOriginating(vid, cache); err != nil {
		return result, err
	}
	for _, e := range *cache {
		p, err := s.he.Prev(e)
		if err != nil {
			return result, err
		}
		result = append(result, e, p)
	}
	return result, nil
}

func (s *SearchableMesh[V]) fillOriginating(vid VId, cache *[]EId) error {
	filled, err := s.he.appendEdgesOriginating(vid, (*cache)[:0])
	*cache = filled
	return err
}

func (s *SearchableMesh[V]) EdgeTail(id EId) (VId, error) { return s.he.Tail(id) }

// EdgeHead returns the vertex the edge points at (the tail of its next edge).
func (s *SearchableMesh[V]) EdgeHead(id EId) (VId, error) {
	next, err := s.he.Next(id)
	if err != nil {
		return VId{}, err
	}
	return s.he.Tail(next)
}

func (s *SearchableMesh[V]) EdgeNext(id EId) (EId, error) { return s.he.Next(id) }
func (s *SearchableMesh[V]) EdgePrev(id EId) (EId, error) { return s.he.Prev(id) }
func (s *SearchableMesh[V]) EdgeTwin(id EId) (EId, bool, error) { return s.he.Twin(id) }
func (s *SearchableMesh[V]) EdgeFace(id EId) (FId, error) { return s.he.Face(id) }

// FacesOfVertex appends to result every face vid is part of, using cache
// as scratch space for the originating-edge lookup.
func (s *SearchableMesh[V]) FacesOfVertex(vid VId, cache *[]EId, result []FId) ([]FId, error) {
	if err := s.fillOriginating(vid, cache); err != nil {
		return result, err
	}
	for _, e := range *cache {
		f, err := s.he.Face(e)
		if err != nil {
			return result, err
		}
		result = append(result, f)
	}
	return result, nil
}

// FaceEdgeNeighbours appends to result the faces sharing an edge with id
// (one per edge that has a twin).
func (s *SearchableMesh[V]) FaceEdgeNeighbours(id FId, result []FId) ([]FId, error) {
	e1, e2, e3, err := s.EdgesOfFace(id)
	if err != nil {
		return result, err
	}
	addTwinFace := func(e EId) {
		twin, ok, err := s.he.Twin(e)
		if err != nil || !ok {
			return
		}
		if f, err := s.he.Face(twin); err == nil {
			result = append(result, f)
		}
	}
	addTwinFace(e1)
	addTwinFace(e2)
	addTwinFace(e3)
	return result, nil
}

// FaceVertexNeighbours appends to result the faces sharing a vertex with
// id (id itself included, since it shares vertices with itself), sorted
// by FId and deduplicated. cache is scratch space as in FacesOfVertex.
func (s *SearchableMesh[V]) FaceVertexNeighbours(id FId, cache *[]EId, result []FId) ([]FId, error) {
	face, err := s.mesh.FaceVertexIDs(id)
	if err != nil {
		return result, err
	}

	for _, vid := range [3]VId{face.A, face.B, face.C} {
		result, err = s.FacesOfVertex(vid, cache, result)
		if err != nil {
			return result, err
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Val < result[j].Val })
	result = dedupFIds(result)
	return result, nil
}

func dedupFIds(ids []FId) []FId {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
