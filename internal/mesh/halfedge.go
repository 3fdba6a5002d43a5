package mesh

import (
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// edge is the half-edge table's per-slot record: which vertex it
// originates from, and which edge (if any) is its twin.
type edge struct {
	tail    VId
	twin    EId
	hasTwin bool
}

// HalfEdge is the half-edge connectivity table derived from a Mesh: for
// every face, three consecutive edge slots (face f owns slots 3f, 3f+1,
// 3f+2), each edge's tail vertex, and an optional twin slot on the
// opposing face sharing the same undirected edge.
//
// Built once over a snapshot of a Mesh; it stays valid only as long as
// the mesh's vertex/face slices aren't mutated afterward.
type HalfEdge struct {
	edges              []edge
	verticesStartEdges [][]EId
}

// NewHalfEdge builds the half-edge table for mesh. Non-manifold meshes
// are accepted rather than rejected: where more than one candidate twin
// exists for an edge (a non-manifold fan), the first one found during the
// scan becomes its twin. Every edge runs its own scan, so on such a fan
// the twin links need not be symmetric.
func NewHalfEdge[V any](m Mesh[V]) *HalfEdge {
	defer profiling.Track("mesh.NewHalfEdge")()

	nFaces := m.NumFaces()

	edges := make([]edge, 0, 3*nFaces)
	var verticesStartEdges [][]EId

	appendStart := func(vid VId, eid EId) {
		for len(verticesStartEdges) <= vid.Val {
			verticesStartEdges = append(verticesStartEdges, nil)
		}
		verticesStartEdges[vid.Val] = append(verticesStartEdges[vid.Val], eid)
	}

	for i := 0; i < nFaces; i++ {
		face, err := m.FaceVertexIDs(FId{Val: i})
		if err != nil {
			continue
		}
		edges = append(edges,
			edge{tail: face.A},
			edge{tail: face.B},
			edge{tail: face.C},
		)
		appendStart(face.A, EId{Val: i*3 + 0})
		appendStart(face.B, EId{Val: i*3 + 1})
		appendStart(face.C, EId{Val: i*3 + 2})
	}

	he := &HalfEdge{edges: edges, verticesStartEdges: verticesStartEdges}

	// For each edge, find the tail of its next edge, then every edge
	// originating from that vertex; among those, the one whose own
	// next edge shares the same tail as the edge we started from is
	// its twin. The first such candidate found wins.
	for i := range he.edges {
		id := EId{Val: i}
		nextID, err := he.Next(id)
		if err != nil {
			continue
		}
		sharedVertex := he.edges[nextID.Val].tail
		originating, err := he.EdgesOriginating(sharedVertex)
		if err != nil {
			continue
		}
		for _, candidate := range originating {
			candNext, err := he.Next(candidate)
			if err != nil {
				continue
			}
			if he.edges[candNext.Val].tail == he.edges[i].tail {
				he.edges[i].twin = candidate
				he.edges[i].hasTwin = true
				break
			}
		}
	}

	boundary := 0
	for i := range he.edges {
		if !he.edges[i].hasTwin {
			boundary++
		}
	}
	profiling.Summary("halfedge.build",
		zap.Int("faces", nFaces),
		zap.Int("edges", len(he.edges)),
		zap.Int("boundary_edges", boundary),
	)

	return he
}

// Tail returns the vertex the edge originates from.
func (he *HalfEdge) Tail(id EId) (VId, error) {
	if err := he.ensureEdgeID(id); err != nil {
		return VId{}, err
	}
	return he.edges[id.Val].tail, nil
}

// Face returns the face the edge belongs to.
func (he *HalfEdge) Face(id EId) (FId, error) {
	if err := he.ensureEdgeID(id); err != nil {
		return FId{}, err
	}
	return FId{Val: id.Val / 3}, nil
}

// Twin returns the edge's twin, if any.
func (he *HalfEdge) Twin(id EId) (EId, bool, error) {
	if err := he.ensureEdgeID(id); err != nil {
		return EId{}, false, err
	}
	e := he.edges[id.Val]
	return e.twin, e.hasTwin, nil
}

// Next returns the edge following id within its face.
func (he *HalfEdge) Next(id EId) (EId, error) {
	if err := he.ensureEdgeID(id); err != nil {
		return EId{}, err
	}
	if lastInFace(id) {
		return EId{Val: id.Val - 2}, nil
	}
	return EId{Val: id.Val + 1}, nil
}

// Prev returns the edge preceding id within its face.
func (he *HalfEdge) Prev(id EId) (EId, error) {
	if err := he.ensureEdgeID(id); err != nil {
		return EId{}, err
	}
	if firstInFace(id) {
		return EId{Val: id.Val + 2}, nil
	}
	return EId{Val: id.Val - 1}, nil
}

// EdgesOriginating returns every edge whose tail is vid.
func (he *HalfEdge) EdgesOriginating(vid VId) ([]EId, error) {
	if err := he.ensureVertexID(vid); err != nil {
		return nil, err
	}
	out := make([]EId, len(he.verticesStartEdges[vid.Val]))
	copy(out, he.verticesStartEdges[vid.Val])
	return out, nil
}

// appendEdgesOriginating appends every edge whose tail is vid to out,
// without allocating a fresh slice when out has capacity. Used by
// SearchableMesh's buffer-supplied query variants.
func (he *HalfEdge) appendEdgesOriginating(vid VId, out []EId) ([]EId, error) {
	if err := he.ensureVertexID(vid); err != nil {
		return out, err
	}
	return append(out, he.verticesStartEdges[vid.Val]...), nil
}

// EdgesEnding returns every edge whose head is vid.
func (he *HalfEdge) EdgesEnding(vid VId) ([]EId, error) {
	originating, err := he.EdgesOriginating(vid)
	if err != nil {
		return nil, err
	}
	out := make([]EId, 0, len(originating))
	for _, e := range originating {
		p, err := he.Prev(e)
		if err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// EdgesAll returns every edge connected to vid, both originating and ending.
func (he *HalfEdge) EdgesAll(vid VId) ([]EId, error) {
	originating, err := he.EdgesOriginating(vid)
	if err != nil {
		return nil, err
	}
	out := make([]EId, 0, 2*len(originating))
	for _, e := range originating {
		out = append(out, e)
		if p, err := he.Prev(e); err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// Faces returns every face vid is part of.
func (he *HalfEdge) Faces(vid VId) ([]FId, error) {
	originating, err := he.EdgesOriginating(vid)
	if err != nil {
		return nil, err
	}
	out := make([]FId, 0, len(originating))
	for _, e := range originating {
		if f, err := he.Face(e); err == nil {
			out = append(out, f)
		}
	}
	return out, nil
}

func firstInFace(id EId) bool { return id.Val%3 == 0 }
func lastInFace(id EId) bool  { return id.Val%3 == 2 }

func (he *HalfEdge) ensureEdgeID(id EId) error {
	if id.Val < 0 || id.Val >= len(he.edges) {
		return ErrIncorrectEdgeID
	}
	return nil
}

func (he *HalfEdge) ensureVertexID(id VId) error {
	if id.Val < 0 || id.Val >= len(he.verticesStartEdges) {
		return ErrIncorrectVertexID
	}
	return nil
}
