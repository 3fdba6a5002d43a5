package mesh

import (
	"testing"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTriangleMesh() *IndexedMesh[geom.Point3] {
	vertices := []geom.Point3{
		geom.NewPoint3(0, 0, 0), // A = 0
		geom.NewPoint3(1, 0, 0), // B = 1
		geom.NewPoint3(0, 1, 0), // C = 2
		geom.NewPoint3(1, 1, 0), // D = 3
	}
	faces := []Face3{
		{A: VId{0}, B: VId{1}, C: VId{2}}, // A, B, C
		{A: VId{1}, B: VId{3}, C: VId{2}}, // B, D, C (shares the B-C edge, opposite winding)
	}
	return NewIndexedMesh(vertices, faces)
}

func TestHalfEdgeBuildsThreeEdgesPerFace(t *testing.T) {
	m := twoTriangleMesh()
	he := NewHalfEdge[geom.Point3](m)

	_, err := he.Tail(EId{Val: 6})
	assert.ErrorIs(t, err, ErrIncorrectEdgeID)

	for i := 0; i < 6; i++ {
		_, err := he.Tail(EId{Val: i})
		require.NoError(t, err)
	}
}

func TestHalfEdgeNextPrevCycleWithinFace(t *testing.T) {
	m := twoTriangleMesh()
	he := NewHalfEdge[geom.Point3](m)

	e0 := EId{Val: 0}
	e1, err := he.Next(e0)
	require.NoError(t, err)
	e2, err := he.Next(e1)
	require.NoError(t, err)
	back, err := he.Next(e2)
	require.NoError(t, err)
	assert.Equal(t, e0, back, "next x3 must return to the starting edge within a face")

	prev, err := he.Prev(e0)
	require.NoError(t, err)
	assert.Equal(t, e2, prev)
}

func TestHalfEdgeFindsTwinAcrossSharedEdge(t *testing.T) {
	m := twoTriangleMesh()
	he := NewHalfEdge[geom.Point3](m)

	foundTwin := false
	for i := 0; i < he.NumEdgesForTest(); i++ {
		id := EId{Val: i}
		twin, ok, err := he.Twin(id)
		require.NoError(t, err)
		if !ok {
			continue
		}
		foundTwin = true

		head, err := he.Tail(mustNext(t, he, id))
		require.NoError(t, err)
		twinTail, err := he.Tail(twin)
		require.NoError(t, err)
		assert.Equal(t, head, twinTail, "an edge's head must equal its twin's tail")

		backTwin, ok, err := he.Twin(twin)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, id, backTwin, "twin relationship must be symmetric")
	}
	assert.True(t, foundTwin, "the two triangles share an edge and must resolve a twin")
}

func mustNext(t *testing.T, he *HalfEdge, id EId) EId {
	t.Helper()
	next, err := he.Next(id)
	require.NoError(t, err)
	return next
}

// NumEdgesForTest exposes the edge count without making the field public;
// defined here since production code has no caller that needs it.
func (he *HalfEdge) NumEdgesForTest() int { return len(he.edges) }

func TestSearchableMeshFaceVertexNeighboursSortsAndDedups(t *testing.T) {
	m := twoTriangleMesh()
	sm := NewSearchableMesh[geom.Point3](m)

	var cache []EId
	result, err := sm.FaceVertexNeighbours(FId{Val: 0}, &cache, nil)
	require.NoError(t, err)
	assert.Equal(t, []FId{{Val: 0}, {Val: 1}}, result)
}
