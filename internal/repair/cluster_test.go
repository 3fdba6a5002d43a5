package repair

import (
	"testing"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridMesh() *mesh.IndexedMesh[geom.Point3] {
	// Two triangles spanning a 10x10x10 cube, vertices spread across it.
	vertices := []geom.Point3{
		geom.NewPoint3(0, 0, 0),
		geom.NewPoint3(10, 0, 0),
		geom.NewPoint3(0, 10, 0),
		geom.NewPoint3(10, 10, 10),
	}
	faces := []mesh.Face3{
		{A: mesh.VId{Val: 0}, B: mesh.VId{Val: 1}, C: mesh.VId{Val: 2}},
		{A: mesh.VId{Val: 1}, B: mesh.VId{Val: 2}, C: mesh.VId{Val: 3}},
	}
	return mesh.NewIndexedMesh(vertices, faces)
}

func TestClusterVerticesTooBigGuard(t *testing.T) {
	m := gridMesh()
	_, err := ClusterVertices(m, 100) // one cell covers the whole box: fewer than two per axis
	assert.ErrorIs(t, err, ErrClusterTooBig)
}

func TestClusterVerticesCollapsesNearbyPoints(t *testing.T) {
	m := gridMesh()
	clustered, err := ClusterVertices(m, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, clustered.NumVertices(), m.NumVertices())
}
