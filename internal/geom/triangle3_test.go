package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangle3DNormal(t *testing.T) {
	tri := NewTriangle3D(NewPoint3(0, 0, 0), NewPoint3(1, 0, 0), NewPoint3(0, 1, 0))
	n, err := tri.Normal()
	require.NoError(t, err)
	assert.True(t, n.Equal(NewPoint3(0, 0, 1)))
}

func TestTriangle3DNormalDegenerate(t *testing.T) {
	p := NewPoint3(1, 1, 1)
	tri := NewTriangle3D(p, p, p)
	_, err := tri.Normal()
	assert.ErrorIs(t, err, ErrNormalizeVecWithoutLen)
}

func TestTriangle3DBoundingBox(t *testing.T) {
	tri := NewTriangle3D(NewPoint3(0, 0, 0), NewPoint3(2, 0, 0), NewPoint3(0, 2, 0))
	bb, err := tri.BoundingBox3D()
	require.NoError(t, err)
	assert.True(t, bb.Min().Equal(NewPoint3(0, 0, 0)))
	assert.True(t, bb.Max().Equal(NewPoint3(2, 2, 0)))
}

func TestTriangle3DCentroid(t *testing.T) {
	tri := NewTriangle3D(NewPoint3(0, 0, 0), NewPoint3(3, 0, 0), NewPoint3(0, 3, 0))
	c := tri.Centroid()
	assert.InDelta(t, 1.0, c.X(), 1e-12)
	assert.InDelta(t, 1.0, c.Y(), 1e-12)
}

func TestTriangle3DForEachPointAndAxis(t *testing.T) {
	tri := NewTriangle3D(NewPoint3(0, 0, 0), NewPoint3(1, 0, 0), NewPoint3(0, 1, 0))

	var points []Point3
	tri.ForEachPoint(func(p Point3) { points = append(points, p) })
	assert.Len(t, points, 3)

	var axes []Point3
	tri.ForEachAxis(func(a Point3) { axes = append(axes, a) })
	require.Len(t, axes, 4)
	assert.True(t, axes[0].Equal(NewPoint3(0, 0, 1)), "first axis is the face normal")
	for _, a := range axes {
		assert.InDelta(t, 1.0, a.Len(), 1e-12, "every axis is unit length")
	}
	// The edge perpendiculars lie in the triangle's plane, orthogonal to
	// both the normal and their edge.
	assert.InDelta(t, 0.0, axes[1].Dot(axes[0]), 1e-12)
	assert.InDelta(t, 0.0, axes[1].Dot(tri.EdgeAB()), 1e-12)
	assert.InDelta(t, 0.0, axes[2].Dot(tri.EdgeBC()), 1e-12)
	assert.InDelta(t, 0.0, axes[3].Dot(tri.EdgeCA()), 1e-12)
}

func TestTriangle3DForEachAxisDegenerateFallsBackToUnitZ(t *testing.T) {
	p := NewPoint3(1, 1, 1)
	tri := NewTriangle3D(p, p, p)

	var axes []Point3
	tri.ForEachAxis(func(a Point3) { axes = append(axes, a) })
	require.Len(t, axes, 4)
	for _, a := range axes {
		assert.True(t, a.Equal(NewPoint3(0, 0, 1)))
	}
}
