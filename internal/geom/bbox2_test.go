package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBox2DRejectsSwappedMinMax(t *testing.T) {
	_, err := NewBoundingBox2D(NewPoint2(1, 0), NewPoint2(0, 1))
	assert.ErrorIs(t, err, ErrMinMaxSwapped)
}

func TestNewBoundingBox2DRejectsDegenerateBox(t *testing.T) {
	p := NewPoint2(1, 1)
	_, err := NewBoundingBox2D(p, p)
	assert.ErrorIs(t, err, ErrMinMaxEqual)
}

func TestBoundingBox2DFromPointsRequiresTwoPoints(t *testing.T) {
	_, err := BoundingBox2DFromPoints(NewPoint2(0, 0))
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestBoundingBox2DCollidesWith(t *testing.T) {
	a, err := NewBoundingBox2D(NewPoint2(0, 0), NewPoint2(2, 2))
	require.NoError(t, err)
	b, err := NewBoundingBox2D(NewPoint2(1, 1), NewPoint2(3, 3))
	require.NoError(t, err)
	c, err := NewBoundingBox2D(NewPoint2(10, 10), NewPoint2(11, 11))
	require.NoError(t, err)

	assert.True(t, a.CollidesWith(b))
	assert.False(t, a.CollidesWith(c))
}

func TestBoundingBox2DCrossingLines(t *testing.T) {
	bb, err := NewBoundingBox2D(NewPoint2(0, 0), NewPoint2(4, 4))
	require.NoError(t, err)

	assert.True(t, bb.CrossingX(2))
	assert.False(t, bb.CrossingX(5))
	assert.True(t, bb.CrossingY(0))
}

func TestBoundingBox2DConsume(t *testing.T) {
	a, err := NewBoundingBox2D(NewPoint2(0, 0), NewPoint2(1, 1))
	require.NoError(t, err)
	b, err := NewBoundingBox2D(NewPoint2(2, 2), NewPoint2(3, 3))
	require.NoError(t, err)

	u := a.Consume(b)
	assert.True(t, u.Min().Equal(NewPoint2(0, 0)))
	assert.True(t, u.Max().Equal(NewPoint2(3, 3)))
}
