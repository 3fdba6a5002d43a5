package collide

import (
	"testing"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestCollideCommutative(t *testing.T) {
	a := geom.NewTriangle3D(geom.NewPoint3(0, 0, 0), geom.NewPoint3(2, 0, 0), geom.NewPoint3(0, 2, 0))
	b := geom.NewTriangle3D(geom.NewPoint3(1, 0, 0), geom.NewPoint3(3, 0, 0), geom.NewPoint3(1, 2, 0))
	assert.Equal(t, Collide(a, b), Collide(b, a))

	c := geom.NewTriangle3D(geom.NewPoint3(100, 100, 100), geom.NewPoint3(101, 100, 100), geom.NewPoint3(100, 101, 100))
	assert.Equal(t, Collide(a, c), Collide(c, a))
}

func TestCollideSeparatedOnSingleAxis(t *testing.T) {
	a := geom.NewTriangle3D(geom.NewPoint3(0, 0, 0), geom.NewPoint3(1, 0, 0), geom.NewPoint3(0, 1, 0))
	b := geom.NewTriangle3D(geom.NewPoint3(10, 0, 0), geom.NewPoint3(11, 0, 0), geom.NewPoint3(10, 1, 0))
	assert.False(t, Collide(a, b))
}

func TestCollideOverlapping(t *testing.T) {
	a := geom.NewTriangle3D(geom.NewPoint3(0, 0, 0), geom.NewPoint3(2, 0, 0), geom.NewPoint3(0, 2, 0))
	b := geom.NewTriangle3D(geom.NewPoint3(1, 1, 0), geom.NewPoint3(3, 1, 0), geom.NewPoint3(1, 3, 0))
	assert.True(t, Collide(a, b))
}
