package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point2 is an immutable ordered pair of IEEE-754 doubles. See Point3 for
// the equality/ordering contract; Point2 follows the same rules in 2D.
type Point2 struct {
	v mgl64.Vec2
}

// NewPoint2 builds a Point2 from its two coordinates.
func NewPoint2(x, y float64) Point2 {
	return Point2{v: mgl64.Vec2{x, y}}
}

// Origin2 is the Point2 at (0, 0).
func Origin2() Point2 { return Point2{} }

func (p Point2) X() float64 { return p.v[0] }
func (p Point2) Y() float64 { return p.v[1] }

func (p Point2) Vec2() mgl64.Vec2 { return p.v }

func (p Point2) Add(o Point2) Point2 { return Point2{v: p.v.Add(o.v)} }
func (p Point2) Sub(o Point2) Point2 { return Point2{v: p.v.Sub(o.v)} }
func (p Point2) Dot(o Point2) float64 { return p.v.Dot(o.v) }

func (p Point2) SqrDist(o Point2) float64 {
	d := p.Sub(o)
	return d.Dot(d)
}

func (p Point2) Dist(o Point2) float64 { return math.Sqrt(p.SqrDist(o)) }

// Key returns a bit-level-comparable map key, mirroring Point3.Key.
func (p Point2) Key() [2]uint64 {
	return [2]uint64{bitsOf(p.v[0]), bitsOf(p.v[1])}
}

// Equal reports bit-level equality of p and o's coordinates.
func (p Point2) Equal(o Point2) bool { return p.Key() == o.Key() }

// Less orders by squared distance to the origin, tie-broken on x then y.
func (p Point2) Less(o Point2) bool {
	da, db := p.SqrDist(Origin2()), o.SqrDist(Origin2())
	if da != db {
		return da < db
	}
	if p.v[0] != o.v[0] {
		return p.v[0] < o.v[0]
	}
	return p.v[1] < o.v[1]
}
