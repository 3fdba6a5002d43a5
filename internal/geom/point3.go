package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is an immutable ordered triple of IEEE-754 doubles.
//
// Equal compares bit patterns (so -0.0 and +0.0 differ, and two NaN
// payloads with identical bits are equal even though IEEE-754 `==` would
// say no); Less orders by squared distance to the origin with a
// coordinate-wise tie-break on x, then y, then z.
type Point3 struct {
	v mgl64.Vec3
}

// NewPoint3 builds a Point3 from its three coordinates.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{v: mgl64.Vec3{x, y, z}}
}

// Origin3 is the Point3 at (0, 0, 0).
func Origin3() Point3 { return Point3{} }

func (p Point3) X() float64 { return p.v[0] }
func (p Point3) Y() float64 { return p.v[1] }
func (p Point3) Z() float64 { return p.v[2] }

// Vec3 exposes the underlying mgl64.Vec3 for callers that want raw vector
// algebra (e.g. the SAT collider's axis projections).
func (p Point3) Vec3() mgl64.Vec3 { return p.v }

// Add returns the coordinate-wise sum of two points treated as vectors.
func (p Point3) Add(o Point3) Point3 { return Point3{v: p.v.Add(o.v)} }

// Sub returns the vector from o to p (p - o).
func (p Point3) Sub(o Point3) Point3 { return Point3{v: p.v.Sub(o.v)} }

// Scale multiplies every coordinate by s.
func (p Point3) Scale(s float64) Point3 { return Point3{v: p.v.Mul(s)} }

// Dot returns the dot product of p and o treated as vectors.
func (p Point3) Dot(o Point3) float64 { return p.v.Dot(o.v) }

// Cross returns the cross product p x o.
func (p Point3) Cross(o Point3) Point3 { return Point3{v: p.v.Cross(o.v)} }

// Len returns the Euclidean length of p treated as a vector from the origin.
func (p Point3) Len() float64 { return p.v.Len() }

// Normalize returns p scaled to unit length. Fails if p has zero length.
func (p Point3) Normalize() (Point3, error) {
	l := p.Len()
	if l == 0 {
		return Point3{}, ErrNormalizeVecWithoutLen
	}
	return Point3{v: p.v.Mul(1.0 / l)}, nil
}

// SqrDist returns the squared Euclidean distance between p and o.
func (p Point3) SqrDist(o Point3) float64 {
	d := p.Sub(o)
	return d.Dot(d)
}

// Dist returns the Euclidean distance between p and o.
func (p Point3) Dist(o Point3) float64 {
	return math.Sqrt(p.SqrDist(o))
}

// bitsOf returns the bit-level encoding of a float64. No normalization:
// +0.0 and -0.0 keep their distinct bit patterns.
func bitsOf(f float64) uint64 { return math.Float64bits(f) }

// Key returns a comparable value suitable as a Go map key that implements
// bit-level equality/hashing on the three coordinates (dedup relies on
// this rather than on Go's `==`, which treats -0.0 == +0.0 and
// NaN != NaN).
func (p Point3) Key() [3]uint64 {
	return [3]uint64{bitsOf(p.v[0]), bitsOf(p.v[1]), bitsOf(p.v[2])}
}

// Equal reports bit-level equality of p and o's coordinates.
func (p Point3) Equal(o Point3) bool {
	return p.Key() == o.Key()
}

// Less orders by squared distance to the origin, tie-broken
// coordinate-wise (x, then y, then z).
func (p Point3) Less(o Point3) bool {
	da, db := p.SqrDist(Origin3()), o.SqrDist(Origin3())
	if da != db {
		return da < db
	}
	if p.v[0] != o.v[0] {
		return p.v[0] < o.v[0]
	}
	if p.v[1] != o.v[1] {
		return p.v[1] < o.v[1]
	}
	return p.v[2] < o.v[2]
}
