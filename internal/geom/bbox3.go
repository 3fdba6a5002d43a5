package geom

// BoundingBox3D is an axis-aligned bounding box in 3D space: a pair
// (min, max) with min[d] <= max[d] for every dimension d, and at least one
// dimension strictly less (the box has positive extent in some direction).
type BoundingBox3D struct {
	min, max Point3
}

// NewBoundingBox3D validates and builds a BoundingBox3D from min/max points.
func NewBoundingBox3D(min, max Point3) (BoundingBox3D, error) {
	if min.X() > max.X() || min.Y() > max.Y() || min.Z() > max.Z() {
		return BoundingBox3D{}, ErrMinMaxSwapped
	}
	if min.Equal(max) {
		return BoundingBox3D{}, ErrMinMaxEqual
	}
	return BoundingBox3D{min: min, max: max}, nil
}

// BoundingBox3DFromPoints computes the smallest box containing every given
// point. Fails with ErrTooFewPoints unless at least two points are given
// and they don't all coincide.
func BoundingBox3DFromPoints(points ...Point3) (BoundingBox3D, error) {
	if len(points) < 2 {
		return BoundingBox3D{}, ErrTooFewPoints
	}
	minX, minY, minZ := points[0].X(), points[0].Y(), points[0].Z()
	maxX, maxY, maxZ := minX, minY, minZ
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X()), max(maxX, p.X())
		minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
		minZ, maxZ = min(minZ, p.Z()), max(maxZ, p.Z())
	}
	return NewBoundingBox3D(NewPoint3(minX, minY, minZ), NewPoint3(maxX, maxY, maxZ))
}

func (b BoundingBox3D) Min() Point3 { return b.min }
func (b BoundingBox3D) Max() Point3 { return b.max }

// Center returns the midpoint of the box.
func (b BoundingBox3D) Center() Point3 {
	return NewPoint3(
		(b.min.X()+b.max.X())/2,
		(b.min.Y()+b.max.Y())/2,
		(b.min.Z()+b.max.Z())/2,
	)
}

func (b BoundingBox3D) SizeX() float64 { return b.max.X() - b.min.X() }
func (b BoundingBox3D) SizeY() float64 { return b.max.Y() - b.min.Y() }
func (b BoundingBox3D) SizeZ() float64 { return b.max.Z() - b.min.Z() }

// Consume extends b so that it also contains o, returning the union box.
func (b BoundingBox3D) Consume(o BoundingBox3D) BoundingBox3D {
	return BoundingBox3D{
		min: NewPoint3(min(b.min.X(), o.min.X()), min(b.min.Y(), o.min.Y()), min(b.min.Z(), o.min.Z())),
		max: NewPoint3(max(b.max.X(), o.max.X()), max(b.max.Y(), o.max.Y()), max(b.max.Z(), o.max.Z())),
	}
}

// CollidesWith reports whether b and o overlap (touching counts as overlap).
func (b BoundingBox3D) CollidesWith(o BoundingBox3D) bool {
	return b.min.X() <= o.max.X() && b.max.X() >= o.min.X() &&
		b.min.Y() <= o.max.Y() && b.max.Y() >= o.min.Y() &&
		b.min.Z() <= o.max.Z() && b.max.Z() >= o.min.Z()
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b BoundingBox3D) Contains(p Point3) bool {
	return p.X() >= b.min.X() && p.X() <= b.max.X() &&
		p.Y() >= b.min.Y() && p.Y() <= b.max.Y() &&
		p.Z() >= b.min.Z() && p.Z() <= b.max.Z()
}

// CrossingX reports whether the plane x=value intersects b.
func (b BoundingBox3D) CrossingX(value float64) bool {
	return value >= b.min.X() && value <= b.max.X()
}

// CrossingY reports whether the plane y=value intersects b.
func (b BoundingBox3D) CrossingY(value float64) bool {
	return value >= b.min.Y() && value <= b.max.Y()
}

// CrossingZ reports whether the plane z=value intersects b.
func (b BoundingBox3D) CrossingZ(value float64) bool {
	return value >= b.min.Z() && value <= b.max.Z()
}

// BoundingBox3D returns b itself, so a BoundingBox3D can be stored
// directly in an aabbtree.Tree3D without a wrapper type.
func (b BoundingBox3D) BoundingBox3D() (BoundingBox3D, error) { return b, nil }

// HasBoundingBox3D is implemented by anything an AABBTree3D can index: it
// must be able to report its own bounding box, or fail explicitly.
type HasBoundingBox3D interface {
	BoundingBox3D() (BoundingBox3D, error)
}

// ForEachPoint calls f with each of the box's eight corners, so a
// BoundingBox3D can stand in as a SAT collider object alongside
// Triangle3D and OrientedBox3D.
func (b BoundingBox3D) ForEachPoint(f func(Point3)) {
	for _, x := range [2]float64{b.min.X(), b.max.X()} {
		for _, y := range [2]float64{b.min.Y(), b.max.Y()} {
			for _, z := range [2]float64{b.min.Z(), b.max.Z()} {
				f(NewPoint3(x, y, z))
			}
		}
	}
}

// ForEachAxis calls f with the box's three axis-aligned candidate
// separating axes.
func (b BoundingBox3D) ForEachAxis(f func(Point3)) {
	f(NewPoint3(1, 0, 0))
	f(NewPoint3(0, 1, 0))
	f(NewPoint3(0, 0, 1))
}
