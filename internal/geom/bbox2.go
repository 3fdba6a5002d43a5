package geom

// BoundingBox2D is the 2D analogue of BoundingBox3D: a (min, max) pair with
// min[d] <= max[d] per dimension and positive extent in at least one.
type BoundingBox2D struct {
	min, max Point2
}

// NewBoundingBox2D validates and builds a BoundingBox2D from min/max points.
func NewBoundingBox2D(min, max Point2) (BoundingBox2D, error) {
	if min.X() > max.X() || min.Y() > max.Y() {
		return BoundingBox2D{}, ErrMinMaxSwapped
	}
	if min.Equal(max) {
		return BoundingBox2D{}, ErrMinMaxEqual
	}
	return BoundingBox2D{min: min, max: max}, nil
}

// BoundingBox2DFromPoints computes the smallest box containing every given
// point. Fails with ErrTooFewPoints unless at least two points are given
// and they don't all coincide.
func BoundingBox2DFromPoints(points ...Point2) (BoundingBox2D, error) {
	if len(points) < 2 {
		return BoundingBox2D{}, ErrTooFewPoints
	}
	minX, minY := points[0].X(), points[0].Y()
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X()), max(maxX, p.X())
		minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
	}
	return NewBoundingBox2D(NewPoint2(minX, minY), NewPoint2(maxX, maxY))
}

func (b BoundingBox2D) Min() Point2 { return b.min }
func (b BoundingBox2D) Max() Point2 { return b.max }

// Center returns the midpoint of the box.
func (b BoundingBox2D) Center() Point2 {
	return NewPoint2((b.min.X()+b.max.X())/2, (b.min.Y()+b.max.Y())/2)
}

func (b BoundingBox2D) SizeX() float64 { return b.max.X() - b.min.X() }
func (b BoundingBox2D) SizeY() float64 { return b.max.Y() - b.min.Y() }

// Consume extends b so that it also contains o, returning the union box.
func (b BoundingBox2D) Consume(o BoundingBox2D) BoundingBox2D {
	return BoundingBox2D{
		min: NewPoint2(min(b.min.X(), o.min.X()), min(b.min.Y(), o.min.Y())),
		max: NewPoint2(max(b.max.X(), o.max.X()), max(b.max.Y(), o.max.Y())),
	}
}

// CollidesWith reports whether b and o overlap (touching counts as overlap).
func (b BoundingBox2D) CollidesWith(o BoundingBox2D) bool {
	return b.min.X() <= o.max.X() && b.max.X() >= o.min.X() &&
		b.min.Y() <= o.max.Y() && b.max.Y() >= o.min.Y()
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b BoundingBox2D) Contains(p Point2) bool {
	return p.X() >= b.min.X() && p.X() <= b.max.X() &&
		p.Y() >= b.min.Y() && p.Y() <= b.max.Y()
}

// CrossingX reports whether the line x=value intersects b.
func (b BoundingBox2D) CrossingX(value float64) bool {
	return value >= b.min.X() && value <= b.max.X()
}

// CrossingY reports whether the line y=value intersects b.
func (b BoundingBox2D) CrossingY(value float64) bool {
	return value >= b.min.Y() && value <= b.max.Y()
}

// BoundingBox2D returns b itself, so a BoundingBox2D can be stored
// directly in an aabbtree.Tree2D without a wrapper type.
func (b BoundingBox2D) BoundingBox2D() (BoundingBox2D, error) { return b, nil }

// HasBoundingBox2D is implemented by anything an AABBTree2D can index.
type HasBoundingBox2D interface {
	BoundingBox2D() (BoundingBox2D, error)
}
