package geom

// Triangle3D is a triangle given by three (not necessarily distinct)
// vertices in 3D space. Degenerate triangles (coincident or collinear
// vertices) are legal to construct; callers that need a non-degenerate
// triangle check Normal's error return.
type Triangle3D struct {
	a, b, c Point3
}

// NewTriangle3D builds a Triangle3D from its three vertices, in order.
func NewTriangle3D(a, b, c Point3) Triangle3D {
	return Triangle3D{a: a, b: b, c: c}
}

func (t Triangle3D) A() Point3 { return t.a }
func (t Triangle3D) B() Point3 { return t.b }
func (t Triangle3D) C() Point3 { return t.c }

// EdgeAB, EdgeBC and EdgeCA return the triangle's three edge vectors,
// each directed around the same winding as (a, b, c).
func (t Triangle3D) EdgeAB() Point3 { return t.b.Sub(t.a) }
func (t Triangle3D) EdgeBC() Point3 { return t.c.Sub(t.b) }
func (t Triangle3D) EdgeCA() Point3 { return t.a.Sub(t.c) }

// Normal returns the unit normal of the triangle's plane, following the
// right-hand rule for the (a, b, c) winding. Fails if the triangle is
// degenerate (its edges are parallel or zero-length).
func (t Triangle3D) Normal() (Point3, error) {
	return t.EdgeAB().Cross(t.EdgeBC()).Normalize()
}

// BoundingBox3D returns the smallest axis-aligned box containing all three
// vertices.
func (t Triangle3D) BoundingBox3D() (BoundingBox3D, error) {
	return BoundingBox3DFromPoints(t.a, t.b, t.c)
}

// Centroid returns the triangle's arithmetic-mean center.
func (t Triangle3D) Centroid() Point3 {
	return t.a.Add(t.b).Add(t.c).Scale(1.0 / 3.0)
}

// ForEachPoint calls f with each of the triangle's three vertices, in
// order. It satisfies the point-enumeration half of the SAT collider
// contract (internal/collide).
func (t Triangle3D) ForEachPoint(f func(Point3)) {
	f(t.a)
	f(t.b)
	f(t.c)
}

// ForEachAxis calls f with the triangle's candidate separating axes: the
// face normal plus one in-plane perpendicular per edge. Degenerate axes
// fall back to the z unit vector rather than being skipped, so the axis
// count stays fixed at four.
func (t Triangle3D) ForEachAxis(f func(Point3)) {
	vab := t.EdgeAB()
	vbc := t.EdgeBC()
	vca := t.EdgeCA()

	n := normalizeOrUnitZ(vab.Cross(vbc))
	e1 := normalizeOrUnitZ(n.Cross(vab))
	e2 := normalizeOrUnitZ(n.Cross(vbc))
	e3 := normalizeOrUnitZ(n.Cross(vca))

	f(n)
	f(e1)
	f(e2)
	f(e3)
}

func normalizeOrUnitZ(v Point3) Point3 {
	n, err := v.Normalize()
	if err != nil {
		return NewPoint3(0, 0, 1)
	}
	return n
}
