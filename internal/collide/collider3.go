package collide

import "github.com/martinbuck/geo3d/internal/geom"

type colliderKind int

const (
	colliderAABB colliderKind = iota
	colliderOrientedBox
	colliderTriangle
)

// Collider3D is a closed set of the shapes the SAT dispatcher knows how
// to test against each other: an axis-aligned box, an oriented box, or a
// triangle. It's a tagged union (a kind tag plus one populated field)
// rather than an interface, so CollidesWith can dispatch on the concrete
// pair without a type switch at every call site.
//
// Sphere3D is deliberately not a variant here: a sphere's separating
// axis is the center-to-center vector, not a fixed face normal, so it
// doesn't fit the polytope-vs-polytope contract the other three share.
type Collider3D struct {
	kind     colliderKind
	aabb     geom.BoundingBox3D
	obox     geom.OrientedBox3D
	triangle geom.Triangle3D
}

// NewAABBCollider wraps a BoundingBox3D as a Collider3D.
func NewAABBCollider(bb geom.BoundingBox3D) Collider3D {
	return Collider3D{kind: colliderAABB, aabb: bb}
}

// NewOrientedBoxCollider wraps an OrientedBox3D as a Collider3D.
func NewOrientedBoxCollider(b geom.OrientedBox3D) Collider3D {
	return Collider3D{kind: colliderOrientedBox, obox: b}
}

// NewTriangleCollider wraps a Triangle3D as a Collider3D.
func NewTriangleCollider(t geom.Triangle3D) Collider3D {
	return Collider3D{kind: colliderTriangle, triangle: t}
}

func (c Collider3D) object() Object {
	switch c.kind {
	case colliderAABB:
		return c.aabb
	case colliderOrientedBox:
		return c.obox
	default:
		return c.triangle
	}
}

// CollidesWith reports whether c and o overlap. AABB-vs-AABB uses a
// direct interval test (no axis projection needed); every other pairing
// goes through the general SAT test.
func (c Collider3D) CollidesWith(o Collider3D) bool {
	if c.kind == colliderAABB && o.kind == colliderAABB {
		return c.aabb.CollidesWith(o.aabb)
	}
	return Collide(c.object(), o.object())
}

// BoundingBox3D returns the smallest axis-aligned box containing c,
// letting a Collider3D be stored directly in an aabbtree.Tree3D.
func (c Collider3D) BoundingBox3D() (geom.BoundingBox3D, error) {
	switch c.kind {
	case colliderAABB:
		return c.aabb, nil
	case colliderOrientedBox:
		return c.obox.BoundingBox3D()
	default:
		return c.triangle.BoundingBox3D()
	}
}

// HasAdditionalColliders reports true for an oriented box or a triangle
// and false for a plain AABB. WithColliders does not decompose any kind:
// it reports c itself in every case.
func (c Collider3D) HasAdditionalColliders() bool {
	return c.kind != colliderAABB
}

// WithColliders calls f with c itself. Shapes that decompose into finer
// collision geometry (a triangle mesh's faces, say) would call f once
// per sub-collider instead; a bare Collider3D has nothing finer to offer,
// so it just reports itself.
func (c Collider3D) WithColliders(f func(Collider3D)) {
	f(c)
}
