// Package collide implements separating-axis-theorem collision testing
// over heterogeneous 3D shapes (axis-aligned boxes, oriented boxes, and
// triangles) via a single dispatch type, Collider3D.
package collide

import "github.com/martinbuck/geo3d/internal/geom"

// Object is satisfied by any shape the SAT collider can test: it must be
// able to enumerate its own vertices and its own set of candidate
// separating axes (its face normals, for a convex polytope).
type Object interface {
	ForEachPoint(f func(geom.Point3))
	ForEachAxis(f func(geom.Point3))
}

// Collide runs the separating axis theorem test between a and b: for
// every candidate axis either object offers, it projects both shapes'
// vertices onto that axis and checks whether the resulting intervals
// overlap. The shapes collide only if every axis's intervals overlap —
// finding a single separating axis is enough to rule it out.
func Collide(a, b Object) bool {
	allOverlap := true

	test := func(axis geom.Point3) {
		if !allOverlap {
			return
		}
		minA, maxA, haveA := projectExtent(a, axis)
		minB, maxB, haveB := projectExtent(b, axis)
		if !haveA || !haveB {
			return
		}
		if maxA < minB || maxB < minA {
			allOverlap = false
		}
	}

	a.ForEachAxis(test)
	b.ForEachAxis(test)
	return allOverlap
}

func projectExtent(o Object, axis geom.Point3) (min, max float64, have bool) {
	o.ForEachPoint(func(p geom.Point3) {
		x := p.Dot(axis)
		if !have {
			min, max, have = x, x, true
			return
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	})
	return
}
