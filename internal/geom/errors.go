// Package geom provides the 2D/3D geometric primitives the rest of the
// module builds on: points, axis-aligned bounding boxes, triangles, and
// oriented boxes, plus the small set of vector helpers (dot, cross,
// normalize) they're built from.
package geom

import "errors"

// The error kinds raised across this module, one sentinel per kind;
// callers compare with errors.Is. Packages that raise a subset re-export
// the relevant sentinels under their own name.
var (
	// Index errors.
	ErrIncorrectEdgeID   = errors.New("geom3d: incorrect edge id")
	ErrIncorrectVertexID = errors.New("geom3d: incorrect vertex id")
	ErrIncorrectFaceID   = errors.New("geom3d: incorrect face id")
	ErrIndexOutOfBounds  = errors.New("geom3d: index out of bounds")

	// Geometry errors.
	ErrBoundingBoxMissing     = errors.New("geom3d: bounding box missing")
	ErrMinMaxSwapped          = errors.New("geom3d: min/max swapped")
	ErrMinMaxEqual            = errors.New("geom3d: min and max are equal in every dimension")
	ErrTooFewPoints           = errors.New("geom3d: too few points")
	ErrNormalizeVecWithoutLen = errors.New("geom3d: cannot normalize a zero-length vector")

	// Numeric errors.
	ErrNumberInWrongRange        = errors.New("geom3d: number outside the allowed range")
	ErrNumberConversion          = errors.New("geom3d: number conversion error")
	ErrCantCalculateAngleZeroLen = errors.New("geom3d: cannot calculate angle for a zero-length vector")
	ErrDimensionsDontMatch       = errors.New("geom3d: dimensions don't match")

	// Repair errors.
	ErrClusterTooBig = errors.New("geom3d: cluster grid has fewer than two cells on some axis")
)
