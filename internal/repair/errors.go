// Package repair provides mesh-cleanup algorithms: vertex deduplication
// and degenerate-face removal (Heal), grid-based vertex clustering
// (ClusterVertices), and consistent face-winding propagation (UnifyFaces).
package repair

import "github.com/martinbuck/geo3d/internal/geom"

// ErrClusterTooBig and ErrBoundingBoxMissing are re-exported from geom so
// callers of this package don't need to import geom just to compare
// errors with errors.Is.
var (
	ErrClusterTooBig      = geom.ErrClusterTooBig
	ErrBoundingBoxMissing = geom.ErrBoundingBoxMissing
)
