// Package mesh provides an indexed triangle mesh together with its
// half-edge connectivity and a search facade built on top of it.
package mesh

import "github.com/martinbuck/geo3d/internal/geom"

// Re-exported from geom so callers comparing with errors.Is get the same
// sentinel no matter which package raised it.
var (
	ErrIncorrectVertexID = geom.ErrIncorrectVertexID
	ErrIncorrectFaceID   = geom.ErrIncorrectFaceID
	ErrIncorrectEdgeID   = geom.ErrIncorrectEdgeID
)

// VId, EId and FId are nominal vertex/edge/face indices. They wrap a plain
// int so a VId can never be passed where an FId is expected, the way the
// zero-cost newtype IDs do in the corpus this package is modeled on.
type VId struct{ Val int }

// EId identifies a half-edge: it's a slot in the flattened edges array,
// three per face (EId{Val: 3*f}, 3*f+1, 3*f+2).
type EId struct{ Val int }

// FId identifies a face.
type FId struct{ Val int }
