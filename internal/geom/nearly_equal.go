package geom

import (
	"math"

	"github.com/martinbuck/geo3d/internal/config"
)

// NearlyEqual reports whether a and b are within the configured
// diagnostic epsilon of each other (internal/config.GetNearlyEqualEpsilon).
// This is a debugging/test convenience only: every dedup and ordering
// decision in this module compares bit patterns via Point2/Point3.Equal,
// never this.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= config.GetNearlyEqualEpsilon()
}
