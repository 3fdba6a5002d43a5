package config

import "sync"

// BuildSettings holds the tunable defaults used when a caller doesn't
// specify their own build parameters for a spatial index.
type BuildSettings struct {
	mu                 sync.RWMutex
	aabbTreeMaxDepth   int // default recursion cutoff for AABBTree2D/3D
	octreeCollectDepth int // default max_depth passed to Octree.Collect
	nearlyEqualEpsilon float64
}

var global = &BuildSettings{
	aabbTreeMaxDepth:   16,
	octreeCollectDepth: -1, // -1 means "every stored point"
	nearlyEqualEpsilon: 1e-9,
}

// GetAABBTreeMaxDepth returns the default max recursion depth for AABBTree builds.
func GetAABBTreeMaxDepth() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.aabbTreeMaxDepth
}

// SetAABBTreeMaxDepth sets the default max recursion depth for AABBTree builds.
func SetAABBTreeMaxDepth(depth int) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if depth < 0 {
		depth = 0
	}
	if depth > 64 {
		depth = 64
	}

	global.aabbTreeMaxDepth = depth
}

// GetOctreeCollectDepth returns the default max_depth for Octree.Collect.
func GetOctreeCollectDepth() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.octreeCollectDepth
}

// SetOctreeCollectDepth sets the default max_depth for Octree.Collect.
// Negative values mean "collect every stored point" (no LOD collapsing).
func SetOctreeCollectDepth(depth int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if depth > 64 {
		depth = 64
	}
	global.octreeCollectDepth = depth
}

// GetNearlyEqualEpsilon returns the epsilon used by diagnostics that compare
// floats for "nearly equal" (e.g. test helpers, logging). It has no bearing
// on the documented bit-exact invariants (dedup, tie-breaks), which never
// use it.
func GetNearlyEqualEpsilon() float64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.nearlyEqualEpsilon
}

// SetNearlyEqualEpsilon sets the epsilon used by diagnostics.
func SetNearlyEqualEpsilon(eps float64) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if eps < 0 {
		eps = 0
	}
	global.nearlyEqualEpsilon = eps
}
