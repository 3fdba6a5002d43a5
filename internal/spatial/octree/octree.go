// Package octree provides a 3D octree over geom.Point3 values, built by
// recursive eight-way subdivision and queried through depth-limited
// collection that collapses deep subtrees to their centroid for LOD.
package octree

import (
	"github.com/martinbuck/geo3d/internal/config"
	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// direction names which half of each axis an octant occupies: P is the
// upper half of an axis, N the lower half, ordered x, y, z.
type direction int

const (
	ppp direction = iota
	ppn
	pnp
	pnn
	npp
	npn
	nnp
	nnn
)

var allDirections = [8]direction{ppp, ppn, pnp, pnn, npp, npn, nnp, nnn}

// node is either a single stored point (a leaf) or up to eight children,
// one per octant.
type node struct {
	leaf     bool
	point    geom.Point3
	children [8]*node // indexed by direction
}

// Tree is a 3D octree built once over a fixed set of (deduplicated)
// points; it never mutates afterward.
type Tree struct {
	root     *node
	min, max geom.Point3
}

// Build deduplicates points by bit-level position equality, computes
// their bounding box, and recursively subdivides into octants. Fails with
// geom.ErrTooFewPoints if points is empty; a single distinct position
// becomes a one-leaf tree.
func Build(points []geom.Point3) (*Tree, error) {
	defer profiling.Track("octree.Build")()

	if len(points) == 0 {
		return nil, geom.ErrTooFewPoints
	}

	seen := make(map[[3]uint64]struct{}, len(points))
	var unique []geom.Point3
	for _, p := range points {
		k := p.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, p)
	}

	if len(unique) == 1 {
		p := unique[0]
		return &Tree{root: &node{leaf: true, point: p}, min: p, max: p}, nil
	}

	bb, err := geom.BoundingBox3DFromPoints(unique...)
	if err != nil {
		// Only NaN coordinates reach this: -0.0 and +0.0 still give
		// bit-distinct min/max bounds, and buildNode collapses such
		// coordinate-coincident points to one leaf.
		return nil, err
	}

	tree := &Tree{root: buildNode(bb.Min(), bb.Max(), unique), min: bb.Min(), max: bb.Max()}
	profiling.Summary("octree.build", zap.Int("points", len(points)), zap.Int("unique", len(unique)))
	return tree, nil
}

func buildNode(min, max geom.Point3, points []geom.Point3) *node {
	// Bit-distinct points that coincide coordinate-wise (-0.0 vs +0.0)
	// can never be separated by an octant split; collapse them to one
	// leaf instead of recursing forever.
	if len(points) == 1 || allCoincident(points) {
		return &node{leaf: true, point: points[0]}
	}

	var buckets [8][]geom.Point3
	var bboxes [8][2]geom.Point3
	for _, d := range allDirections {
		lo, hi := subMinMax(d, min, max)
		bboxes[d] = [2]geom.Point3{lo, hi}
	}

	for _, p := range points {
		for _, d := range allDirections {
			if inBB(p, bboxes[d][0], bboxes[d][1]) {
				buckets[d] = append(buckets[d], p)
				break
			}
		}
	}

	n := &node{}
	for _, d := range allDirections {
		if len(buckets[d]) == 0 {
			continue
		}
		n.children[d] = buildNode(bboxes[d][0], bboxes[d][1], buckets[d])
	}
	return n
}

// subMinMax returns the (min, max) of the sub-box a direction occupies,
// splitting min/max at their midpoint on every axis.
func subMinMax(d direction, min, max geom.Point3) (geom.Point3, geom.Point3) {
	cx, cy, cz := (min.X()+max.X())/2, (min.Y()+max.Y())/2, (min.Z()+max.Z())/2

	xLo, xHi := min.X(), cx
	if isPositiveX(d) {
		xLo, xHi = cx, max.X()
	}
	yLo, yHi := min.Y(), cy
	if isPositiveY(d) {
		yLo, yHi = cy, max.Y()
	}
	zLo, zHi := min.Z(), cz
	if isPositiveZ(d) {
		zLo, zHi = cz, max.Z()
	}

	return geom.NewPoint3(xLo, yLo, zLo), geom.NewPoint3(xHi, yHi, zHi)
}

func isPositiveX(d direction) bool { return d == ppp || d == ppn || d == pnp || d == pnn }
func isPositiveY(d direction) bool { return d == ppp || d == ppn || d == npp || d == npn }
func isPositiveZ(d direction) bool { return d == ppp || d == pnp || d == npp || d == nnp }

func allCoincident(points []geom.Point3) bool {
	first := points[0]
	for _, p := range points[1:] {
		if p.X() != first.X() || p.Y() != first.Y() || p.Z() != first.Z() {
			return false
		}
	}
	return true
}

func inBB(p, min, max geom.Point3) bool {
	return p.X() >= min.X() && p.X() <= max.X() &&
		p.Y() >= min.Y() && p.Y() <= max.Y() &&
		p.Z() >= min.Z() && p.Z() <= max.Z()
}

// Size returns the number of distinct points stored in the tree.
func (t *Tree) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.size()
}

func (n *node) size() int {
	if n.leaf {
		return 1
	}
	total := 0
	for _, c := range n.children {
		if c != nil {
			total += c.size()
		}
	}
	return total
}

// CollectDefault collects using the configured default collect depth
// (see internal/config.GetOctreeCollectDepth).
func (t *Tree) CollectDefault() []geom.Point3 {
	return t.Collect(config.GetOctreeCollectDepth())
}

// Collect returns every point in the tree, except that any subtree
// rooted at depth maxDepth or deeper (the root is depth 0) is collapsed
// to its centroid (the unweighted arithmetic mean of the points it
// contains) instead of contributing its individual points. maxDepth < 0
// disables collapsing entirely (every stored point is returned).
func (t *Tree) Collect(maxDepth int) []geom.Point3 {
	var result []geom.Point3
	if t.root != nil {
		t.root.collect(0, maxDepth, &result)
	}
	return result
}

// collect emits this node's contribution into out. A node rooted at or
// beyond maxDepth collapses its entire subtree to one centroid point,
// regardless of how many children or leaves it holds below; otherwise it
// recurses into each child one level deeper.
func (n *node) collect(depth, maxDepth int, out *[]geom.Point3) {
	if n.leaf {
		*out = append(*out, n.point)
		return
	}

	if maxDepth >= 0 && depth >= maxDepth {
		var sub []geom.Point3
		n.collectAll(&sub)
		*out = append(*out, centroid(sub))
		return
	}

	for _, c := range n.children {
		if c != nil {
			c.collect(depth+1, maxDepth, out)
		}
	}
}

// collectAll gathers every leaf point under n, ignoring any depth cutoff.
func (n *node) collectAll(out *[]geom.Point3) {
	if n.leaf {
		*out = append(*out, n.point)
		return
	}
	for _, c := range n.children {
		if c != nil {
			c.collectAll(out)
		}
	}
}

func centroid(points []geom.Point3) geom.Point3 {
	sum := geom.Origin3()
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / float64(len(points)))
}
