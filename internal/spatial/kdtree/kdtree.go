// Package kdtree provides a 3D k-d tree over geom.Point3 values, built by
// repeated median splits and queried via k-nearest-neighbor, in-sphere and
// in-box range search.
package kdtree

import (
	"math"
	"sort"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// node is a k-d tree node: a median point on a cycling axis (x, y, z, x,
// y, z, ...), with up to two children holding the points below/above it
// on that axis.
type node struct {
	left, right *node
	val         geom.Point3
	axis        int
}

// Tree is a 3D k-d tree. The zero Tree is valid and every query on it
// returns nothing.
type Tree struct {
	root *node
}

// Build constructs a Tree from points by recursively splitting on the
// median along an axis that cycles x, y, z with tree depth. Fails with
// geom.ErrTooFewPoints if points is empty.
func Build(points []geom.Point3) (*Tree, error) {
	defer profiling.Track("kdtree.Build")()

	if len(points) == 0 {
		return nil, geom.ErrTooFewPoints
	}
	cp := make([]geom.Point3, len(points))
	copy(cp, points)
	tree := &Tree{root: buildNode(0, cp)}
	profiling.Summary("kdtree.build", zap.Int("points", len(points)))
	return tree, nil
}

func buildNode(axis int, points []geom.Point3) *node {
	axis = axis % 3
	if len(points) == 1 {
		return &node{val: points[0], axis: axis}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return coordinate(points[i], axis) < coordinate(points[j], axis)
	})

	median := len(points) / 2
	left := points[:median]
	right := points[median+1:]
	val := points[median]

	n := &node{val: val, axis: axis}
	if len(left) > 0 {
		n.left = buildNode(axis+1, left)
	}
	if len(right) > 0 {
		n.right = buildNode(axis+1, right)
	}
	return n
}

func coordinate(p geom.Point3, axis int) float64 {
	switch axis {
	case 0:
		return p.X()
	case 1:
		return p.Y()
	default:
		return p.Z()
	}
}

// Size returns the number of points stored in the tree.
func (t *Tree) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.size()
}

func (n *node) size() int {
	result := 1
	if n.left != nil {
		result += n.left.size()
	}
	if n.right != nil {
		result += n.right.size()
	}
	return result
}

// Points returns every point stored in the tree, in left-root-right order.
func (t *Tree) Points() []geom.Point3 {
	var out []geom.Point3
	if t.root != nil {
		t.root.collect(&out)
	}
	return out
}

func (n *node) collect(out *[]geom.Point3) {
	if n.left != nil {
		n.left.collect(out)
	}
	*out = append(*out, n.val)
	if n.right != nil {
		n.right.collect(out)
	}
}

// KNearest returns up to n points closest to search, nearest first, tied
// distances broken by discovery order.
func (t *Tree) KNearest(search geom.Point3, n int) []geom.Point3 {
	if n < 1 || t.root == nil {
		return nil
	}
	var result []geom.Point3
	t.root.knearest(search, n, &result)
	return result
}

// Nearest returns the single closest point to search, if the tree isn't empty.
func (t *Tree) Nearest(search geom.Point3) (geom.Point3, bool) {
	result := t.KNearest(search, 1)
	if len(result) == 0 {
		return geom.Point3{}, false
	}
	return result[0], true
}

func sortAndLimit(result *[]geom.Point3, search geom.Point3, n int) {
	sort.SliceStable(*result, func(i, j int) bool {
		return (*result)[i].SqrDist(search) < (*result)[j].SqrDist(search)
	})
	if len(*result) > n {
		*result = (*result)[:n]
	}
}

func (nd *node) knearest(search geom.Point3, n int, result *[]geom.Point3) {
	sortAndLimit(result, search, n)
	if len(*result) < n || search.SqrDist(nd.val) < search.SqrDist((*result)[len(*result)-1]) {
		*result = append(*result, nd.val)
	}

	cmp := dimensionCompare(search, nd.val, nd.axis)
	if cmp < 0 {
		if nd.left != nil {
			nd.left.knearest(search, n, result)
		}
	} else {
		if nd.right != nil {
			nd.right.knearest(search, n, result)
		}
	}

	sortAndLimit(result, search, n)

	currentSearch := coordinate(search, nd.axis)
	currentVal := coordinate(nd.val, nd.axis)
	distBest := search.Dist((*result)[len(*result)-1])
	borderLeft := currentSearch - distBest
	borderRight := currentSearch + distBest

	switch {
	case cmp < 0:
		if nd.right != nil && (len(*result) < n || borderRight >= currentVal) {
			nd.right.knearest(search, n, result)
		}
	default:
		if nd.left != nil && (len(*result) < n || borderLeft <= currentVal) {
			nd.left.knearest(search, n, result)
		}
	}

	sortAndLimit(result, search, n)
}

// InSphere returns every point within radius of search (inclusive).
func (t *Tree) InSphere(search geom.Point3, radius float64) []geom.Point3 {
	if radius <= 0 || t.root == nil {
		return nil
	}
	var result []geom.Point3
	t.root.inSphere(search, radius, &result)
	return result
}

func (nd *node) inSphere(search geom.Point3, radius float64, result *[]geom.Point3) {
	if search.Dist(nd.val) <= radius {
		*result = append(*result, nd.val)
	}
	if nd.isLeaf() {
		return
	}

	cmp := dimensionCompare(search, nd.val, nd.axis)
	if cmp < 0 {
		if nd.left != nil {
			nd.left.inSphere(search, radius, result)
		}
	} else {
		if nd.right != nil {
			nd.right.inSphere(search, radius, result)
		}
	}

	currentSearch := coordinate(search, nd.axis)
	currentVal := coordinate(nd.val, nd.axis)
	borderLeft := currentSearch - radius
	borderRight := currentSearch + radius

	switch {
	case cmp < 0:
		if nd.right != nil && borderRight >= currentVal {
			nd.right.inSphere(search, radius, result)
		}
	default:
		if nd.left != nil && borderLeft <= currentVal {
			nd.left.inSphere(search, radius, result)
		}
	}
}

// InBox returns every point within an axis-aligned box centered at
// search with the given full side lengths.
func (t *Tree) InBox(search geom.Point3, sizeX, sizeY, sizeZ float64) []geom.Point3 {
	if sizeX <= 0 || sizeY <= 0 || sizeZ <= 0 || t.root == nil {
		return nil
	}
	var result []geom.Point3
	t.root.inBox(search, sizeX, sizeY, sizeZ, &result)
	return result
}

func (nd *node) inBox(search geom.Point3, sizeX, sizeY, sizeZ float64, result *[]geom.Point3) {
	dx := math.Abs(search.X() - nd.val.X())
	dy := math.Abs(search.Y() - nd.val.Y())
	dz := math.Abs(search.Z() - nd.val.Z())

	if dx <= 0.5*sizeX && dy <= 0.5*sizeY && dz <= 0.5*sizeZ {
		*result = append(*result, nd.val)
	}

	if nd.isLeaf() {
		return
	}

	cmp := dimensionCompare(search, nd.val, nd.axis)
	if cmp < 0 {
		if nd.left != nil {
			nd.left.inBox(search, sizeX, sizeY, sizeZ, result)
		}
	} else {
		if nd.right != nil {
			nd.right.inBox(search, sizeX, sizeY, sizeZ, result)
		}
	}

	var currentSize float64
	switch nd.axis {
	case 0:
		currentSize = sizeX
	case 1:
		currentSize = sizeY
	default:
		currentSize = sizeZ
	}
	currentSearch := coordinate(search, nd.axis)
	currentVal := coordinate(nd.val, nd.axis)
	borderLeft := currentSearch - 0.5*currentSize
	borderRight := currentSearch + 0.5*currentSize

	switch {
	case cmp < 0:
		if nd.right != nil && borderRight >= currentVal {
			nd.right.inBox(search, sizeX, sizeY, sizeZ, result)
		}
	default:
		if nd.left != nil && borderLeft <= currentVal {
			nd.left.inBox(search, sizeX, sizeY, sizeZ, result)
		}
	}
}

func (nd *node) isLeaf() bool { return nd.left == nil && nd.right == nil }

// dimensionCompare returns -1/0/1 comparing search and val along axis.
func dimensionCompare(search, val geom.Point3, axis int) int {
	a, b := coordinate(search, axis), coordinate(val, axis)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
