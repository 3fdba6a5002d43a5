// Package aabbtree provides 2D and 3D axis-aligned bounding box trees for
// fast broad-phase overlap and slab queries over a static collection of
// bounded objects.
package aabbtree

import (
	"github.com/martinbuck/geo3d/internal/config"
	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

type kind int

const (
	kindEmpty kind = iota
	kindLeaf
	kindBranch
)

// Tree3D is an axis-aligned bounding box tree over a static set of HB
// values, each of which knows its own 3D bounding box. It never mutates
// after construction.
//
// Elements are stored once and nodes refer to them by index: an element
// whose box straddles a split plane is reachable through both children,
// and queries dedup on the index so every matching element is returned
// exactly once.
type Tree3D[HB geom.HasBoundingBox3D] struct {
	items []HB
	boxes []geom.BoundingBox3D
	root  *node3
}

type node3 struct {
	kind    kind
	indices []int
	bb      geom.BoundingBox3D
	left    *node3
	right   *node3
}

// NewTree3D builds a Tree3D over data, splitting at most maxDepth times.
// Fails if any element's BoundingBox3D() fails.
func NewTree3D[HB geom.HasBoundingBox3D](data []HB, maxDepth int) (*Tree3D[HB], error) {
	defer profiling.Track("aabbtree.NewTree3D")()

	boxes := make([]geom.BoundingBox3D, len(data))
	for i, x := range data {
		bb, err := x.BoundingBox3D()
		if err != nil {
			return nil, err
		}
		boxes[i] = bb
	}

	indices := make([]int, len(data))
	for i := range indices {
		indices[i] = i
	}

	tree := &Tree3D[HB]{
		items: data,
		boxes: boxes,
		root:  newNode3(boxes, indices, maxDepth, 0),
	}
	profiling.Summary("aabbtree.build",
		zap.Int("objects", len(data)),
		zap.Int("max_depth", maxDepth),
	)
	return tree, nil
}

// NewTree3DDefault builds a Tree3D using the configured default max depth
// (see internal/config.GetAABBTreeMaxDepth).
func NewTree3DDefault[HB geom.HasBoundingBox3D](data []HB) (*Tree3D[HB], error) {
	return NewTree3D(data, config.GetAABBTreeMaxDepth())
}

func newNode3(boxes []geom.BoundingBox3D, indices []int, maxDepth, depth int) *node3 {
	if len(indices) == 0 {
		return &node3{kind: kindEmpty}
	}

	bb := boxes[indices[0]]
	for _, i := range indices[1:] {
		bb = bb.Consume(boxes[i])
	}

	if len(indices) == 1 || depth >= maxDepth {
		return &node3{kind: kindLeaf, indices: indices, bb: bb}
	}

	axis := depth % 3
	center := bb.Center()

	var ileft, iright []int
	for _, i := range indices {
		if isLeftOf3(axis, boxes[i], center) {
			ileft = append(ileft, i)
		}
		if isRightOf3(axis, boxes[i], center) {
			iright = append(iright, i)
		}
	}

	if len(ileft) == len(indices) && len(iright) == len(indices) {
		// every element straddles the center on this axis; splitting
		// further wouldn't shrink either side, so stop here.
		return &node3{kind: kindLeaf, indices: indices, bb: bb}
	}

	return &node3{
		kind:  kindBranch,
		bb:    bb,
		left:  newNode3(boxes, ileft, maxDepth, depth+1),
		right: newNode3(boxes, iright, maxDepth, depth+1),
	}
}

func isLeftOf3(axis int, bb geom.BoundingBox3D, center geom.Point3) bool {
	switch axis {
	case 0:
		return bb.Min().X() < center.X()
	case 1:
		return bb.Min().Y() < center.Y()
	default:
		return bb.Min().Z() < center.Z()
	}
}

func isRightOf3(axis int, bb geom.BoundingBox3D, center geom.Point3) bool {
	switch axis {
	case 0:
		return bb.Max().X() >= center.X()
	case 1:
		return bb.Max().Y() >= center.Y()
	default:
		return bb.Max().Z() >= center.Z()
	}
}

// BBColliding returns every stored element whose bounding box overlaps
// bb, each exactly once.
func (t *Tree3D[HB]) BBColliding(bb geom.BoundingBox3D) []HB {
	return t.query(func(x geom.BoundingBox3D) bool { return x.CollidesWith(bb) })
}

// BBCrossingX returns every stored element whose bounding box straddles
// the plane x=value, each exactly once.
func (t *Tree3D[HB]) BBCrossingX(value float64) []HB {
	return t.query(func(x geom.BoundingBox3D) bool { return x.CrossingX(value) })
}

// BBCrossingY returns every stored element whose bounding box straddles
// the plane y=value, each exactly once.
func (t *Tree3D[HB]) BBCrossingY(value float64) []HB {
	return t.query(func(x geom.BoundingBox3D) bool { return x.CrossingY(value) })
}

// BBCrossingZ returns every stored element whose bounding box straddles
// the plane z=value, each exactly once.
func (t *Tree3D[HB]) BBCrossingZ(value float64) []HB {
	return t.query(func(x geom.BoundingBox3D) bool { return x.CrossingZ(value) })
}

func (t *Tree3D[HB]) query(match func(geom.BoundingBox3D) bool) []HB {
	if t.root == nil || len(t.items) == 0 {
		return nil
	}
	seen := make([]bool, len(t.items))
	var out []HB
	t.root.query(t.boxes, match, func(i int) {
		if !seen[i] {
			seen[i] = true
			out = append(out, t.items[i])
		}
	})
	return out
}

func (n *node3) query(boxes []geom.BoundingBox3D, match func(geom.BoundingBox3D) bool, emit func(int)) {
	switch n.kind {
	case kindLeaf:
		if !match(n.bb) {
			return
		}
		// the union box can match while individual elements don't;
		// re-test each one.
		for _, i := range n.indices {
			if match(boxes[i]) {
				emit(i)
			}
		}
	case kindBranch:
		if !match(n.bb) {
			return
		}
		n.left.query(boxes, match, emit)
		n.right.query(boxes, match, emit)
	}
}
