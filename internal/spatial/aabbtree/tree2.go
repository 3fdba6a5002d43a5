package aabbtree

import (
	"github.com/martinbuck/geo3d/internal/config"
	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/profiling"
	"go.uber.org/zap"
)

// Tree2D is the 2D analogue of Tree3D, splitting alternately on x and y.
// Like Tree3D it stores each element once and dedups query results, so a
// straddling element reachable through both children is returned exactly
// once.
type Tree2D[HB geom.HasBoundingBox2D] struct {
	items []HB
	boxes []geom.BoundingBox2D
	root  *node2
}

type node2 struct {
	kind    kind
	indices []int
	bb      geom.BoundingBox2D
	left    *node2
	right   *node2
}

// NewTree2D builds a Tree2D over data, splitting at most maxDepth times.
// Fails if any element's BoundingBox2D() fails.
func NewTree2D[HB geom.HasBoundingBox2D](data []HB, maxDepth int) (*Tree2D[HB], error) {
	defer profiling.Track("aabbtree.NewTree2D")()

	boxes := make([]geom.BoundingBox2D, len(data))
	for i, x := range data {
		bb, err := x.BoundingBox2D()
		if err != nil {
			return nil, err
		}
		boxes[i] = bb
	}

	indices := make([]int, len(data))
	for i := range indices {
		indices[i] = i
	}

	tree := &Tree2D[HB]{
		items: data,
		boxes: boxes,
		root:  newNode2(boxes, indices, maxDepth, 0),
	}
	profiling.Summary("aabbtree.build2d",
		zap.Int("objects", len(data)),
		zap.Int("max_depth", maxDepth),
	)
	return tree, nil
}

// NewTree2DDefault builds a Tree2D using the configured default max depth.
func NewTree2DDefault[HB geom.HasBoundingBox2D](data []HB) (*Tree2D[HB], error) {
	return NewTree2D(data, config.GetAABBTreeMaxDepth())
}

func newNode2(boxes []geom.BoundingBox2D, indices []int, maxDepth, depth int) *node2 {
	if len(indices) == 0 {
		return &node2{kind: kindEmpty}
	}

	bb := boxes[indices[0]]
	for _, i := range indices[1:] {
		bb = bb.Consume(boxes[i])
	}

	if len(indices) == 1 || depth >= maxDepth {
		return &node2{kind: kindLeaf, indices: indices, bb: bb}
	}

	axis := depth % 2
	center := bb.Center()

	var ileft, iright []int
	for _, i := range indices {
		if isLeftOf2(axis, boxes[i], center) {
			ileft = append(ileft, i)
		}
		if isRightOf2(axis, boxes[i], center) {
			iright = append(iright, i)
		}
	}

	if len(ileft) == len(indices) && len(iright) == len(indices) {
		return &node2{kind: kindLeaf, indices: indices, bb: bb}
	}

	return &node2{
		kind:  kindBranch,
		bb:    bb,
		left:  newNode2(boxes, ileft, maxDepth, depth+1),
		right: newNode2(boxes, iright, maxDepth, depth+1),
	}
}

func isLeftOf2(axis int, bb geom.BoundingBox2D, center geom.Point2) bool {
	if axis == 0 {
		return bb.Min().X() < center.X()
	}
	return bb.Min().Y() < center.Y()
}

func isRightOf2(axis int, bb geom.BoundingBox2D, center geom.Point2) bool {
	if axis == 0 {
		return bb.Max().X() >= center.X()
	}
	return bb.Max().Y() >= center.Y()
}

// BBColliding returns every stored element whose bounding box overlaps
// bb, each exactly once.
func (t *Tree2D[HB]) BBColliding(bb geom.BoundingBox2D) []HB {
	return t.query(func(x geom.BoundingBox2D) bool { return x.CollidesWith(bb) })
}

// BBCrossingX returns every stored element whose bounding box straddles
// the line x=value, each exactly once.
func (t *Tree2D[HB]) BBCrossingX(value float64) []HB {
	return t.query(func(x geom.BoundingBox2D) bool { return x.CrossingX(value) })
}

// BBCrossingY returns every stored element whose bounding box straddles
// the line y=value, each exactly once.
func (t *Tree2D[HB]) BBCrossingY(value float64) []HB {
	return t.query(func(x geom.BoundingBox2D) bool { return x.CrossingY(value) })
}

func (t *Tree2D[HB]) query(match func(geom.BoundingBox2D) bool) []HB {
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

func (n *node2) query(boxes []geom.BoundingBox2D, match func(geom.BoundingBox2D) bool, emit func(int)) {
	switch n.kind {
	case kindLeaf:
		if !match(n.bb) {
			return
		}
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
