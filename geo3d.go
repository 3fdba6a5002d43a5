// Package geo3d provides 2D/3D computational-geometry primitives and the
// spatial data structures built on them: axis-aligned bounding box trees,
// a k-d tree, an octree, a half-edge connectivity layer over indexed
// triangle meshes, mesh-repair algorithms, and a separating-axis collision
// dispatcher.
//
// The implementation lives in internal packages; this package re-exports
// the supported surface. Spatial indices are built once from an owned
// input collection and are immutable afterwards, so they can be shared
// read-only across goroutines without synchronization.
package geo3d

import (
	"github.com/martinbuck/geo3d/internal/collide"
	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/mesh"
	"github.com/martinbuck/geo3d/internal/repair"
	"github.com/martinbuck/geo3d/internal/spatial/aabbtree"
	"github.com/martinbuck/geo3d/internal/spatial/kdtree"
	"github.com/martinbuck/geo3d/internal/spatial/octree"
)

// Geometric primitives.
type (
	Point2        = geom.Point2
	Point3        = geom.Point3
	BoundingBox2D = geom.BoundingBox2D
	BoundingBox3D = geom.BoundingBox3D
	Triangle3D    = geom.Triangle3D
	OrientedBox3D = geom.OrientedBox3D
	Sphere3D      = geom.Sphere3D

	// HasBoundingBox2D and HasBoundingBox3D are the capabilities the
	// AABB trees require of their elements.
	HasBoundingBox2D = geom.HasBoundingBox2D
	HasBoundingBox3D = geom.HasBoundingBox3D
)

var (
	NewPoint2        = geom.NewPoint2
	NewPoint3        = geom.NewPoint3
	Origin2          = geom.Origin2
	Origin3          = geom.Origin3
	NewBoundingBox2D = geom.NewBoundingBox2D
	NewBoundingBox3D = geom.NewBoundingBox3D
	NewTriangle3D    = geom.NewTriangle3D
	NewOrientedBox3D = geom.NewOrientedBox3D
	NewSphere3D      = geom.NewSphere3D

	BoundingBox2DFromPoints = geom.BoundingBox2DFromPoints
	BoundingBox3DFromPoints = geom.BoundingBox3DFromPoints
)

// Error sentinels, compared with errors.Is.
var (
	ErrIncorrectEdgeID   = geom.ErrIncorrectEdgeID
	ErrIncorrectVertexID = geom.ErrIncorrectVertexID
	ErrIncorrectFaceID   = geom.ErrIncorrectFaceID
	ErrIndexOutOfBounds  = geom.ErrIndexOutOfBounds

	ErrBoundingBoxMissing     = geom.ErrBoundingBoxMissing
	ErrMinMaxSwapped          = geom.ErrMinMaxSwapped
	ErrMinMaxEqual            = geom.ErrMinMaxEqual
	ErrTooFewPoints           = geom.ErrTooFewPoints
	ErrNormalizeVecWithoutLen = geom.ErrNormalizeVecWithoutLen

	ErrNumberInWrongRange        = geom.ErrNumberInWrongRange
	ErrNumberConversion          = geom.ErrNumberConversion
	ErrCantCalculateAngleZeroLen = geom.ErrCantCalculateAngleZeroLen
	ErrDimensionsDontMatch       = geom.ErrDimensionsDontMatch

	ErrClusterTooBig = geom.ErrClusterTooBig
)

// Meshes and half-edge connectivity.
type (
	VId   = mesh.VId
	EId   = mesh.EId
	FId   = mesh.FId
	Face3 = mesh.Face3

	// Mesh is the contract the half-edge builder and the repair
	// algorithms need from a triangle mesh.
	Mesh[V any]           = mesh.Mesh[V]
	IndexedMesh[V any]    = mesh.IndexedMesh[V]
	HalfEdge              = mesh.HalfEdge
	SearchableMesh[V any] = mesh.SearchableMesh[V]
)

// NewIndexedMesh builds an in-memory triangle mesh from its vertex and
// face slices.
func NewIndexedMesh[V any](vertices []V, faces []Face3) *IndexedMesh[V] {
	return mesh.NewIndexedMesh(vertices, faces)
}

// NewHalfEdge derives the half-edge connectivity table from m.
func NewHalfEdge[V any](m Mesh[V]) *HalfEdge {
	return mesh.NewHalfEdge(m)
}

// NewSearchableMesh wraps m with its half-edge table for adjacency queries.
func NewSearchableMesh[V any](m Mesh[V]) *SearchableMesh[V] {
	return mesh.NewSearchableMesh(m)
}

// Mesh repair.
var (
	// Heal deduplicates vertices and drops degenerate and duplicate
	// faces.
	Heal = repair.Heal
	// ClusterVertices collapses vertices sharing a grid cell of the
	// given size, then re-heals the result.
	ClusterVertices = repair.ClusterVertices
	// UnifyFaces rewinds faces so adjacent faces in each connected
	// component share an orientation.
	UnifyFaces = repair.UnifyFaces
)

// Spatial indices.
type (
	AABBTree2D[HB HasBoundingBox2D] = aabbtree.Tree2D[HB]
	AABBTree3D[HB HasBoundingBox3D] = aabbtree.Tree3D[HB]
	KdTree                          = kdtree.Tree
	Octree                          = octree.Tree
)

// NewAABBTree2D builds a 2D AABB tree over data with the given depth cap.
func NewAABBTree2D[HB HasBoundingBox2D](data []HB, maxDepth int) (*AABBTree2D[HB], error) {
	return aabbtree.NewTree2D(data, maxDepth)
}

// NewAABBTree3D builds a 3D AABB tree over data with the given depth cap.
func NewAABBTree3D[HB HasBoundingBox3D](data []HB, maxDepth int) (*AABBTree3D[HB], error) {
	return aabbtree.NewTree3D(data, maxDepth)
}

var (
	// NewKdTree builds a 3D k-d tree over points.
	NewKdTree = kdtree.Build
	// NewOctree builds a 3D octree over points, deduplicating them by
	// bit-level equality.
	NewOctree = octree.Build
)

// Collision testing.
type (
	// SATObject is anything the separating-axis test can handle: it
	// enumerates its corner points and its candidate separating axes.
	SATObject    = collide.Object
	Collider3D   = collide.Collider3D
	MeshCollider = collide.MeshCollider
)

var (
	// Collide runs the separating-axis test between two shapes.
	Collide = collide.Collide

	NewAABBCollider        = collide.NewAABBCollider
	NewOrientedBoxCollider = collide.NewOrientedBoxCollider
	NewTriangleCollider    = collide.NewTriangleCollider
	NewMeshCollider        = collide.NewMeshCollider
)
