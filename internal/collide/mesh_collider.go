package collide

import (
	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/martinbuck/geo3d/internal/mesh"
)

// MeshCollider wraps a triangle mesh as a decomposable collider: it has
// no collision geometry of its own, only the union of its faces'.
type MeshCollider struct {
	m mesh.Mesh[geom.Point3]
}

// NewMeshCollider wraps m for collision testing against its individual faces.
func NewMeshCollider(m mesh.Mesh[geom.Point3]) MeshCollider {
	return MeshCollider{m: m}
}

// HasAdditionalColliders is always true: a mesh only collides face by face.
func (MeshCollider) HasAdditionalColliders() bool { return true }

// WithColliders calls f once per face, wrapped as a triangle Collider3D.
// Faces with an out-of-range vertex index are skipped rather than
// reported, since this is a read-only traversal with no error channel.
func (c MeshCollider) WithColliders(f func(Collider3D)) {
	for i := 0; i < c.m.NumFaces(); i++ {
		a, b, cc, err := mesh.FaceVertexPositions3(c.m, mesh.FId{Val: i})
		if err != nil {
			continue
		}
		f(NewTriangleCollider(geom.NewTriangle3D(a, b, cc)))
	}
}

// BoundingBox3D returns the box containing every vertex in the mesh.
func (c MeshCollider) BoundingBox3D() (geom.BoundingBox3D, error) {
	nv := c.m.NumVertices()
	points := make([]geom.Point3, 0, nv)
	for i := 0; i < nv; i++ {
		p, err := c.m.Vertex(mesh.VId{Val: i})
		if err != nil {
			return geom.BoundingBox3D{}, err
		}
		points = append(points, p)
	}
	return geom.BoundingBox3DFromPoints(points...)
}

// CollidesWith reports whether any face of c collides with o, by
// decomposing c into its per-face triangle colliders.
func (c MeshCollider) CollidesWith(o Collider3D) bool {
	hit := false
	c.WithColliders(func(sub Collider3D) {
		if hit {
			return
		}
		if sub.CollidesWith(o) {
			hit = true
		}
	})
	return hit
}
