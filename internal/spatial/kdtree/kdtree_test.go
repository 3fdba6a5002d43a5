package kdtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/martinbuck/geo3d/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, points []geom.Point3) *Tree {
	t.Helper()
	tree, err := Build(points)
	require.NoError(t, err)
	return tree
}

func randomPoints(n int, seed int64) []geom.Point3 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]geom.Point3, n)
	for i := range out {
		out[i] = geom.NewPoint3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
	}
	return out
}

// bruteKNearest is the reference result KNearest must reproduce: every
// point sorted by squared distance (stable, so ties keep insertion
// order), truncated to k.
func bruteKNearest(points []geom.Point3, q geom.Point3, k int) []geom.Point3 {
	cp := make([]geom.Point3, len(points))
	copy(cp, points)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].SqrDist(q) < cp[j].SqrDist(q)
	})
	if len(cp) > k {
		cp = cp[:k]
	}
	return cp
}

func TestBuildEmptyFails(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, geom.ErrTooFewPoints)
}

// Over {(0,0,0), (1,0,0), (0,1,0)}, the nearest point to (0.1, 0.1, 0)
// is the origin and the 2-nearest are the origin then (1,0,0).
func TestNearestAndKNearestLiteral(t *testing.T) {
	points := []geom.Point3{
		geom.NewPoint3(0, 0, 0),
		geom.NewPoint3(1, 0, 0),
		geom.NewPoint3(0, 1, 0),
	}
	tree := mustBuild(t, points)
	q := geom.NewPoint3(0.1, 0.1, 0)

	nearest, ok := tree.Nearest(q)
	require.True(t, ok)
	assert.True(t, nearest.Equal(geom.NewPoint3(0, 0, 0)))

	two := tree.KNearest(q, 2)
	require.Len(t, two, 2)
	assert.True(t, two[0].Equal(geom.NewPoint3(0, 0, 0)))
	// (1,0,0) and (0,1,0) are equidistant from q; insertion order breaks
	// the tie in favor of (1,0,0).
	assert.True(t, two[1].Equal(geom.NewPoint3(1, 0, 0)))
}

func TestKNearestMatchesBruteForce(t *testing.T) {
	points := randomPoints(200, 7)
	tree := mustBuild(t, points)

	queries := []geom.Point3{
		geom.Origin3(),
		geom.NewPoint3(5, -3, 2),
		geom.NewPoint3(-11, 11, 0),
		points[17],
	}
	for _, q := range queries {
		for _, k := range []int{1, 3, 10, 200, 500} {
			got := tree.KNearest(q, k)
			want := bruteKNearest(points, q, k)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].SqrDist(q), got[i].SqrDist(q),
					"k=%d result %d differs from brute force", k, i)
			}
		}
	}
}

func TestKNearestMoreThanStoredReturnsAll(t *testing.T) {
	points := randomPoints(5, 3)
	tree := mustBuild(t, points)
	assert.Len(t, tree.KNearest(geom.Origin3(), 50), 5)
}

func TestInSphereLiteralEmpty(t *testing.T) {
	points := []geom.Point3{
		geom.NewPoint3(0, 0, 0),
		geom.NewPoint3(1, 0, 0),
		geom.NewPoint3(0, 1, 0),
	}
	tree := mustBuild(t, points)

	assert.Empty(t, tree.InSphere(geom.NewPoint3(10, 10, 10), 0.5))
}

func TestInSphereMatchesBruteForce(t *testing.T) {
	points := randomPoints(150, 11)
	tree := mustBuild(t, points)

	for _, radius := range []float64{0.5, 3, 8, 40} {
		q := geom.NewPoint3(1, -2, 3)
		got := tree.InSphere(q, radius)

		want := 0
		for _, p := range points {
			if p.Dist(q) <= radius {
				want++
			}
		}
		assert.Len(t, got, want, "radius %v", radius)
		for _, p := range got {
			assert.LessOrEqual(t, p.Dist(q), radius)
		}
	}
}

func TestInSphereNonPositiveRadius(t *testing.T) {
	tree := mustBuild(t, randomPoints(10, 2))
	assert.Empty(t, tree.InSphere(geom.Origin3(), 0))
	assert.Empty(t, tree.InSphere(geom.Origin3(), -1))
}

func TestInBoxMatchesBruteForce(t *testing.T) {
	points := randomPoints(150, 13)
	tree := mustBuild(t, points)

	q := geom.NewPoint3(-1, 2, 0)
	sx, sy, sz := 6.0, 3.0, 9.0
	got := tree.InBox(q, sx, sy, sz)

	want := 0
	for _, p := range points {
		if abs(p.X()-q.X()) <= sx/2 && abs(p.Y()-q.Y()) <= sy/2 && abs(p.Z()-q.Z()) <= sz/2 {
			want++
		}
	}
	assert.Len(t, got, want)
}

func TestInBoxNonPositiveExtent(t *testing.T) {
	tree := mustBuild(t, randomPoints(10, 5))
	assert.Empty(t, tree.InBox(geom.Origin3(), 0, 1, 1))
	assert.Empty(t, tree.InBox(geom.Origin3(), 1, -2, 1))
}

func TestSizeAndPointsRoundTrip(t *testing.T) {
	points := randomPoints(64, 17)
	tree := mustBuild(t, points)

	assert.Equal(t, 64, tree.Size())
	assert.Len(t, tree.Points(), 64)
}

func TestKNearestDuplicatePointsStayDeterministic(t *testing.T) {
	p := geom.NewPoint3(1, 1, 1)
	points := []geom.Point3{p, p, p, geom.NewPoint3(5, 5, 5)}
	tree := mustBuild(t, points)

	got := tree.KNearest(geom.Origin3(), 3)
	require.Len(t, got, 3)
	for _, g := range got[:3] {
		assert.True(t, g.Equal(p))
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func BenchmarkKNearest(b *testing.B) {
	points := randomPoints(10000, 1)
	tree, err := Build(points)
	if err != nil {
		b.Fatal(err)
	}
	q := geom.NewPoint3(0.5, 0.5, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.KNearest(q, 10)
	}
}
