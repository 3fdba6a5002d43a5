package geom

// OrientedBox3D is a box with an arbitrary orientation in 3D space: a
// center, two orthonormal direction vectors (y and z; x is derived), and
// three strictly positive extents along those axes.
type OrientedBox3D struct {
	center Point3
	xDir   Point3
	yDir   Point3
	zDir   Point3
	sizeX  float64
	sizeY  float64
	sizeZ  float64
}

// NewOrientedBox3D builds an OrientedBox3D. yDir and zDir must be unit
// vectors; the box's x axis is derived as yDir x zDir. All three sizes
// must be strictly positive.
func NewOrientedBox3D(center, yDir, zDir Point3, sizeX, sizeY, sizeZ float64) (OrientedBox3D, error) {
	if yDir.Len() == 0 || zDir.Len() == 0 {
		return OrientedBox3D{}, ErrNormalizeVecWithoutLen
	}
	if sizeX <= 0 || sizeY <= 0 || sizeZ <= 0 {
		return OrientedBox3D{}, ErrNumberInWrongRange
	}
	xDir, err := yDir.Cross(zDir).Normalize()
	if err != nil {
		return OrientedBox3D{}, err
	}
	return OrientedBox3D{
		center: center,
		xDir:   xDir,
		yDir:   yDir,
		zDir:   zDir,
		sizeX:  sizeX,
		sizeY:  sizeY,
		sizeZ:  sizeZ,
	}, nil
}

func (b OrientedBox3D) Center() Point3 { return b.center }
func (b OrientedBox3D) XDir() Point3   { return b.xDir }
func (b OrientedBox3D) YDir() Point3   { return b.yDir }
func (b OrientedBox3D) ZDir() Point3   { return b.zDir }
func (b OrientedBox3D) SizeX() float64 { return b.sizeX }
func (b OrientedBox3D) SizeY() float64 { return b.sizeY }
func (b OrientedBox3D) SizeZ() float64 { return b.sizeZ }

// Corners returns the box's eight corners, enumerating every combination
// of +/- half-extent along each local axis.
func (b OrientedBox3D) Corners() [8]Point3 {
	hx := b.xDir.Scale(b.sizeX / 2)
	hy := b.yDir.Scale(b.sizeY / 2)
	hz := b.zDir.Scale(b.sizeZ / 2)

	var corners [8]Point3
	i := 0
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				corners[i] = b.center.
					Add(hx.Scale(sx)).
					Add(hy.Scale(sy)).
					Add(hz.Scale(sz))
				i++
			}
		}
	}
	return corners
}

// BoundingBox3D returns the smallest axis-aligned box containing all
// eight corners.
func (b OrientedBox3D) BoundingBox3D() (BoundingBox3D, error) {
	corners := b.Corners()
	return BoundingBox3DFromPoints(corners[:]...)
}

// ForEachPoint calls f with each of the box's eight corners. It satisfies
// the point-enumeration half of the SAT collider contract.
func (b OrientedBox3D) ForEachPoint(f func(Point3)) {
	for _, c := range b.Corners() {
		f(c)
	}
}

// ForEachAxis calls f with the box's three face-normal candidate
// separating axes (its local x, y and z directions).
func (b OrientedBox3D) ForEachAxis(f func(Point3)) {
	f(b.xDir)
	f(b.yDir)
	f(b.zDir)
}
