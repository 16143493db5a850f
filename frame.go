package ltc

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// FrameFromDirection returns an orthonormal frame [X Y Z] with Z along
// dir. X is taken perpendicular to +Y so that directions in the XZ plane
// give a rotation about Y, which keeps framed matrices sparse.
func FrameFromDirection(dir mgl64.Vec3) mgl64.Mat3 {
	z := dir.Normalize()

	x := axisY.Cross(z)
	if x.Len() < 1e-6 {
		// dir is (anti)parallel to Y
		x = axisX
	} else {
		x = x.Normalize()
	}
	y := z.Cross(x)

	return mgl64.Mat3FromCols(x, y, z)
}

// FrameRotationY is FrameFromDirection for the direction at angle
// radians from +Z toward +X.
func FrameRotationY(angle float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(angle)
}

// Reflect mirrors v about the unit normal n.
func Reflect(v, n mgl64.Vec3) mgl64.Vec3 {
	return n.Mul(2 * v.Dot(n)).Sub(v)
}

// ViewDirection is the unit view vector at theta radians from the normal,
// in the XZ plane.
func ViewDirection(theta float64) mgl64.Vec3 {
	sin, cos := math.Sincos(theta)
	return mgl64.Vec3{sin, 0, cos}
}
