package ltc

import (
	"github.com/go-gl/mathgl/mgl64"
)

// adjugate3 is the transpose of the cofactor matrix of m.
func adjugate3(m mgl64.Mat3) mgl64.Mat3 {
	a00, a01, a02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	a10, a11, a12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	a20, a21, a22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	return mgl64.Mat3FromRows(
		mgl64.Vec3{a11*a22 - a12*a21, a02*a21 - a01*a22, a01*a12 - a02*a11},
		mgl64.Vec3{a12*a20 - a10*a22, a00*a22 - a02*a20, a02*a10 - a00*a12},
		mgl64.Vec3{a10*a21 - a11*a20, a01*a20 - a00*a21, a00*a11 - a01*a10},
	)
}

// inverse3 is adj(m)/det(m) with no singularity threshold. Lobes with
// roughness near zero have determinants far below mgl64's epsilon and
// must still invert; a truly singular m gives Inf/NaN elements, which
// Evaluate reports as ErrInvalidJacobian.
func inverse3(m mgl64.Mat3) mgl64.Mat3 {
	return adjugate3(m).Mul(1 / m.Det())
}
