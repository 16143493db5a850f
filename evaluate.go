package ltc

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MinTransformedLength is the shortest length a light direction may have
// after the round trip through the original cosine space.
const MinTransformedLength = 1e-4

var (
	// ErrDegenerateTransform: the light direction maps (almost) onto the
	// kernel of the transform, so its density cannot be recovered.
	ErrDegenerateTransform = errors.New("ltc: transformed light direction is degenerate")
	// ErrInvalidJacobian: the change-of-variables factor came out NaN,
	// usually because the framed matrix is (near) singular.
	ErrInvalidJacobian = errors.New("ltc: jacobian is NaN")
)

// Evaluate returns the lobe value toward lightDir and its pdf, the
// value without amplitude. lightDir must be unit length. viewDir is not
// read: the view dependency is baked into the base frame.
//
// Both returned errors only invalidate this one direction; integrators
// should skip the sample and carry on.
func (m *Model) Evaluate(lightDir, viewDir mgl64.Vec3) (value, pdf float64, err error) {
	framed := m.FramedLTCMatrix()

	original := inverse3(framed).Mul3x1(lightDir).Normalize()
	length := framed.Mul3x1(original).Len()
	if length < MinTransformedLength {
		m.logger().Debugf("degenerate LTC transform: dir=%v length=%g", lightDir, length)
		return 0, 0, fmt.Errorf("%w (length %g)", ErrDegenerateTransform, length)
	}

	jacobian := framed.Det() / (length * length * length)
	if math.IsNaN(jacobian) {
		m.logger().Debugf("NaN LTC jacobian: dir=%v det=%g", lightDir, framed.Det())
		return 0, 0, ErrInvalidJacobian
	}

	d := math.Max(0, original.Z()) / math.Pi
	pdf = d / jacobian
	return m.amplitude * pdf, pdf, nil
}

// Sample maps (u1, u2) in [0,1)^2 to a unit light direction distributed
// like the lobe: cosine-weighted in original space, then pushed through
// the framed matrix.
func (m *Model) Sample(viewDir mgl64.Vec3, u1, u2 float64) mgl64.Vec3 {
	theta := math.Acos(math.Sqrt(u1))
	phi := 2 * math.Pi * u2

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	original := mgl64.Vec3{sinTheta * cosPhi, sinTheta * sinPhi, cosTheta}

	return m.FramedLTCMatrix().Mul3x1(original).Normalize()
}

// SampleDirection draws the two sample parameters from s.
func (m *Model) SampleDirection(viewDir mgl64.Vec3, s Sampler) mgl64.Vec3 {
	u1, u2 := s.Get2D()
	return m.Sample(viewDir, u1, u2)
}
