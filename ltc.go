// Package ltc models Linearly Transformed Cosines: a clamped-cosine
// distribution pushed through a 3x3 matrix to approximate a glossy BRDF
// lobe with closed-form evaluation, sampling and a compact bake record.
//
// Matrices are mgl64.Mat3 values and therefore column-major. The fitted
// matrix only has five structurally nonzero elements, at raw indices
// 0, 2, 4, 6 and 8 (column 0 row 0, column 0 row 2, column 1 row 1,
// column 2 row 0 and column 2 row 2). Everything else stays zero.
package ltc

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Raw mgl64.Mat3 indices of the sparse pattern.
const (
	idxA = 0 // column 0, row 0
	idxB = 2 // column 0, row 2
	idxC = 4 // column 1, row 1
	idxD = 6 // column 2, row 0
	idxE = 8 // column 2, row 2
)

// Model is a single LTC lobe. It is a plain value: copies are
// independent, and concurrent Evaluate/Sample calls on an unchanging
// model are safe. Mutation must be serialized by the caller.
//
// Use NewModel; the zero value has zero matrices.
type Model struct {
	baseFrame mgl64.Mat3

	// matrix, matrixInv and matrixInvDet only change together, in setLTCMatrix.
	matrix       mgl64.Mat3
	matrixInv    mgl64.Mat3
	matrixInvDet float64

	amplitude float64
	fresnel   float64

	log Logger
}

// NewModel returns a model with identity frame and matrix, amplitude 1
// and a zero Fresnel term.
func NewModel() Model {
	m := Model{
		baseFrame: mgl64.Ident3(),
		amplitude: 1,
	}
	m.setLTCMatrix(mgl64.Ident3())
	return m
}

// SetLTCParameters builds the fitted matrix from (scale x, scale y, skew).
// The skew lands in column 2, row 0, which tilts the lobe toward +X.
func (m *Model) SetLTCParameters(p mgl64.Vec3) {
	m.setLTCMatrix(mgl64.Mat3{
		p[0], 0, 0,
		0, p[1], 0,
		p[2], 0, 1,
	})
}

// SetBaseFrame stores the orientation frame as given. Orthonormality is
// the caller's business.
func (m *Model) SetBaseFrame(frame mgl64.Mat3) {
	m.baseFrame = frame
}

func (m *Model) BaseFrame() mgl64.Mat3 {
	return m.baseFrame
}

func (m *Model) setLTCMatrix(mat mgl64.Mat3) {
	m.matrix = mat
	m.matrixInv = inverse3(mat)
	m.matrixInvDet = m.matrixInv.Det()
}

func (m *Model) LTCMatrix() mgl64.Mat3 {
	return m.matrix
}

func (m *Model) LTCMatrixInv() mgl64.Mat3 {
	return m.matrixInv
}

// LTCMatrixInvDeterminant is informational; evaluation does not read it.
func (m *Model) LTCMatrixInvDeterminant() float64 {
	return m.matrixInvDet
}

// FramedLTCMatrix is base frame times fitted matrix: the transform from
// the original cosine space to the lobe.
func (m *Model) FramedLTCMatrix() mgl64.Mat3 {
	return m.baseFrame.Mul3(m.matrix)
}

// FramedLTCMatrixInv is recomputed on every call.
func (m *Model) FramedLTCMatrixInv() mgl64.Mat3 {
	return inverse3(m.FramedLTCMatrix())
}

func (m *Model) Amplitude() float64 {
	return m.amplitude
}

func (m *Model) SetAmplitude(amplitude float64) {
	m.amplitude = amplitude
}

// FresnelTerm is carried through the bake record untouched.
func (m *Model) FresnelTerm() float64 {
	return m.fresnel
}

func (m *Model) SetFresnelTerm(fresnel float64) {
	m.fresnel = fresnel
}

// SetLogger routes evaluation failures to l. A nil logger silences them.
func (m *Model) SetLogger(l Logger) {
	m.log = l
}

func (m *Model) logger() Logger {
	if m.log == nil {
		return NewNopLogger()
	}
	return m.log
}
