package ltc

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStoreData_Adjugate(t *testing.T) {
	m := NewModel()
	m.SetLTCParameters(mgl64.Vec3{0.45, 0.7, 0.25})
	m.SetBaseFrame(FrameRotationY(0.6))
	m.SetAmplitude(0.9)
	m.SetFresnelTerm(0.2)

	framed := toDense(m.FramedLTCMatrix())
	var adj mat.Dense
	require.NoError(t, adj.Inverse(framed))
	adj.Scale(mat.Det(framed), &adj)

	data := m.StoreData()
	// (row, col) of each stored parameter
	positions := [5][2]int{{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}}
	for i, p := range positions {
		assert.InDelta(t, adj.At(p[0], p[1]), data.MatrixParameters[i], 1e-12, "t%d", i)
	}
	for _, p := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		assert.InDelta(t, 0.0, adj.At(p[0], p[1]), 1e-12, "adjugate leaves the pattern at %v", p)
	}

	assert.Equal(t, 0.9, data.DistributionNorm)
	assert.Equal(t, 0.2, data.FresnelTerm)
}

func TestStoreData_Formulas(t *testing.T) {
	m := NewModel()
	m.SetLTCParameters(mgl64.Vec3{2, 3, 5})

	// a=2 b=0 c=3 d=5 e=1
	assert.Equal(t, [5]float64{3, 0, 2, -15, 6}, m.StoreData().MatrixParameters)
}

func TestStoreData_RoundTripUnitDeterminant(t *testing.T) {
	src := NewModel()
	src.SetLTCParameters(mgl64.Vec3{0.7, 1 / 0.7, 0})
	src.SetAmplitude(0.65)
	src.SetFresnelTerm(0.31)

	dst := NewModel()
	dst.SetBaseFrame(FrameRotationY(1))
	dst.SetStoreData(src.StoreData())

	assertMat3InDelta(t, src.LTCMatrix(), dst.LTCMatrix(), 1e-12)
	assertMat3InDelta(t, src.LTCMatrixInv(), dst.LTCMatrixInv(), 1e-12)
	assert.Equal(t, mgl64.Ident3(), dst.BaseFrame())
	assert.Equal(t, 0.65, dst.Amplitude())
	assert.Equal(t, 0.31, dst.FresnelTerm())
}

func TestStoreData_RoundTripIsScaleEquivalent(t *testing.T) {
	src := NewModel()
	src.SetLTCParameters(mgl64.Vec3{0.7, 0.9, 0.0})
	src.SetAmplitude(0.5)
	src.SetFresnelTerm(0.04)

	dst := NewModel()
	dst.SetStoreData(src.StoreData())

	det := src.LTCMatrix().Det()
	assert.InDelta(t, 0.63, det, 1e-12)
	assertMat3InDelta(t, src.LTCMatrix(), dst.LTCMatrix().Mul(det), 1e-12)
	assert.Equal(t, mgl64.Ident3(), dst.BaseFrame())
	assert.Equal(t, 0.5, dst.Amplitude())
	assert.Equal(t, 0.04, dst.FresnelTerm())

	assertSameLobe(t, &src, &dst)
}

func TestStoreData_RoundTripKeepsFramedLobe(t *testing.T) {
	cases := []struct {
		name   string
		params mgl64.Vec3
		frame  mgl64.Mat3
	}{
		{"identity frame", mgl64.Vec3{0.3, 0.5, 0.1}, mgl64.Ident3()},
		{"rotated", mgl64.Vec3{0.4, 0.4, 0}, FrameRotationY(0.5)},
		{"rotated and skewed", mgl64.Vec3{0.25, 0.6, -0.3}, FrameFromDirection(mgl64.Vec3{-0.6, 0, 0.8})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := NewModel()
			src.SetLTCParameters(tc.params)
			src.SetBaseFrame(tc.frame)

			dst := NewModel()
			dst.SetStoreData(src.StoreData())

			assert.Equal(t, mgl64.Ident3(), dst.BaseFrame())
			assertSameLobe(t, &src, &dst)

			// re-encoding the decoded model gives the same record up to det^2
			det := src.FramedLTCMatrix().Det()
			again := dst.StoreData().MatrixParameters
			for i, v := range src.StoreData().MatrixParameters {
				assert.InDelta(t, v, again[i]*det*det, 1e-9, "t%d", i)
			}
		})
	}
}

func TestStoreData_DecodeKeepsCacheConsistent(t *testing.T) {
	src := NewModel()
	src.SetLTCParameters(mgl64.Vec3{0.2, 0.35, 0.15})

	dst := NewModel()
	dst.SetStoreData(src.StoreData())

	assertMat3InDelta(t, mgl64.Ident3(), dst.LTCMatrix().Mul3(dst.LTCMatrixInv()), 1e-9)
	assert.InDelta(t, dst.LTCMatrixInv().Det(), dst.LTCMatrixInvDeterminant(), 1e-12)
}

func assertSameLobe(t *testing.T, want, got *Model) {
	t.Helper()
	for _, dir := range testDirections {
		wv, wp, err := want.Evaluate(dir, axisZ)
		require.NoError(t, err)
		gv, gp, err := got.Evaluate(dir, axisZ)
		require.NoError(t, err)
		assert.InDelta(t, wv, gv, 1e-9, "value for %v", dir)
		assert.InDelta(t, wp, gp, 1e-9, "pdf for %v", dir)
	}
	for _, u := range [][2]float64{{0.1, 0.2}, {0.5, 0.5}, {0.9, 0.75}} {
		wd := want.Sample(axisZ, u[0], u[1])
		gd := got.Sample(axisZ, u[0], u[1])
		assert.True(t, wd.ApproxEqualThreshold(gd, 1e-9), "sample %v: %v vs %v", u, wd, gd)
	}
}

func TestStoreData_TinyScales(t *testing.T) {
	tests := []struct {
		name   string
		params mgl64.Vec3
	}{
		{"roughness 1e-4", InitialGuess(1e-4)},
		{"roughness 1e-6", InitialGuess(1e-6)},
		{"roughness 1e-8", InitialGuess(1e-8)},
		{"skewed 1e-6", mgl64.Vec3{1e-6, 1e-6, 0.1}},
		{"anisotropic 1e-8", mgl64.Vec3{1e-8, 1e-3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewModel()
			src.SetLTCParameters(tt.params)
			assertMat3InDelta(t, mgl64.Ident3(), src.LTCMatrix().Mul3(src.LTCMatrixInv()), 1e-9)

			dst := NewModel()
			dst.SetStoreData(src.StoreData())
			assertMat3InDelta(t, mgl64.Ident3(), dst.LTCMatrix().Mul3(dst.LTCMatrixInv()), 1e-9)

			det := src.LTCMatrix().Det()
			for i, v := range src.LTCMatrix() {
				assert.InDelta(t, v, dst.LTCMatrix()[i]*det, 1e-9*math.Abs(v)+1e-300, "element %d", i)
			}

			if tt.params[2] != 0 {
				return
			}
			// along the lobe axis both models are far from the degenerate threshold
			for _, dir := range []mgl64.Vec3{axisZ, mgl64.Vec3{1e-9, 2e-9, 1}.Normalize()} {
				_, want, err := src.Evaluate(dir, axisZ)
				require.NoError(t, err)
				_, got, err := dst.Evaluate(dir, axisZ)
				require.NoError(t, err)
				assert.Greater(t, want, 0.0)
				assert.InEpsilon(t, want, got, 1e-9, "pdf toward %v", dir)
			}
		})
	}
}
