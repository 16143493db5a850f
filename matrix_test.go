package ltc

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInverse3_MatchesGonum(t *testing.T) {
	mats := []mgl64.Mat3{
		mgl64.Ident3(),
		{0.7, 0, 0, 0, 0.9, 0, 0.3, 0, 1},
		FrameRotationY(0.4).Mul3(mgl64.Mat3{0.2, 0, 0.1, 0, 0.5, 0, -0.3, 0, 1.2}),
		{1, 2, 0.5, -0.3, 0.8, 0.1, 0.4, -0.6, 1.5},
	}

	for _, m := range mats {
		var want mat.Dense
		require.NoError(t, want.Inverse(toDense(m)))

		got := inverse3(m)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				assert.InDelta(t, want.At(row, col), got.At(row, col), 1e-12)
			}
		}

		adj := adjugate3(m)
		assertMat3InDelta(t, got.Mul(m.Det()), adj, 1e-12)
	}
}

func TestInverse3_TinyDeterminant(t *testing.T) {
	for _, s := range []float64{1e-6, 1e-11, 1e-20} {
		m := mgl64.Mat3{s, 0, 0, 0, s, 0, 0, 0, 1}
		inv := inverse3(m)

		assert.InEpsilon(t, 1/s, inv[idxA], 1e-12, "scale %g", s)
		assert.InEpsilon(t, 1/s, inv[idxC], 1e-12, "scale %g", s)
		assert.InDelta(t, 1.0, inv[idxE], 1e-12, "scale %g", s)
		assertMat3InDelta(t, mgl64.Ident3(), m.Mul3(inv), 1e-9)
	}
}

func TestInverse3_SingularIsNotFinite(t *testing.T) {
	inv := inverse3(mgl64.Mat3{0, 0, 0, 0, 1, 0, 0, 0, 1})

	finite := true
	for _, v := range inv {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
		}
	}
	assert.False(t, finite, "singular matrix inverted to %v", inv)
}
