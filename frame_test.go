package ltc

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestFrameFromDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl64.Vec3
	}{
		{"normal", mgl64.Vec3{0, 0, 1}},
		{"xz plane", mgl64.Vec3{0.6, 0, 0.8}},
		{"behind", mgl64.Vec3{-0.2, 0, -1}},
		{"general", mgl64.Vec3{0.3, -0.5, 0.7}},
		{"along y", mgl64.Vec3{0, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FrameFromDirection(tt.dir)

			assert.True(t, f.Col(2).ApproxEqualThreshold(tt.dir.Normalize(), 1e-12))
			assertMat3InDelta(t, mgl64.Ident3(), f.Transpose().Mul3(f), 1e-12)
			assert.InDelta(t, 1.0, f.Det(), 1e-12)
		})
	}
}

func TestFrameFromDirection_MatchesRotationY(t *testing.T) {
	for _, angle := range []float64{-1.2, -0.3, 0, 0.4, 1.1} {
		f := FrameFromDirection(ViewDirection(angle))
		assertMat3InDelta(t, FrameRotationY(angle), f, 1e-12)
	}
}

func TestFrameRotationY_KeepsPattern(t *testing.T) {
	m := NewModel()
	m.SetLTCParameters(mgl64.Vec3{0.3, 0.6, 0.2})
	m.SetBaseFrame(FrameRotationY(0.9))

	framed := m.FramedLTCMatrix()
	for _, i := range []int{1, 3, 5, 7} {
		assert.InDelta(t, 0.0, framed[i], 1e-15, "element %d", i)
	}
}

func TestReflect(t *testing.T) {
	view := ViewDirection(math.Pi / 6)
	r := Reflect(view, axisZ)

	assert.True(t, r.ApproxEqualThreshold(mgl64.Vec3{-0.5, 0, math.Sqrt(3) / 2}, 1e-12), "got %v", r)
	assert.InDelta(t, 1.0, r.Len(), 1e-12)
}
