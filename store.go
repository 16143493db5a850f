package ltc

import (
	"github.com/go-gl/mathgl/mgl64"
)

// StoreData is the compact bake record of a model.
//
// MatrixParameters holds the adjugate of the framed matrix restricted to
// the sparse pattern, in the order t0..t4:
//
//	t0 = c*e   t1 = -b*c   t2 = a*e - b*d   t3 = -c*d   t4 = a*c
//
// where a..e are the framed matrix elements at raw indices 0, 2, 4, 6, 8.
// The adjugate is det(M)*inv(M), so no division happens while baking.
// The layout and formulas are shared with whatever reads the table and
// must not change independently.
type StoreData struct {
	MatrixParameters [5]float64 `yaml:"matrix_parameters"`
	DistributionNorm float64    `yaml:"distribution_norm"`
	FresnelTerm      float64    `yaml:"fresnel_term"`
}

// StoreData encodes the framed matrix, amplitude and Fresnel term.
func (m *Model) StoreData() StoreData {
	framed := m.FramedLTCMatrix()

	a := framed[idxA]
	b := framed[idxB]
	c := framed[idxC]
	d := framed[idxD]
	e := framed[idxE]

	return StoreData{
		MatrixParameters: [5]float64{
			c * e,
			-b * c,
			a*e - b*d,
			-c * d,
			a * c,
		},
		DistributionNorm: m.amplitude,
		FresnelTerm:      m.fresnel,
	}
}

// SetStoreData rebuilds a model from a bake record. The stored adjugate
// is laid out in the sparse pattern and inverted, which yields the framed
// matrix divided by its determinant. The lobe is invariant to uniform
// scaling of the matrix, so evaluation and sampling match the encoded
// model. The base frame cannot be separated back out and is reset to
// identity.
func (m *Model) SetStoreData(data StoreData) {
	m.amplitude = data.DistributionNorm
	m.fresnel = data.FresnelTerm

	t := data.MatrixParameters
	m.setLTCMatrix(inverse3(mgl64.Mat3{
		t[0], 0, t[1],
		0, t[2], 0,
		t[3], 0, t[4],
	}))

	m.baseFrame = mgl64.Ident3()
}
