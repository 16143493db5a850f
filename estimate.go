package ltc

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Estimate is a Monte Carlo result. Skipped counts directions whose
// evaluation failed or carried no density.
type Estimate struct {
	Mean    float64 `yaml:"mean"`
	Samples int     `yaml:"samples"`
	Skipped int     `yaml:"skipped"`
}

// EstimateNormalization importance-samples the lobe with its own pdf and
// averages value/pdf. Evaluate returns value = amplitude*pdf, so every
// used sample contributes exactly the amplitude: the mean restates that
// identity and Skipped is the informative part. EstimateIntegral is the
// check that actually exercises the Jacobian.
func EstimateNormalization(m *Model, viewDir mgl64.Vec3, s Sampler, n int) (Estimate, error) {
	if n < 1 {
		return Estimate{}, fmt.Errorf("estimate normalization: need at least one sample, got %d", n)
	}

	est := Estimate{Samples: n}
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := m.SampleDirection(viewDir, s)
		value, pdf, err := m.Evaluate(dir, viewDir)
		if err != nil || pdf <= 0 {
			est.Skipped++
			continue
		}
		sum += value / pdf
	}

	if used := n - est.Skipped; used > 0 {
		est.Mean = sum / float64(used)
	}
	return est, nil
}

// EstimateIntegral integrates the pdf over the sphere with uniform
// directions. A well-formed lobe integrates to one.
func EstimateIntegral(m *Model, viewDir mgl64.Vec3, s Sampler, n int) (Estimate, error) {
	if n < 1 {
		return Estimate{}, fmt.Errorf("estimate integral: need at least one sample, got %d", n)
	}

	est := Estimate{Samples: n}
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := uniformSphere(s.Get2D())
		_, pdf, err := m.Evaluate(dir, viewDir)
		if err != nil {
			est.Skipped++
			continue
		}
		sum += pdf
	}

	est.Mean = 4 * math.Pi * sum / float64(n)
	return est, nil
}

func uniformSphere(u1, u2 float64) mgl64.Vec3 {
	z := 1 - 2*u1
	r := math.Sqrt(math.Max(0, 1-z*z))
	sin, cos := math.Sincos(2 * math.Pi * u2)
	return mgl64.Vec3{r * cos, r * sin, z}
}
