package pdf

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Mixture linearly blends two PDFs. Bias is the probability of drawing
// from Second when generating a sample (this resolves the open question
// on the sign/direction of the bias term: it is literally
// P(generate from Second), matching the original source's MixPDF, where
// rng.gen_range(0..1) < mix routes to source.1, the "second" — in this
// renderer's integrator, Second is always the light-sampling PDF, so a
// bias of 1.0 means "always sample lights" and 0.0 means "always sample
// the material").
type Mixture struct {
	First, Second PDF
	Bias          float64
}

// NewMixture builds a mixture PDF; bias must be in [0, 1].
func NewMixture(first, second PDF, bias float64) *Mixture {
	return &Mixture{First: first, Second: second, Bias: bias}
}

func (m *Mixture) Value(dir vmath.Vec4, rng *rand.Rand) float64 {
	firstVal := m.First.Value(dir, rng)
	secondVal := m.Second.Value(dir, rng)
	return firstVal*(1-m.Bias) + secondVal*m.Bias
}

func (m *Mixture) Generate(rng *rand.Rand) vmath.Vec4 {
	if rng.Float64() < m.Bias {
		return m.Second.Generate(rng)
	}
	return m.First.Generate(rng)
}
