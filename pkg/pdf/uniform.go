package pdf

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Uniform samples directions uniformly over the full sphere.
type Uniform struct{}

func NewUniform() *Uniform { return &Uniform{} }

func (Uniform) Value(dir vmath.Vec4, rng *rand.Rand) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (Uniform) Generate(rng *rand.Rand) vmath.Vec4 {
	return vmath.RandomUnitVector(rng)
}
