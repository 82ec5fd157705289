package pdf

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Cosine is a cosine-weighted hemisphere distribution around a normal w,
// the importance-sampling distribution matched to a Lambertian BRDF.
type Cosine struct {
	basis vmath.Mat4
	w     vmath.Vec4
}

// NewCosine builds a cosine PDF oriented around normal w.
func NewCosine(w vmath.Vec4) *Cosine {
	return &Cosine{basis: vmath.BasisFromW(w), w: w.Unit()}
}

func (c *Cosine) Value(dir vmath.Vec4, rng *rand.Rand) float64 {
	cosTheta := dir.Unit().Dot(c.w)
	return math.Max(0, cosTheta/math.Pi)
}

func (c *Cosine) Generate(rng *rand.Rand) vmath.Vec4 {
	return c.basis.MulVec(vmath.RandomCosineDirection(rng))
}
