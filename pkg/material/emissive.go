package material

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/texture"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Emissive is a light-emitting material; it never scatters a ray that
// hits it (Scatter always reports Emissive) and instead contributes
// through Emit.
type Emissive struct {
	Emission texture.ColorSampler
}

// NewEmissive builds an emissive material from a constant color.
func NewEmissive(emission vmath.Vec4) *Emissive {
	return &Emissive{Emission: texture.NewConstant(emission)}
}

// NewEmissiveTextured builds an emissive material from any color sampler.
func NewEmissiveTextured(emission texture.ColorSampler) *Emissive {
	return &Emissive{Emission: emission}
}

func (e *Emissive) Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult {
	return ScatterResult{Kind: Emissive}
}

// Emit returns the emission color, but only from the front face -- a
// back-facing hit (ray entering the light's interior) emits nothing, so
// e.g. a sphere light does not illuminate itself from the inside.
func (e *Emissive) Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4 {
	if !hit.FrontFace {
		return vmath.Color(0, 0, 0)
	}
	return e.Emission.Sample(hit.U, hit.V, hit.Point)
}

func (e *Emissive) ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64 {
	return 0
}
