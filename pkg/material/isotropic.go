package material

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/texture"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Isotropic scatters uniformly in all directions, the phase function
// used by Volume for participating media. Ground truth: the original
// source's material/isotropic.rs.
type Isotropic struct {
	Albedo texture.ColorSampler
}

// NewIsotropic builds an isotropic material from a constant color.
func NewIsotropic(albedo vmath.Vec4) *Isotropic {
	return &Isotropic{Albedo: texture.NewConstant(albedo)}
}

// NewIsotropicTextured builds an isotropic material from any color sampler.
func NewIsotropicTextured(albedo texture.ColorSampler) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult {
	// Scattering follows a true (uniform-sphere) density rather than a
	// delta spike, so it is mixed with light sampling via MIS like any
	// other ScatteredWithPDF material -- unlike the original source's
	// pre-enum isotropic.rs, which predates that refactor and returns a
	// bare (attenuation, scattered) pair with no PDF at all.
	return ScatterResult{
		Kind:        ScatteredWithPDF,
		Attenuation: i.Albedo.Sample(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewUniform(),
	}
}

func (i *Isotropic) Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4 {
	return vmath.Color(0, 0, 0)
}

func (i *Isotropic) ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64 {
	return 1.0 / (4.0 * math.Pi)
}
