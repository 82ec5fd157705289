package material

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Dielectric is a transparent material (glass, water) that reflects or
// refracts each ray stochastically, weighted by Schlick's approximation
// of the Fresnel reflectance.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric builds a dielectric material with the given index of
// refraction (1.5 for typical glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult {
	var eta float64
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	} else {
		eta = d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction vmath.Vec4
	if cannotRefract || Reflectance(cosTheta, eta) > rng.Float64() {
		direction = unitDir.Reflect(hit.Normal)
	} else {
		direction = unitDir.Refract(hit.Normal, eta)
	}

	return ScatterResult{
		Kind:        ScatteredWithRay,
		Attenuation: vmath.Color(1, 1, 1),
		Scattered:   vmath.NewRay(hit.Point, direction),
	}
}

func (d *Dielectric) Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4 {
	return vmath.Color(0, 0, 0)
}

func (d *Dielectric) ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64 {
	return 0
}

// Reflectance computes the Fresnel reflectance using Schlick's
// approximation, for incidence cosine and a ratio of refractive indices.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
