package material

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/texture"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Lambertian is a perfectly diffuse (matte) material.
type Lambertian struct {
	Albedo texture.ColorSampler
}

// NewLambertian builds a Lambertian material from a constant color.
func NewLambertian(albedo vmath.Vec4) *Lambertian {
	return &Lambertian{Albedo: texture.NewConstant(albedo)}
}

// NewLambertianTextured builds a Lambertian material from any color sampler.
func NewLambertianTextured(albedo texture.ColorSampler) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult {
	return ScatterResult{
		Kind:        ScatteredWithPDF,
		Attenuation: l.Albedo.Sample(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewCosine(hit.Normal),
	}
}

func (l *Lambertian) Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4 {
	return vmath.Color(0, 0, 0)
}

func (l *Lambertian) ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Unit())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
