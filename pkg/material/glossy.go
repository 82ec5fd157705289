package material

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/texture"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Glossy is a Fresnel-weighted mix of a specular coat (Metal-like,
// fuzzed by Roughness) and a cosine-weighted diffuse base (Lambertian-
// like), per spec.md §4.5's material table: "With Fresnel probability
// ρ: specular like Metal; else diffuse like Lambertian". The original
// source's material/glossy.rs has no such branch (pure cosine-weighted
// diffuse, identical to Lambertian); IOR is this renderer's own
// addition needed to evaluate Schlick reflectance, since the original
// never carried one for Glossy either.
type Glossy struct {
	Albedo    texture.ColorSampler
	Roughness texture.FloatSampler
	IOR       float64
}

// NewGlossy builds a glossy material from color and roughness samplers,
// defaulting IOR to 1.5 (the grammar's own default for glass/glossy
// coats, see pkg/sceneio's "glossy"/"glass" declarations).
func NewGlossy(albedo texture.ColorSampler, roughness texture.FloatSampler) *Glossy {
	return &Glossy{Albedo: albedo, Roughness: roughness, IOR: 1.5}
}

func (g *Glossy) Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult {
	unitDir := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Negate().Dot(hit.Normal), 1.0)
	eta := 1.0 / g.IOR
	if !hit.FrontFace {
		eta = g.IOR
	}

	if Reflectance(cosTheta, eta) > rng.Float64() {
		fuzz := g.Roughness.SampleFloat(hit.U, hit.V, hit.Point)
		reflected := unitDir.Reflect(hit.Normal)
		if fuzz > 0 {
			reflected = reflected.Add(vmath.RandomInUnitSphere(rng).Scale(fuzz)).Unit()
		}
		scattered := vmath.NewRay(hit.Point, reflected)
		if scattered.Direction.Dot(hit.Normal) <= 0 {
			return ScatterResult{Kind: Absorbed}
		}
		return ScatterResult{
			Kind:        ScatteredWithRay,
			Attenuation: g.Albedo.Sample(hit.U, hit.V, hit.Point),
			Scattered:   scattered,
		}
	}

	return ScatterResult{
		Kind:        ScatteredWithPDF,
		Attenuation: g.Albedo.Sample(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewCosine(hit.Normal),
	}
}

func (g *Glossy) Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4 {
	return vmath.Color(0, 0, 0)
}

func (g *Glossy) ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Unit())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
