package material

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Metal is a specular reflector, optionally fuzzed to approximate a
// rough conductor.
type Metal struct {
	Albedo vmath.Vec4
	Fuzz   float64 // 0 = perfect mirror, up to 1 = very rough
}

// NewMetal builds a metal material, clamping fuzz to [0, 1].
func NewMetal(albedo vmath.Vec4, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(vmath.RandomInUnitSphere(rng).Scale(m.Fuzz)).Unit()
	}
	scattered := vmath.NewRay(hit.Point, reflected)

	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{Kind: Absorbed}
	}

	return ScatterResult{
		Kind:        ScatteredWithRay,
		Attenuation: m.Albedo,
		Scattered:   scattered,
	}
}

func (m *Metal) Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4 {
	return vmath.Color(0, 0, 0)
}

func (m *Metal) ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64 {
	return 0
}
