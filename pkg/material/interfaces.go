// Package material implements the BSDFs attached to hittables: the
// scatter/emit/PDF machinery the integrator drives.
package material

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// HitRecord describes a ray-hittable intersection, passed to a
// material's Scatter/Emit/ScatteringPDF methods.
type HitRecord struct {
	Point     vmath.Vec4
	Normal    vmath.Vec4
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal to face against the incoming ray and
// records which side was hit. outwardNormal must already have unit
// length.
func (h *HitRecord) SetFaceNormal(ray vmath.Ray, outwardNormal vmath.Vec4) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterKind tags which variant of ScatterResult is populated. Go has
// no sum types, so this models the original's ScatterResult enum
// (Absorbed / Emissive / ScatteredWithRay / ScatteredWithPDF) as a
// discriminated struct instead of a Rust-style enum.
type ScatterKind int

const (
	// Absorbed: the ray is absorbed, contributing only whatever emission
	// Emit already added. No further recursion.
	Absorbed ScatterKind = iota
	// Emissive: this hit point is a light source; the caller reads Emit
	// directly rather than inspecting this result (included for parity
	// with the original's enum, kept so Material.Scatter's return stays
	// uniform across all material kinds).
	Emissive
	// ScatteredWithRay: specular/delta scattering (mirror, glass). The
	// integrator recurses along Scattered with no PDF/MIS weighting.
	ScatteredWithRay
	// ScatteredWithPDF: scattering that follows a distribution (diffuse,
	// glossy). The integrator must combine this with light sampling via
	// MIS, weighting by PDF.Value of the chosen direction.
	ScatteredWithPDF
)

// ScatterResult is the outcome of Material.Scatter. Exactly one payload
// is meaningful depending on Kind: ScatteredWithRay reads Scattered;
// ScatteredWithPDF reads PDF.
type ScatterResult struct {
	Kind        ScatterKind
	Attenuation vmath.Vec4
	Scattered   vmath.Ray
	PDF         pdf.PDF
}

// IsSpecular reports whether this result is a delta-distribution bounce
// that must not be combined with next-event estimation.
func (s ScatterResult) IsSpecular() bool {
	return s.Kind == ScatteredWithRay
}

// Material is the BSDF interface every hittable's surface implements.
type Material interface {
	// Scatter decides how an incoming ray interacts with the surface at hit.
	Scatter(rayIn vmath.Ray, hit HitRecord, rng *rand.Rand) ScatterResult

	// Emit returns any light emitted at hit along -rayIn.Direction. Most
	// materials return the zero color.
	Emit(rayIn vmath.Ray, hit HitRecord) vmath.Vec4

	// ScatteringPDF returns the density of sampling `scattered` given
	// `rayIn` hit at `hit`, used by the integrator to weight light
	// samples against this material's BSDF under MIS. Meaningless (and
	// unused) for specular materials.
	ScatteringPDF(rayIn, scattered vmath.Ray, hit HitRecord) float64
}
