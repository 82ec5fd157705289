package pdf

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Target is the subset of the hittable interface a solid-angle PDF needs.
// It is declared here, at the consumer, rather than in pkg/hittable, so
// pkg/hittable does not need to import pkg/pdf: any hittable implementing
// Sphere-/Quad-cone sampling satisfies it structurally.
type Target interface {
	PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64
	RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4
}

// Hittable samples directions toward a target object as seen from a
// fixed origin (solid-angle importance sampling for next-event
// estimation toward an emitter).
type Hittable struct {
	Object Target
	Origin vmath.Vec4
}

// NewHittable builds a PDF that samples directions toward object from origin.
func NewHittable(object Target, origin vmath.Vec4) *Hittable {
	return &Hittable{Object: object, Origin: origin}
}

func (h *Hittable) Value(dir vmath.Vec4, rng *rand.Rand) float64 {
	return h.Object.PDFValue(h.Origin, dir, rng)
}

func (h *Hittable) Generate(rng *rand.Rand) vmath.Vec4 {
	return h.Object.RandomDirection(h.Origin, rng)
}
