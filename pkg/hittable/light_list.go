package hittable

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Light is what a scene's lights root is built from: something both
// intersectable (so the integrator's direct recursion can still hit
// it) and sampleable (so it can be explicitly importance-sampled).
// Sphere, Quad, Sky, and Sun all satisfy this without declaring it.
type Light interface {
	Hittable
	Sampleable
}

// LightList aggregates several lights into the single Sampleable root
// spec.md's scene graph names `lights`. The original's ObjectList
// (object/list.rs) stubs pdf_value/random to 0/(1,0,0) since nothing
// in the source ever built a multi-light PDF -- our HittablePDF needs
// a real `lights` root to sample from, so this picks a member
// uniformly at random and averages its members' PDFValue, the
// standard hittable_list PDF construction this renderer's lineage
// (Ray Tracing: The Rest Of Your Life) is built from.
type LightList struct {
	Lights []Light

	list *List
}

// NewLightList builds an empty lights root.
func NewLightList() *LightList {
	return &LightList{list: NewList()}
}

// Add registers a light, making it both intersectable and sampleable.
func (ll *LightList) Add(light Light) {
	ll.Lights = append(ll.Lights, light)
	ll.list.Add(light)
}

func (ll *LightList) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	return ll.list.Hit(ray, tMin, tMax, rng)
}

func (ll *LightList) BoundingBox() aabb.AABB {
	return ll.list.BoundingBox()
}

// PDFValue averages each light's PDFValue for dir, matching
// hittable_list::pdf_value's 1/N-weighted sum over members.
func (ll *LightList) PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64 {
	if len(ll.Lights) == 0 {
		return 0
	}
	sum := 0.0
	for _, light := range ll.Lights {
		sum += light.PDFValue(origin, dir, rng)
	}
	return sum / float64(len(ll.Lights))
}

// RandomDirection picks one light uniformly at random and samples a
// direction toward it.
func (ll *LightList) RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4 {
	if len(ll.Lights) == 0 {
		return vmath.Direction(1, 0, 0)
	}
	i := rng.Intn(len(ll.Lights))
	return ll.Lights[i].RandomDirection(origin, rng)
}
