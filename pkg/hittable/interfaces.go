// Package hittable implements the scene objects that a ray can strike:
// primitive shapes, the acceleration structures that aggregate them, and
// the infinite-distance/participating-medium objects that aren't really
// "shapes" but satisfy the same interface.
package hittable

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Hittable is anything a ray can be tested against. Every scene object,
// from a single sphere to a whole BVH subtree, satisfies this.
type Hittable interface {
	Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool)
	BoundingBox() aabb.AABB
}

// Sampleable is implemented by hittables that can be explicitly sampled
// as a light: given a shadow-ray origin, return the density of a direction
// (PDFValue) or draw one (RandomDirection). It is structurally identical
// to pdf.Target, so any Sampleable also satisfies pdf.Target without this
// package importing pkg/pdf.
type Sampleable interface {
	PDFValue(origin vmath.Vec4, dir vmath.Vec4, rng *rand.Rand) float64
	RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4
}
