package hittable

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Volume is a constant-density participating medium bounded by another
// hittable (its "boundary"). A ray that enters the boundary may
// scatter at a random point inside, sampled along an exponential
// free-path distribution; otherwise it passes through untouched.
// Ground truth: the original source's object/volume.rs.
type Volume struct {
	Boundary    Hittable
	Density     float64
	PhaseFn     material.Material
	negInvDensity float64
}

// NewVolume builds a volume of the given boundary, density, and phase
// function (normally material.NewIsotropic).
func NewVolume(boundary Hittable, density float64, phaseFn material.Material) *Volume {
	return &Volume{
		Boundary:      boundary,
		Density:       density,
		PhaseFn:       phaseFn,
		negInvDensity: -1.0 / density,
	}
}

func (v *Volume) BoundingBox() aabb.AABB {
	return v.Boundary.BoundingBox()
}

func (v *Volume) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	entry, _, ok := v.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return material.HitRecord{}, nil, false
	}

	exit, _, ok := v.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), rng)
	if !ok {
		return material.HitRecord{}, nil, false
	}

	if entry.T < tMin {
		entry.T = tMin
	}
	if exit.T > tMax {
		exit.T = tMax
	}
	if entry.T >= exit.T {
		return material.HitRecord{}, nil, false
	}
	if entry.T < 0 {
		entry.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (exit.T - entry.T) * rayLength
	hitDistance := v.negInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, nil, false
	}

	t := entry.T + hitDistance/rayLength

	var hit material.HitRecord
	hit.T = t
	hit.Point = ray.At(t)
	// Normal and UV are arbitrary inside a volume: nothing downstream
	// reads them (Isotropic's Scatter ignores the hit normal entirely),
	// they only exist because HitRecord is shared with surface hits.
	hit.Normal = vmath.Direction(1, 0, 0)
	hit.FrontFace = true

	return hit, v.PhaseFn, true
}
