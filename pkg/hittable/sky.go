package hittable

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Sky is an infinite-distance environment light: every ray that
// doesn't hit anything else eventually hits the sky. Ground truth:
// the original source's object/sky.rs.
type Sky struct {
	Material material.Material
}

// NewSky builds a sky hittable from an emissive (or textured) material,
// typically sampled by UV for a gradient or an environment image.
func NewSky(mat material.Material) *Sky {
	return &Sky{Material: mat}
}

func (s *Sky) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	// The sky always sits at t=MaxFloat64, so it only "wins" the hit
	// test when nothing closer has already shrunk tMax -- the ordinary
	// tMin<t<tMax interval test rejects it as soon as anything else in
	// the scene has been hit first.
	t := math.MaxFloat64
	if t <= tMin || tMax <= t {
		return material.HitRecord{}, nil, false
	}

	unitDir := ray.Direction.Unit()
	u := math.Atan2(unitDir.X, unitDir.Z)/(2*math.Pi) + 0.5
	v := unitDir.Dot(vmath.Direction(0, 1, 0))/2 + 0.5

	var hit material.HitRecord
	hit.T = t
	hit.Point = ray.At(t)
	hit.U, hit.V = u, v
	hit.FrontFace = true
	hit.Normal = unitDir.Negate()

	return hit, s.Material, true
}

// BoundingBox returns an infinite box: the sky surrounds everything.
func (s *Sky) BoundingBox() aabb.AABB {
	inf := math.Inf(1)
	return aabb.New(vmath.Point(-inf, -inf, -inf), vmath.Point(inf, inf, inf))
}

func (s *Sky) PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (s *Sky) RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4 {
	return vmath.RandomUnitVector(rng)
}
