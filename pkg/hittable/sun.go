package hittable

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// thetaMax is the angular tolerance, in radians, within which a ray is
// considered to have hit the sun's direction exactly. The sun is a
// directional (delta) light, not a disc with real angular extent, so
// this is a numerical fudge rather than a physical angular radius.
// Ground truth: the original source's object/sun.rs.
const thetaMax = 0.001

// Sun is an infinite-distance directional light: a delta light with a
// single fixed direction rather than a real angular extent.
type Sun struct {
	Direction vmath.Vec4
	Material  material.Material
}

// NewSun builds a sun hittable pointing along direction (the direction
// rays must travel to reach the sun, i.e. the reverse of the direction
// light travels).
func NewSun(direction vmath.Vec4, mat material.Material) *Sun {
	return &Sun{Direction: direction.Unit(), Material: mat}
}

func (s *Sun) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	unitDir := ray.Direction.Unit()
	cosTheta := unitDir.Dot(s.Direction)
	if cosTheta < math.Cos(thetaMax) {
		return material.HitRecord{}, nil, false
	}

	t := math.MaxFloat64
	if t <= tMin || tMax <= t {
		return material.HitRecord{}, nil, false
	}

	var hit material.HitRecord
	hit.T = t
	hit.Point = ray.At(t)
	hit.FrontFace = true
	hit.Normal = s.Direction.Negate()

	return hit, s.Material, true
}

// BoundingBox returns an infinite box: the sun is unreachable by any
// finite ray, so it never needs to participate in spatial culling.
func (s *Sun) BoundingBox() aabb.AABB {
	inf := math.Inf(1)
	return aabb.New(vmath.Point(-inf, -inf, -inf), vmath.Point(inf, inf, inf))
}

func (s *Sun) PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64 {
	return 1.0
}

func (s *Sun) RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4 {
	return s.Direction
}
