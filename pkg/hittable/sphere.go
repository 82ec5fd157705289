package hittable

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Sphere is a center/radius primitive. Ground truth for the quadratic
// intersection test: the teacher's pkg/geometry/sphere.go. Ground truth
// for solid-angle light sampling (PDFValue/RandomDirection): the
// teacher's pkg/lights/sphere_light.go, factored out into
// pkg/pdf/sphere.go so both this type and any future light wrapper can
// share the cone-sampling math.
type Sphere struct {
	Center   vmath.Vec4
	Radius   float64
	Material material.Material
}

// NewSphere builds a sphere primitive.
func NewSphere(center vmath.Vec4, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	centerDiff := ray.Origin.Sub(s.Center)

	a := ray.Direction.LengthSquared()
	halfB := ray.Direction.Dot(centerDiff)
	c := centerDiff.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || tMax <= root {
		root = (-halfB + sqrtD) / a
		if root <= tMin || tMax <= root {
			return material.HitRecord{}, nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Scale(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi

	var hit material.HitRecord
	hit.Point = point
	hit.T = root
	hit.U = phi / (2.0 * math.Pi)
	hit.V = theta / math.Pi
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, s.Material, true
}

func (s *Sphere) BoundingBox() aabb.AABB {
	// A negative radius is the classic hollow-sphere trick (flips the
	// outward normal in Hit above without changing the intersection
	// test); the box must still use the absolute radius or Min/Max end
	// up swapped.
	absRadius := math.Abs(s.Radius)
	r := vmath.Direction(absRadius, absRadius, absRadius)
	return aabb.New(s.Center.Sub(r), s.Center.Add(r))
}

// PDFValue returns the solid-angle density of the given direction as
// seen from origin, for next-event-estimation sampling toward this
// sphere as a light.
func (s *Sphere) PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64 {
	ray := vmath.NewRay(origin, dir)
	if _, _, ok := s.Hit(ray, 0.001, math.Inf(1), rng); !ok {
		return 0
	}
	distance := s.Center.Sub(origin).Length()
	return pdf.SphereConeValue(distance, s.Radius)
}

// RandomDirection draws a direction from origin toward the sphere,
// sampling uniformly within the cone the sphere subtends.
func (s *Sphere) RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4 {
	toCenter := s.Center.Sub(origin)
	distance := toCenter.Length()

	localDir, _ := pdf.SampleSphereCone(distance, s.Radius, rng)
	basis := vmath.BasisFromW(toCenter.Unit())
	return basis.MulVec(localDir)
}
