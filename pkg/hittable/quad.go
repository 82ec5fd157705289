package hittable

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Quad is a planar parallelogram spanned by two edge vectors from a
// corner. Hit/BoundingBox follow the teacher's pkg/geometry/quad.go
// (barycentric plane test via a cached W vector, with a tighter AABB
// for axis-aligned quads). PDFValue/RandomDirection follow the
// original source's object/plane.rs, factored into
// pkg/pdf/quad.go.
type Quad struct {
	Corner   vmath.Vec4
	U, V     vmath.Vec4
	Material material.Material

	normal vmath.Vec4
	d      float64
	w      vmath.Vec4
	area   float64
}

// NewQuad builds a quad from a corner and two edge vectors.
func NewQuad(corner, u, v vmath.Vec4, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Unit()
	d := normal.Dot(corner)
	w := cross.Scale(1.0 / cross.Dot(cross))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        d,
		w:        w,
		area:     cross.Length(),
	}
}

func (q *Quad) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return material.HitRecord{}, nil, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if t < tMin || t > tMax {
		return material.HitRecord{}, nil, false
	}

	point := ray.At(t)
	hitVec := point.Sub(q.Corner)

	alpha := q.w.Dot(hitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVec))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return material.HitRecord{}, nil, false
	}

	var hit material.HitRecord
	hit.Point = point
	hit.T = t
	hit.U = alpha
	hit.V = beta
	hit.SetFaceNormal(ray, q.normal)

	return hit, q.Material, true
}

func (q *Quad) BoundingBox() aabb.AABB {
	corners := []vmath.Vec4{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	return aabb.FromPoints(corners...)
}

// PDFValue returns the solid-angle density of dir as seen from origin.
func (q *Quad) PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64 {
	ray := vmath.NewRay(origin, dir)
	hit, _, ok := q.Hit(ray, 0.001, math.Inf(1), rng)
	if !ok {
		return 0
	}
	distance := hit.T * dir.Length()
	cosine := math.Abs(dir.Dot(hit.Normal) / dir.Length())
	return pdf.QuadAreaToSolidAngle(1.0/q.area, distance, cosine)
}

// RandomDirection draws a uniformly distributed point on the quad and
// returns the direction from origin to it.
func (q *Quad) RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4 {
	p := q.Corner.Add(q.U.Scale(rng.Float64())).Add(q.V.Scale(rng.Float64()))
	return p.Sub(origin)
}
