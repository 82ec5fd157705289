package hittable

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Transform wraps a Hittable with an affine transform, applied
// incrementally: each Translate/Rotate*/Scale* call composes onto the
// running forward and inverse matrices rather than rebuilding from
// scratch. Ground truth: the original source's object/transform.rs.
// The forward matrix is premultiplied (new on the left) and the
// inverse is postmultiplied (new inverse on the right), matching the
// order the original composes `transform = new * old` and
// `inv_transform *= inv_new` -- reversing either order silently
// produces the wrong world transform for any chain of more than one
// call, so the asymmetry is intentional, not an oversight.
type Transform struct {
	Object        Hittable
	transform     vmath.Mat4
	invTransform  vmath.Mat4
	bbox          aabb.AABB
}

// NewTransform wraps object with the identity transform.
func NewTransform(object Hittable) *Transform {
	t := &Transform{
		Object:       object,
		transform:    vmath.IdentityMat4(),
		invTransform: vmath.IdentityMat4(),
	}
	t.updateBounds()
	return t
}

func (t *Transform) compose(forward, inverse vmath.Mat4) {
	t.transform = forward.Mul(t.transform)
	t.invTransform = t.invTransform.Mul(inverse)
	t.updateBounds()
}

// Translate offsets the object by v.
func (t *Transform) Translate(v vmath.Vec4) *Transform {
	t.compose(vmath.Translate(v), vmath.Translate(v.Negate()))
	return t
}

// RotateX rotates the object by angle radians about the X axis.
func (t *Transform) RotateX(angle float64) *Transform {
	t.compose(vmath.RotateX(angle), vmath.RotateX(-angle))
	return t
}

// RotateY rotates the object by angle radians about the Y axis.
func (t *Transform) RotateY(angle float64) *Transform {
	t.compose(vmath.RotateY(angle), vmath.RotateY(-angle))
	return t
}

// RotateZ rotates the object by angle radians about the Z axis.
func (t *Transform) RotateZ(angle float64) *Transform {
	t.compose(vmath.RotateZ(angle), vmath.RotateZ(-angle))
	return t
}

// Scale scales the object non-uniformly along each axis.
func (t *Transform) Scale(sx, sy, sz float64) *Transform {
	t.compose(vmath.Scale3(sx, sy, sz), vmath.Scale3(1/sx, 1/sy, 1/sz))
	return t
}

// ScaleUniform scales the object by the same factor on every axis.
func (t *Transform) ScaleUniform(s float64) *Transform {
	return t.Scale(s, s, s)
}

// updateBounds recomputes the world-space bounding box from the 8
// transformed corners of the wrapped object's object-space box.
func (t *Transform) updateBounds() {
	local := t.Object.BoundingBox()
	corners := [8]vmath.Vec4{
		vmath.Point(local.Min.X, local.Min.Y, local.Min.Z),
		vmath.Point(local.Max.X, local.Min.Y, local.Min.Z),
		vmath.Point(local.Min.X, local.Max.Y, local.Min.Z),
		vmath.Point(local.Min.X, local.Min.Y, local.Max.Z),
		vmath.Point(local.Max.X, local.Max.Y, local.Min.Z),
		vmath.Point(local.Max.X, local.Min.Y, local.Max.Z),
		vmath.Point(local.Min.X, local.Max.Y, local.Max.Z),
		vmath.Point(local.Max.X, local.Max.Y, local.Max.Z),
	}
	for i := range corners {
		corners[i] = t.transform.MulVec(corners[i])
	}
	t.bbox = aabb.FromPoints(corners[:]...)
}

func (t *Transform) BoundingBox() aabb.AABB {
	return t.bbox
}

func (t *Transform) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	// Direction is transformed unnormalized so that t stays in the same
	// units on both sides of the transform -- normalizing it here would
	// require rescaling tMin/tMax to compensate.
	localRay := vmath.NewRay(
		t.invTransform.MulVec(ray.Origin),
		t.invTransform.MulVec(ray.Direction),
	)

	hit, mat, ok := t.Object.Hit(localRay, tMin, tMax, rng)
	if !ok {
		return material.HitRecord{}, nil, false
	}

	// hit.Normal already faces against localRay (set by the wrapped
	// object's own Hit); transforming it preserves that orientation, so
	// FrontFace carries over unchanged rather than being recomputed.
	hit.Point = t.transform.MulVec(hit.Point)
	hit.Normal = t.transform.MulVec(hit.Normal).Unit()

	return hit, mat, true
}
