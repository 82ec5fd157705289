package hittable

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Box is a rectangular solid built from 6 Quad faces, optionally rotated.
// Ground truth: the teacher's pkg/geometry/box.go. Size is a half-extent,
// so Size(1,1,1) is a 2x2x2 box, and rotation is applied X then Y then Z
// (matching the teacher's Vec3.Rotate convention).
type Box struct {
	Center   vmath.Vec4
	Size     vmath.Vec4
	Rotation vmath.Vec4
	Material material.Material

	faces [6]*Quad
	bbox  aabb.AABB
}

// NewBox builds a box with the given center, half-extents, rotation
// (radians, X/Y/Z applied in that order), and material.
func NewBox(center, size, rotation vmath.Vec4, mat material.Material) *Box {
	b := &Box{Center: center, Size: size, Rotation: rotation, Material: mat}
	b.generateFaces()
	return b
}

// NewAxisAlignedBox builds a box with no rotation.
func NewAxisAlignedBox(center, size vmath.Vec4, mat material.Material) *Box {
	return NewBox(center, size, vmath.Direction(0, 0, 0), mat)
}

func (b *Box) rotate(v vmath.Vec4) vmath.Vec4 {
	rot := vmath.RotateZ(b.Rotation.Z).Mul(vmath.RotateY(b.Rotation.Y)).Mul(vmath.RotateX(b.Rotation.X))
	return rot.MulVec(v)
}

func (b *Box) generateFaces() {
	corners := [8]vmath.Vec4{
		vmath.Direction(-1, -1, -1),
		vmath.Direction(1, -1, -1),
		vmath.Direction(1, 1, -1),
		vmath.Direction(-1, 1, -1),
		vmath.Direction(-1, -1, 1),
		vmath.Direction(1, -1, 1),
		vmath.Direction(1, 1, 1),
		vmath.Direction(-1, 1, 1),
	}

	for i := range corners {
		scaled := vmath.Direction(corners[i].X*b.Size.X, corners[i].Y*b.Size.Y, corners[i].Z*b.Size.Z)
		corners[i] = b.rotate(scaled).Add(b.Center)
	}

	b.faces[0] = NewQuad(corners[4], corners[5].Sub(corners[4]), corners[7].Sub(corners[4]), b.Material) // front  Z+
	b.faces[1] = NewQuad(corners[1], corners[0].Sub(corners[1]), corners[2].Sub(corners[1]), b.Material) // back   Z-
	b.faces[2] = NewQuad(corners[5], corners[1].Sub(corners[5]), corners[6].Sub(corners[5]), b.Material) // right  X+
	b.faces[3] = NewQuad(corners[0], corners[4].Sub(corners[0]), corners[3].Sub(corners[0]), b.Material) // left   X-
	b.faces[4] = NewQuad(corners[3], corners[7].Sub(corners[3]), corners[2].Sub(corners[3]), b.Material) // top    Y+
	b.faces[5] = NewQuad(corners[4], corners[0].Sub(corners[4]), corners[5].Sub(corners[4]), b.Material) // bottom Y-

	b.bbox = aabb.FromPoints(corners[:]...)
}

func (b *Box) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	var closestHit material.HitRecord
	var closestMat material.Material
	found := false
	closestT := tMax

	for _, face := range b.faces {
		if hit, mat, ok := face.Hit(ray, tMin, closestT, rng); ok {
			closestT = hit.T
			closestHit = hit
			closestMat = mat
			found = true
		}
	}

	return closestHit, closestMat, found
}

func (b *Box) BoundingBox() aabb.AABB {
	return b.bbox
}
