package hittable

import (
	"math/rand"
	"sort"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// AxisMask restricts which axes BVH construction is allowed to split
// on. A scene that is flat along one axis (e.g. a floor of spheres)
// can be built with a mask that excludes it, so the random axis
// choice below never wastes a split on an axis with no spatial spread.
type AxisMask [3]bool

// Ground truth: the original source's object/bvh.rs AXES_* constants.
var (
	AxesX   = AxisMask{true, false, false}
	AxesY   = AxisMask{false, true, false}
	AxesZ   = AxisMask{false, false, true}
	AxesXY  = AxisMask{true, true, false}
	AxesXZ  = AxisMask{true, false, true}
	AxesYZ  = AxisMask{false, true, true}
	AxesAll = AxisMask{true, true, true}
)

// nullObject never hits anything; it fills the second child slot of a
// one-object BVH leaf so every node can keep a uniform two-children
// shape. Ground truth: the original source's object/bvh/null_obj.rs.
type nullObject struct{}

func (nullObject) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	return material.HitRecord{}, nil, false
}

func (nullObject) BoundingBox() aabb.AABB {
	return aabb.Empty()
}

// BVH is a binary bounding-volume hierarchy over a fixed object set,
// built once at scene-construction time. Unlike a conventional
// SAH/longest-axis BVH, each node picks its split axis uniformly at
// random (rejecting axes excluded by mask) rather than always
// splitting the longest axis -- a deliberate simplification carried
// over from the original source's object/bvh.rs in exchange for an
// O(n log n) build with no bounding-box-area bookkeeping.
type BVH struct {
	left, right Hittable
	bounds      aabb.AABB
}

// NewBVH builds a BVH over objects, splitting only on axes enabled by
// mask, using rng to pick each node's split axis.
func NewBVH(objects []Hittable, mask AxisMask, rng *rand.Rand) *BVH {
	return buildBVH(objects, mask, rng)
}

func buildBVH(objects []Hittable, mask AxisMask, rng *rand.Rand) *BVH {
	axis := randomAxis(mask, rng)

	switch len(objects) {
	case 1:
		node := &BVH{left: objects[0], right: nullObject{}}
		node.bounds = node.left.BoundingBox()
		return node

	case 2:
		node := &BVH{left: objects[0], right: objects[1]}
		node.bounds = node.left.BoundingBox().Union(node.right.BoundingBox())
		return node

	default:
		sorted := make([]Hittable, len(objects))
		copy(sorted, objects)
		sort.Slice(sorted, func(i, j int) bool {
			return axisMin(sorted[i], axis) < axisMin(sorted[j], axis)
		})

		mid := len(sorted) / 2
		left := buildBVH(sorted[:mid], mask, rng)
		right := buildBVH(sorted[mid:], mask, rng)

		node := &BVH{left: left, right: right}
		node.bounds = left.BoundingBox().Union(right.BoundingBox())
		return node
	}
}

func randomAxis(mask AxisMask, rng *rand.Rand) int {
	axis := rng.Intn(3)
	for !mask[axis] {
		axis = rng.Intn(3)
	}
	return axis
}

func axisMin(obj Hittable, axis int) float64 {
	box := obj.BoundingBox()
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

func (b *BVH) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	if !b.bounds.Hit(ray, tMin, tMax) {
		return material.HitRecord{}, nil, false
	}

	var closest material.HitRecord
	var closestMat material.Material
	found := false
	closestT := tMax

	if hit, mat, ok := b.left.Hit(ray, tMin, closestT, rng); ok {
		closest, closestMat, found = hit, mat, true
		closestT = hit.T
	}
	if hit, mat, ok := b.right.Hit(ray, tMin, closestT, rng); ok {
		closest, closestMat, found = hit, mat, true
	}

	return closest, closestMat, found
}

func (b *BVH) BoundingBox() aabb.AABB {
	return b.bounds
}

// PDFValue and RandomDirection are trivial: a BVH node is an
// acceleration structure, not a light, and is never itself sampled as
// one. Ground truth: the original's bvh.rs, which returns 0.0/(1,0,0)
// for the same reason.
func (b *BVH) PDFValue(origin, dir vmath.Vec4, rng *rand.Rand) float64 {
	return 0
}

func (b *BVH) RandomDirection(origin vmath.Vec4, rng *rand.Rand) vmath.Vec4 {
	return vmath.Direction(1, 0, 0)
}
