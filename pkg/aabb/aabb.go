// Package aabb implements axis-aligned bounding boxes used by every
// hittable for both BVH/octree construction and the ray-box slab test.
package aabb

import (
	"math"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// epsilonPad is the minimum half-width applied to every axis at
// construction time, so that an infinitesimally thin box (an
// axis-aligned quad, say) still has a testable volume. Ported from the
// original source's EPSILON_VEC, applied unconditionally rather than as
// an ad hoc per-shape fix-up.
const epsilonPad = 1e-3

// AABB is an axis-aligned bounding box stored as two corner points.
type AABB struct {
	Min, Max vmath.Vec4
}

// Empty returns a box that contains nothing; unioning it with any other
// box returns that other box unchanged.
func Empty() AABB {
	return AABB{
		Min: vmath.Point(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: vmath.Point(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// New builds an AABB from two corners, padding any degenerate axis by
// epsilonPad.
func New(min, max vmath.Vec4) AABB {
	return pad(AABB{Min: min, Max: max})
}

// FromPoints builds an AABB bounding every given point.
func FromPoints(points ...vmath.Vec4) AABB {
	if len(points) == 0 {
		return Empty()
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = vmath.Point(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = vmath.Point(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}
	return New(min, max)
}

func pad(b AABB) AABB {
	axis := func(lo, hi *float64) {
		if *hi-*lo < 2*epsilonPad {
			mid := (*hi + *lo) / 2
			*lo = mid - epsilonPad
			*hi = mid + epsilonPad
		}
	}
	axis(&b.Min.X, &b.Max.X)
	axis(&b.Min.Y, &b.Max.Y)
	axis(&b.Min.Z, &b.Max.Z)
	return b
}

func (b AABB) minAxis(axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

func (b AABB) maxAxis(axis int) float64 {
	switch axis {
	case 0:
		return b.Max.X
	case 1:
		return b.Max.Y
	default:
		return b.Max.Z
	}
}

func originAxis(o vmath.Vec4, axis int) float64 {
	switch axis {
	case 0:
		return o.X
	case 1:
		return o.Y
	default:
		return o.Z
	}
}

func invDirAxis(inv vmath.Vec4, axis int) float64 {
	return originAxis(inv, axis)
}

// bounds returns the corner (Min or Max) selected by sign, per axis; this
// is the Williams et al. "parameterized by slab sign" trick, letting the
// inverse-direction sign precomputed on the ray pick the near/far slab
// directly instead of branching per axis per test.
func (b AABB) bounds(axis, which int) float64 {
	if which == 0 {
		return b.minAxis(axis)
	}
	return b.maxAxis(axis)
}

// Hit tests whether ray intersects the box within the parameter interval
// [tMin, tMax], using the ray's precomputed inverse direction and sign.
func (b AABB) Hit(ray vmath.Ray, tMin, tMax float64) bool {
	if b.IsInverted() {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		invD := invDirAxis(ray.InvDirection, axis)
		o := originAxis(ray.Origin, axis)

		near := b.bounds(axis, ray.Sign[axis])
		far := b.bounds(axis, 1-ray.Sign[axis])

		t0 := (near - o) * invD
		t1 := (far - o) * invD

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Contains reports whether point p lies within the box (inclusive),
// mainly useful for tests.
func (b AABB) Contains(p vmath.Vec4) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: vmath.Point(math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)),
		Max: vmath.Point(math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)),
	}
}

// Center returns the box's midpoint.
func (b AABB) Center() vmath.Vec4 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() vmath.Vec4 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the box's surface area.
func (b AABB) SurfaceArea() float64 {
	s := b.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=x, 1=y, 2=z) with the greatest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// IsValid reports whether min <= max on every axis.
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Expand returns a box grown by amount on every side, on every axis.
func (b AABB) Expand(amount float64) AABB {
	d := vmath.Direction(amount, amount, amount)
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// IsInverted reports whether the box is the BVH's null-sentinel shape: an
// inverted (+Inf, -Inf) box that must never intersect any ray. Hit
// checks it first and reports a miss for any such box.
func (b AABB) IsInverted() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}
