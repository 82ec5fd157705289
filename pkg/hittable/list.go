package hittable

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// List is an unaccelerated, linear collection of hittables -- scenes
// build one up front and then wrap it in a BVH, but a List is also
// useful standalone for a small number of objects (a mesh's list of
// faces before an octree exists, or a Box's six Quad faces). Ground
// truth: the original source's object/list.rs.
type List struct {
	Objects []Hittable

	// DisableBoundsCheck skips the bounding-box pre-test in Hit. The
	// original source notes this exists as a workaround for volumes:
	// a Volume's own BoundingBox matches its boundary's, but the
	// boundary's Hit is invoked directly by Volume.Hit with an
	// unbounded interval, so gating the List's pre-test on a
	// possibly-stale bbox is unnecessary overhead at best and a correctness
	// risk at worst if the list is rebuilt without updating bounds.
	DisableBoundsCheck bool

	bbox     aabb.AABB
	boundsOK bool
}

// NewList builds an empty list.
func NewList() *List {
	return &List{bbox: aabb.Empty()}
}

// Add appends an object and extends the cached bounding box.
func (l *List) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
	if !l.boundsOK {
		l.bbox = obj.BoundingBox()
		l.boundsOK = true
	} else {
		l.bbox = l.bbox.Union(obj.BoundingBox())
	}
}

func (l *List) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	if !l.DisableBoundsCheck && l.boundsOK && !l.bbox.Hit(ray, tMin, tMax) {
		return material.HitRecord{}, nil, false
	}

	var closest material.HitRecord
	var closestMat material.Material
	found := false
	closestT := tMax

	for _, obj := range l.Objects {
		if hit, mat, ok := obj.Hit(ray, tMin, closestT, rng); ok {
			closest = hit
			closestMat = mat
			closestT = hit.T
			found = true
		}
	}

	return closest, closestMat, found
}

func (l *List) BoundingBox() aabb.AABB {
	return l.bbox
}
