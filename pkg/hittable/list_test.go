package hittable

import (
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestListHitsClosestObject(t *testing.T) {
	l := NewList()
	l.Add(NewSphere(vmath.Point(0, 0, -5), 1, material.NewLambertian(vmath.Color(1, 0, 0))))
	l.Add(NewSphere(vmath.Point(0, 0, -10), 1, material.NewLambertian(vmath.Color(0, 1, 0))))

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	hit, _, ok := l.Hit(ray, 0.001, 1000, rng)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, hit.T, 1e-9)
}

func TestListEmptyNeverHits(t *testing.T) {
	l := NewList()
	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := l.Hit(ray, 0.001, 1000, rng)
	assert.False(t, ok)
}

func TestListDisableBoundsCheckStillHits(t *testing.T) {
	l := NewList()
	l.DisableBoundsCheck = true
	l.Add(NewSphere(vmath.Point(0, 0, -5), 1, material.NewLambertian(vmath.Color(1, 0, 0))))

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := l.Hit(ray, 0.001, 1000, rng)
	assert.True(t, ok)
}

func TestListBoundingBoxUnionsChildren(t *testing.T) {
	l := NewList()
	l.Add(NewSphere(vmath.Point(-5, 0, 0), 1, material.NewLambertian(vmath.Color(1, 0, 0))))
	l.Add(NewSphere(vmath.Point(5, 0, 0), 1, material.NewLambertian(vmath.Color(0, 1, 0))))

	box := l.BoundingBox()
	assert.LessOrEqual(t, box.Min.X, -6.0)
	assert.GreaterOrEqual(t, box.Max.X, 6.0)
}
