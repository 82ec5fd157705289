package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestAxisAlignedBoxHitsFace(t *testing.T) {
	b := NewAxisAlignedBox(vmath.Point(0, 0, 0), vmath.Direction(1, 1, 1), material.NewLambertian(vmath.Color(1, 1, 1)))
	ray := vmath.NewRay(vmath.Point(5, 0, 0), vmath.Direction(-1, 0, 0))
	rng := rand.New(rand.NewSource(1))

	hit, mat, ok := b.Hit(ray, 0.001, 1000, rng)
	assert.True(t, ok)
	assert.NotNil(t, mat)
	assert.InDelta(t, 4.0, hit.T, 1e-9)
}

func TestAxisAlignedBoxMisses(t *testing.T) {
	b := NewAxisAlignedBox(vmath.Point(0, 0, 0), vmath.Direction(1, 1, 1), material.NewLambertian(vmath.Color(1, 1, 1)))
	ray := vmath.NewRay(vmath.Point(5, 5, 5), vmath.Direction(1, 0, 0))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := b.Hit(ray, 0.001, 1000, rng)
	assert.False(t, ok)
}

func TestRotatedBoxBoundingBoxGrows(t *testing.T) {
	axisAligned := NewAxisAlignedBox(vmath.Point(0, 0, 0), vmath.Direction(1, 1, 1), material.NewLambertian(vmath.Color(1, 1, 1)))
	rotated := NewBox(vmath.Point(0, 0, 0), vmath.Direction(1, 1, 1), vmath.Direction(0, math.Pi/4, 0), material.NewLambertian(vmath.Color(1, 1, 1)))

	assert.Greater(t, rotated.BoundingBox().Size().X, axisAligned.BoundingBox().Size().X)
}
