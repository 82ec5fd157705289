package hittable

import (
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestVolumeMissesWhenBoundaryMissed(t *testing.T) {
	boundary := NewSphere(vmath.Point(0, 0, 0), 1, material.NewLambertian(vmath.Color(1, 1, 1)))
	vol := NewVolume(boundary, 1.0, material.NewIsotropic(vmath.Color(1, 1, 1)))

	ray := vmath.NewRay(vmath.Point(10, 10, 10), vmath.Direction(1, 0, 0))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := vol.Hit(ray, 0.001, 1000, rng)
	assert.False(t, ok)
}

func TestVolumeHighDensityScattersNearEntry(t *testing.T) {
	boundary := NewSphere(vmath.Point(0, 0, 0), 1, material.NewLambertian(vmath.Color(1, 1, 1)))
	vol := NewVolume(boundary, 1000.0, material.NewIsotropic(vmath.Color(1, 1, 1)))

	ray := vmath.NewRay(vmath.Point(0, 0, 5), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	hit, mat, ok := vol.Hit(ray, 0.001, 1000, rng)
	assert.True(t, ok)
	assert.NotNil(t, mat)
	// Entry to the unit sphere along this ray is at t=4; a very high
	// density should make the free-path sample land just past entry.
	assert.Less(t, hit.T, 4.5)
	assert.GreaterOrEqual(t, hit.T, 4.0)
}

func TestVolumeLowDensityRarelyScattersWithinBoundary(t *testing.T) {
	boundary := NewSphere(vmath.Point(0, 0, 0), 1, material.NewLambertian(vmath.Color(1, 1, 1)))
	vol := NewVolume(boundary, 0.0001, material.NewIsotropic(vmath.Color(1, 1, 1)))

	ray := vmath.NewRay(vmath.Point(0, 0, 5), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(7))

	hits := 0
	trials := 50
	for i := 0; i < trials; i++ {
		if _, _, ok := vol.Hit(ray, 0.001, 1000, rng); ok {
			hits++
		}
	}
	assert.Less(t, hits, trials/2)
}

func TestVolumeBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(vmath.Point(0, 0, 0), 1, material.NewLambertian(vmath.Color(1, 1, 1)))
	vol := NewVolume(boundary, 1.0, material.NewIsotropic(vmath.Color(1, 1, 1)))

	assert.Equal(t, boundary.BoundingBox(), vol.BoundingBox())
}
