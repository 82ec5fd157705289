package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestSunHitsExactDirection(t *testing.T) {
	sun := NewSun(vmath.Direction(0, 1, 0), material.NewEmissive(vmath.Color(10, 10, 10)))
	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 1, 0))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := sun.Hit(ray, 0.001, math.Inf(1), rng)
	assert.True(t, ok)
}

func TestSunMissesOffAngleRay(t *testing.T) {
	sun := NewSun(vmath.Direction(0, 1, 0), material.NewEmissive(vmath.Color(10, 10, 10)))
	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(1, 0, 0))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := sun.Hit(ray, 0.001, math.MaxFloat64, rng)
	assert.False(t, ok)
}

func TestSunPDFValueIsDelta(t *testing.T) {
	sun := NewSun(vmath.Direction(0, 1, 0), material.NewEmissive(vmath.Color(1, 1, 1)))
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 1.0, sun.PDFValue(vmath.Point(0, 0, 0), vmath.Direction(0, 1, 0), rng))
}

func TestSunRandomDirectionIsFixed(t *testing.T) {
	sun := NewSun(vmath.Direction(0, 1, 0), material.NewEmissive(vmath.Color(1, 1, 1)))
	rng := rand.New(rand.NewSource(1))
	dir := sun.RandomDirection(vmath.Point(0, 0, 0), rng)
	assert.InDelta(t, 1.0, dir.Y, 1e-9)
}
