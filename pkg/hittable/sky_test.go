package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestSkyAlwaysHitsAtInfinity(t *testing.T) {
	sky := NewSky(material.NewEmissive(vmath.Color(0.5, 0.7, 1.0)))
	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 1, 0))
	rng := rand.New(rand.NewSource(1))

	hit, _, ok := sky.Hit(ray, 0.001, math.Inf(1), rng)
	assert.True(t, ok)
	assert.Equal(t, math.MaxFloat64, hit.T)
}

func TestSkyDoesNotOverrideCloserHit(t *testing.T) {
	sky := NewSky(material.NewEmissive(vmath.Color(0.5, 0.7, 1.0)))
	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 1, 0))
	rng := rand.New(rand.NewSource(1))

	_, _, ok := sky.Hit(ray, 0.001, 10, rng)
	assert.False(t, ok)
}

func TestSkyPDFValueIsUniformSolidAngle(t *testing.T) {
	sky := NewSky(material.NewEmissive(vmath.Color(1, 1, 1)))
	rng := rand.New(rand.NewSource(1))
	assert.InDelta(t, 1.0/(4*math.Pi), sky.PDFValue(vmath.Point(0, 0, 0), vmath.Direction(0, 1, 0), rng), 1e-9)
}

func TestSkyBoundingBoxIsInfinite(t *testing.T) {
	sky := NewSky(material.NewEmissive(vmath.Color(1, 1, 1)))
	box := sky.BoundingBox()
	assert.True(t, box.Contains(vmath.Point(1e9, -1e9, 1e9)))
}
