package vmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDirectionTags(t *testing.T) {
	p := Point(1, 2, 3)
	d := Direction(1, 2, 3)
	assert.True(t, p.IsPoint())
	assert.True(t, d.IsDirection())

	// point - point = direction
	assert.True(t, p.Sub(p).IsDirection())
	// point + direction = point
	assert.True(t, p.Add(d).IsPoint())
}

func TestVec4Arithmetic(t *testing.T) {
	a := Direction(1, 2, 3)
	b := Direction(4, 5, 6)

	assert.Equal(t, Direction(5, 7, 9), a.Add(b))
	assert.Equal(t, Direction(-3, -3, -3), a.Sub(b))
	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.Equal(t, Direction(-3, 6, -3), a.Cross(b))
}

func TestUnitNormalizesLength(t *testing.T) {
	v := Direction(3, 4, 0)
	u := v.Unit()
	assert.InDelta(t, 1.0, u.Length(), 1e-12)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
}

func TestReflect(t *testing.T) {
	v := Direction(1, -1, 0)
	n := Direction(0, 1, 0)
	r := v.Reflect(n)
	assert.InDelta(t, 1, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)
}

func TestRandomUnitVectorIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(rng)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomInUnitDiskStaysInXYPlaneUnitDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		v := RandomInUnitDisk(rng)
		assert.Equal(t, 0.0, v.Z)
		assert.Less(t, v.LengthSquared(), 1.0)
	}
}

func TestRandomCosineDirectionIsUnitAndUpperHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 200; i++ {
		v := RandomCosineDirection(rng)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
		assert.GreaterOrEqual(t, v.Z, 0.0)
	}
}

func TestLuminanceOfWhiteIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, Color(1, 1, 1).Luminance(), 1e-9)
}

func TestNearZero(t *testing.T) {
	assert.True(t, Direction(1e-10, -1e-10, 0).NearZero())
	assert.False(t, Direction(0.1, 0, 0).NearZero())
}

func TestRefractPreservesUnitLengthAtNormalIncidence(t *testing.T) {
	v := Direction(0, -1, 0)
	n := Direction(0, 1, 0)
	r := v.Refract(n, 1.0/1.5)
	assert.InDelta(t, 1.0, r.Length(), 1e-9)
	// straight-through at normal incidence
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, -1, r.Y, 1e-9)
}

func TestLerpEndpoints(t *testing.T) {
	a := Color(0, 0, 0)
	b := Color(1, 1, 1)
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 0.5, mid.X, 1e-12)
}

func TestClampBounds(t *testing.T) {
	c := Color(-1, 0.5, 2).Clamp(0, 1)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.5, c.Y)
	assert.Equal(t, 1.0, c.Z)
}

func TestLengthSquaredMatchesLength(t *testing.T) {
	v := Direction(2, 3, 6)
	assert.InDelta(t, math.Sqrt(v.LengthSquared()), v.Length(), 1e-12)
}
