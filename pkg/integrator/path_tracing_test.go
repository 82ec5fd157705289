package integrator

import (
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func backgroundGradient(ray vmath.Ray) vmath.Vec4 {
	unit := ray.Direction.Unit()
	t := 0.5 * (unit.Y + 1.0)
	return vmath.Lerp(vmath.Color(1, 1, 1), vmath.Color(0.5, 0.7, 1.0), t)
}

func TestRayColorMissHitsBackground(t *testing.T) {
	world := hittable.NewList()
	lights := hittable.NewLightList()
	cfg := Config{MaxDepth: 20, LightBias: 0.25, Background: backgroundGradient}
	pt := NewPathTracer(world, lights, cfg)

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 1, 0))
	rng := rand.New(rand.NewSource(1))

	color := pt.RayColor(ray, rng)
	assert.Equal(t, backgroundGradient(ray), color)
}

func TestRayColorDepthZeroReturnsBlack(t *testing.T) {
	world := hittable.NewList()
	lights := hittable.NewLightList()
	cfg := Config{MaxDepth: 0, LightBias: 0.25, Background: backgroundGradient}
	pt := NewPathTracer(world, lights, cfg)

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, vmath.Color(0, 0, 0), pt.RayColor(ray, rng))
}

func TestRayColorHitsEmissiveSphereDirectly(t *testing.T) {
	world := hittable.NewList()
	world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewEmissive(vmath.Color(4, 4, 4))))
	lights := hittable.NewLightList()
	lights.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewEmissive(vmath.Color(4, 4, 4))))

	cfg := Config{MaxDepth: 20, LightBias: 0.25, Background: backgroundGradient}
	pt := NewPathTracer(world, lights, cfg)

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	color := pt.RayColor(ray, rng)
	assert.Equal(t, vmath.Color(4, 4, 4), color)
}

func TestRayColorLambertianSphereUnderLightIsPositive(t *testing.T) {
	world := hittable.NewList()
	world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewLambertian(vmath.Color(0.7, 0.7, 0.7))))
	world.Add(hittable.NewSphere(vmath.Point(0, 5, -5), 1, material.NewEmissive(vmath.Color(10, 10, 10))))

	lights := hittable.NewLightList()
	lights.Add(hittable.NewSphere(vmath.Point(0, 5, -5), 1, material.NewEmissive(vmath.Color(10, 10, 10))))

	cfg := Config{MaxDepth: 6, LightBias: 0.5, Background: backgroundGradient}
	pt := NewPathTracer(world, lights, cfg)

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))

	var sum vmath.Vec4
	const samples = 64
	for i := 0; i < samples; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		sum = sum.Add(pt.RayColor(ray, rng))
	}
	avg := sum.Scale(1.0 / samples)

	assert.Greater(t, avg.X, 0.0)
}

func TestRayColorMetalSphereReflectsSpecularly(t *testing.T) {
	world := hittable.NewList()
	world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewMetal(vmath.Color(0.8, 0.8, 0.8), 0)))
	lights := hittable.NewLightList()

	cfg := Config{MaxDepth: 20, LightBias: 0.25, Background: backgroundGradient}
	pt := NewPathTracer(world, lights, cfg)

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	color := pt.RayColor(ray, rng)
	// A mirror sphere facing the camera dead-on reflects the ray straight
	// back along +z into the background, but the metal's 0.8 albedo
	// attenuates it, so the result differs from the raw background color.
	assert.NotEqual(t, backgroundGradient(ray), color)
}

func TestRayColorVerboseLogsThroughLogger(t *testing.T) {
	world := hittable.NewList()
	world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewEmissive(vmath.Color(1, 1, 1))))
	lights := hittable.NewLightList()

	cfg := Config{MaxDepth: 4, LightBias: 0.25, Background: backgroundGradient}
	pt := NewPathTracer(world, lights, cfg)
	logged := &fakeLogger{}
	pt.Logger = logged
	pt.Verbose = true

	ray := vmath.NewRay(vmath.Point(0, 0, 0), vmath.Direction(0, 0, -1))
	rng := rand.New(rand.NewSource(1))
	pt.RayColor(ray, rng)

	assert.NotEmpty(t, logged.messages)
}

type fakeLogger struct {
	messages []string
}

func (f *fakeLogger) Printf(format string, args ...interface{}) {
	f.messages = append(f.messages, format)
}
