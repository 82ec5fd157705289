package render

import (
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/camera"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/integrator"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestIsqrt(t *testing.T) {
	assert.Equal(t, 1, isqrt(1))
	assert.Equal(t, 5, isqrt(25))
	assert.Equal(t, 4, isqrt(24))
	assert.Equal(t, 1, isqrt(0))
}

func TestRenderProducesCorrectDimensions(t *testing.T) {
	cam := camera.New(8, 1, 50)
	cam.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))

	world := hittable.NewList()
	world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewLambertian(vmath.Color(0.5, 0.5, 0.5))))
	lights := hittable.NewLightList()

	cfg := integrator.Config{MaxDepth: 4, LightBias: 0.25, Background: func(vmath.Ray) vmath.Vec4 {
		return vmath.Color(0.1, 0.1, 0.1)
	}}
	pt := integrator.NewPathTracer(world, lights, cfg)

	img := Render(cam, pt, 2, 4, 1)
	assert.Equal(t, 8, img.Width)
	assert.Equal(t, 8, img.Height)
	assert.Len(t, img.Pixels, 64)
}

func TestRenderIsDeterministicForFixedSeed(t *testing.T) {
	newScene := func() (*camera.Camera, *integrator.PathTracer) {
		cam := camera.New(6, 1, 50)
		cam.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))

		world := hittable.NewList()
		world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewLambertian(vmath.Color(0.5, 0.5, 0.5))))
		lights := hittable.NewLightList()

		cfg := integrator.Config{MaxDepth: 4, LightBias: 0.25, Background: func(vmath.Ray) vmath.Vec4 {
			return vmath.Color(0.1, 0.1, 0.1)
		}}
		return cam, integrator.NewPathTracer(world, lights, cfg)
	}

	cam1, pt1 := newScene()
	img1 := Render(cam1, pt1, 1, 1, 42)

	cam2, pt2 := newScene()
	img2 := Render(cam2, pt2, 1, 1, 42)

	assert.Equal(t, img1.Pixels, img2.Pixels)
}

func TestRenderDiffersForDifferentSeeds(t *testing.T) {
	cam := camera.New(6, 1, 50)
	cam.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))

	world := hittable.NewList()
	world.Add(hittable.NewSphere(vmath.Point(0, 0, -5), 1, material.NewLambertian(vmath.Color(0.5, 0.5, 0.5))))
	lights := hittable.NewLightList()

	cfg := integrator.Config{MaxDepth: 4, LightBias: 0.25, Background: func(vmath.Ray) vmath.Vec4 {
		return vmath.Color(0.1, 0.1, 0.1)
	}}
	pt := integrator.NewPathTracer(world, lights, cfg)

	img1 := Render(cam, pt, 1, 1, 1)
	img2 := Render(cam, pt, 1, 1, 2)
	assert.NotEqual(t, img1.Pixels, img2.Pixels)
}

func TestRenderAveragesAcrossWorkersAndSamples(t *testing.T) {
	cam := camera.New(4, 1, 50)
	cam.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))

	world := hittable.NewList()
	lights := hittable.NewLightList()

	bg := vmath.Color(0.3, 0.4, 0.5)
	cfg := integrator.Config{MaxDepth: 4, LightBias: 0.25, Background: func(vmath.Ray) vmath.Vec4 {
		return bg
	}}
	pt := integrator.NewPathTracer(world, lights, cfg)

	img := Render(cam, pt, 4, 16, 1)
	// Every ray misses into the constant background, so every pixel
	// should average out to exactly the background color regardless
	// of how samples are split across workers.
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			assert.InDelta(t, bg.X, img.At(x, y).X, 1e-9)
			assert.InDelta(t, bg.Y, img.At(x, y).Y, 1e-9)
			assert.InDelta(t, bg.Z, img.At(x, y).Z, 1e-9)
		}
	}
}
