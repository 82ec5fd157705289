package scene

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/camera"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/render"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// NewSphereGrid builds a gridSize x gridSize grid of metal spheres
// over a lambertian ground quad, lit by a single warm sphere light.
// Grounded on the teacher's scene/spheregrid.go, with the teacher's
// hand-rolled OKLCH approximation replaced by go-colorful's Hcl (a
// real perceptual color space the corpus ships a library for, rather
// than reimplementing OKLAB math by hand).
func NewSphereGrid(config render.Config, gridSize int) *SceneGraph {
	b := NewBuilder(config)

	b.AddLight(hittable.NewSphere(vmath.Point(20, 25, 20), 8, material.NewEmissive(vmath.Color(12.0, 11.5, 10.0))))

	const groundSize = 1000.0
	ground := hittable.NewQuad(
		vmath.Point(-groundSize/2, 0, -groundSize/2),
		vmath.Direction(groundSize, 0, 0),
		vmath.Direction(0, 0, groundSize),
		material.NewLambertian(vmath.Color(0.5, 0.5, 0.5)),
	)
	b.Add(ground)

	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := clampFloat(spacing*0.35, 0.02, 0.35)

	const baseLightness = 0.65
	const minChroma, maxChroma = 0.15, 0.60

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			y := sphereRadius

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)

			c := colorful.Hcl(hue, chroma, baseLightness).Clamped()
			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0

			sphere := hittable.NewSphere(vmath.Point(x, y, z), sphereRadius, material.NewMetal(vmath.Color(c.R, c.G, c.B), roughness))
			b.Add(sphere)
		}
	}

	cam := camera.New(config.OutputWidth, 16.0/9.0, 40)
	cam.SetFNumber(14.0)
	cam.MoveAndLookAt(vmath.Point(4.5, 6, 18), vmath.Point(4.5, 0.8, 4.5))

	rng := rand.New(rand.NewSource(1))
	return b.Build(cam, hittable.AxesAll, rng)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
