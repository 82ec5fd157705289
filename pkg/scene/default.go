package scene

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/camera"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/render"
	"github.com/kestrel-ray/pathtracer/pkg/texture"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// NewDefault builds a small showcase scene: a glossy sphere, a silver
// metal sphere, a gold metal sphere, a solid glass sphere, a hollow
// glass sphere with a lambertian core, a ground quad, a sun, and a
// sky. Grounded on the teacher's scene/default_scene.go, with the
// teacher's glass-over-lambertian NewLayered coating (a material this
// renderer doesn't carry) replaced by a Glossy sphere, and the
// teacher's gradient infinite light replaced by Sky+Sun per spec.md's
// hittable-based environment model.
func NewDefault(config render.Config) *SceneGraph {
	b := NewBuilder(config)

	lambertianBlue := material.NewLambertian(vmath.Color(0.1, 0.2, 0.5))
	lambertianGreen := material.NewLambertian(vmath.Color(0.48, 0.48, 0.0))
	metalSilver := material.NewMetal(vmath.Color(0.8, 0.8, 0.8), 0)
	metalGold := material.NewMetal(vmath.Color(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	glossyRed := material.NewGlossy(texture.NewConstant(vmath.Color(0.65, 0.25, 0.2)), texture.NewConstantFloat(0.2))

	sphereCenter := hittable.NewSphere(vmath.Point(0, 0.5, -1), 0.5, glossyRed)
	sphereLeft := hittable.NewSphere(vmath.Point(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := hittable.NewSphere(vmath.Point(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := hittable.NewSphere(vmath.Point(0.5, 0.25, -0.5), 0.25, glass)
	hollowGlassOuter := hittable.NewSphere(vmath.Point(-0.5, 0.25, -0.5), 0.25, glass)
	hollowGlassInner := hittable.NewSphere(vmath.Point(-0.5, 0.25, -0.5), -0.24, glass)
	hollowGlassCenter := hittable.NewSphere(vmath.Point(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	groundQuad := hittable.NewQuad(
		vmath.Point(-5000, 0, -5000),
		vmath.Direction(10000, 0, 0),
		vmath.Direction(0, 0, 10000),
		lambertianGreen,
	)

	b.Add(sphereCenter).Add(sphereLeft).Add(sphereRight).Add(groundQuad).
		Add(solidGlassSphere).Add(hollowGlassOuter).Add(hollowGlassInner).Add(hollowGlassCenter)

	b.AddLight(hittable.NewSphere(vmath.Point(30, 30.5, 15), 10, material.NewEmissive(vmath.Color(15.0, 14.0, 13.0))))

	skyMat := material.NewEmissive(vmath.Color(0.5, 0.7, 1.0))
	b.AddLight(hittable.NewSky(skyMat))

	sunMat := material.NewEmissive(vmath.Color(8, 7.5, 6.5))
	b.AddLight(hittable.NewSun(vmath.Direction(-1, -1, -1), sunMat))

	cam := camera.New(config.OutputWidth, 16.0/9.0, 60)
	cam.SetFNumber(4.0)
	cam.MoveAndLookAt(vmath.Point(0, 0.75, 2), vmath.Point(0, 0.5, -1))

	rng := rand.New(rand.NewSource(1))
	return b.Build(cam, hittable.AxesAll, rng)
}
