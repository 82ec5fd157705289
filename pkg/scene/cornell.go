package scene

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/camera"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/render"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// NewCornell builds the classic Cornell box: five quad walls, a
// ceiling-recessed area light, a metal sphere, and a glass sphere.
// Grounded on the teacher's scene/cornell.go, dimensions and camera
// placement unchanged (the standard 555-unit box).
func NewCornell(config render.Config) *SceneGraph {
	const boxSize = 555.0

	white := material.NewLambertian(vmath.Color(0.73, 0.73, 0.73))
	red := material.NewLambertian(vmath.Color(0.65, 0.05, 0.05))
	green := material.NewLambertian(vmath.Color(0.12, 0.45, 0.15))

	b := NewBuilder(config)

	floor := hittable.NewQuad(
		vmath.Point(0, 0, 0),
		vmath.Direction(boxSize, 0, 0),
		vmath.Direction(0, 0, boxSize),
		white,
	)
	ceiling := hittable.NewQuad(
		vmath.Point(0, boxSize, 0),
		vmath.Direction(boxSize, 0, 0),
		vmath.Direction(0, 0, boxSize),
		white,
	)
	backWall := hittable.NewQuad(
		vmath.Point(0, 0, boxSize),
		vmath.Direction(boxSize, 0, 0),
		vmath.Direction(0, boxSize, 0),
		white,
	)
	leftWall := hittable.NewQuad(
		vmath.Point(0, 0, 0),
		vmath.Direction(0, 0, boxSize),
		vmath.Direction(0, boxSize, 0),
		red,
	)
	rightWall := hittable.NewQuad(
		vmath.Point(boxSize, 0, 0),
		vmath.Direction(0, boxSize, 0),
		vmath.Direction(0, 0, boxSize),
		green,
	)
	b.Add(floor).Add(ceiling).Add(backWall).Add(leftWall).Add(rightWall)

	const lightSize = 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	lightMat := material.NewEmissive(vmath.Color(15, 15, 15))
	ceilingLight := hittable.NewQuad(
		vmath.Point(lightOffset, boxSize-1, lightOffset),
		vmath.Direction(lightSize, 0, 0),
		vmath.Direction(0, 0, lightSize),
		lightMat,
	)
	b.AddLight(ceilingLight)

	leftSphere := hittable.NewSphere(vmath.Point(185, 82.5, 169), 82.5, material.NewMetal(vmath.Color(0.8, 0.8, 0.9), 0))
	rightSphere := hittable.NewSphere(vmath.Point(370, 90, 351), 90, material.NewDielectric(1.5))
	b.Add(leftSphere).Add(rightSphere)

	cam := camera.New(config.OutputWidth, 1.0, 35)
	cam.MoveAndLookAt(vmath.Point(278, 278, -800), vmath.Point(278, 278, 0))

	rng := rand.New(rand.NewSource(1))
	return b.Build(cam, hittable.AxesAll, rng)
}
