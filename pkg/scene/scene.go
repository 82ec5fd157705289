// Package scene assembles a SceneGraph -- camera, world, lights -- and
// ships a handful of built-in demo scenes, grounded on the teacher's
// pkg/scene package.
package scene

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/camera"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/render"
)

// SceneGraph is spec.md §3's scene graph: two root hittables plus a
// camera, immutable once built and safe for concurrent read by every
// render worker.
type SceneGraph struct {
	World  hittable.Hittable
	Lights *hittable.LightList
	Camera *camera.Camera
	Config render.Config
}

// Builder accumulates objects and lights before freezing them into a
// SceneGraph, mirroring the teacher's Scene.Shapes/Lights + BVH-on-
// Preprocess pattern but wrapping World in a BVH unconditionally.
type Builder struct {
	objects []hittable.Hittable
	lights  *hittable.LightList
	config  render.Config
}

// NewBuilder starts an empty scene with the given render config.
func NewBuilder(config render.Config) *Builder {
	return &Builder{lights: hittable.NewLightList(), config: config}
}

// Add registers an ordinary (non-light) object in the world.
func (b *Builder) Add(obj hittable.Hittable) *Builder {
	b.objects = append(b.objects, obj)
	return b
}

// AddLight registers an emissive object in both the world (so camera
// rays can still hit it directly) and the lights root (so the
// integrator can explicitly importance-sample it).
func (b *Builder) AddLight(light hittable.Light) *Builder {
	b.objects = append(b.objects, light)
	b.lights.Add(light)
	return b
}

// Build wraps the accumulated objects in a BVH and returns the frozen
// SceneGraph. axes selects which axes the BVH may split on (pass
// hittable.AxesAll for the common case); rng seeds the BVH's
// randomized-axis construction.
func (b *Builder) Build(cam *camera.Camera, axes hittable.AxisMask, rng *rand.Rand) *SceneGraph {
	world := hittable.NewBVH(b.objects, axes, rng)
	return &SceneGraph{
		World:  world,
		Lights: b.lights,
		Camera: cam,
		Config: b.config,
	}
}
