package integrator

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/pdf"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// tMin floors every intersection test to avoid self-intersection acne
// at a surface a ray was just scattered from.
const tMin = 0.001

// PathTracer is a unidirectional Monte Carlo path tracer: single-sample
// MIS between a material's own sampled PDF and next-event-estimation
// toward the scene's lights, combined via one Mixture PDF rather than
// the teacher's split direct/indirect power-heuristic sum. Ground
// truth: spec.md's §4.7 pseudocode, which follows the original's
// ScatterResult enum and pdf.Mixture/pdf.Hittable all the way through
// (the original source built that PDF machinery but, in the snapshot
// this renderer is grounded on, never wired it into camera.rs's
// ray_color -- this integrator is the wiring). Depth is a hard
// truncation bound, not Russian roulette: the teacher's
// ApplyRussianRoulette has no equivalent here, since spec.md bounds
// recursion with a fixed MaxDepth only.
type PathTracer struct {
	World   hittable.Hittable
	Lights  hittable.Sampleable
	Config  Config
	Logger  Logger
	Verbose bool
}

// NewPathTracer builds a path tracer over world, importance-sampling
// lights through the given Sampleable root.
func NewPathTracer(world hittable.Hittable, lights hittable.Sampleable, config Config) *PathTracer {
	return &PathTracer{World: world, Lights: lights, Config: config}
}

// RayColor estimates the radiance arriving back along ray.
func (pt *PathTracer) RayColor(ray vmath.Ray, rng *rand.Rand) vmath.Vec4 {
	return pt.radiance(ray, pt.Config.MaxDepth, rng)
}

func (pt *PathTracer) radiance(ray vmath.Ray, depth int, rng *rand.Rand) vmath.Vec4 {
	if depth <= 0 {
		return vmath.Color(0, 0, 0)
	}

	hit, mat, ok := pt.World.Hit(ray, tMin, math.Inf(1), rng)
	if !ok {
		return pt.Config.Background(ray)
	}

	emitted := mat.Emit(ray, hit)
	scatter := mat.Scatter(ray, hit, rng)

	switch scatter.Kind {
	case material.Absorbed, material.Emissive:
		pt.logf("absorbed/emissive: emitted=%v\n", emitted)
		return emitted

	case material.ScatteredWithRay:
		incoming := pt.radiance(scatter.Scattered, depth-1, rng)
		contribution := scatter.Attenuation.MulVec(incoming)
		pt.logf("specular: contribution=%v attenuation=%v\n", contribution, scatter.Attenuation)
		return emitted.Add(contribution)

	case material.ScatteredWithPDF:
		return emitted.Add(pt.sampleWithPDF(ray, hit, mat, scatter, depth, rng))

	default:
		return emitted
	}
}

func (pt *PathTracer) sampleWithPDF(ray vmath.Ray, hit material.HitRecord, mat material.Material, scatter material.ScatterResult, depth int, rng *rand.Rand) vmath.Vec4 {
	mix := pdf.NewMixture(scatter.PDF, pdf.NewHittable(pt.Lights, hit.Point), pt.Config.LightBias)

	dir := mix.Generate(rng)
	scattered := vmath.NewRay(hit.Point, dir)
	p := mix.Value(dir, rng)
	if p <= 0 {
		return vmath.Color(0, 0, 0)
	}

	scatteringPDF := mat.ScatteringPDF(ray, scattered, hit)
	if scatteringPDF <= 0 {
		return vmath.Color(0, 0, 0)
	}

	incoming := pt.radiance(scattered, depth-1, rng)
	contribution := scatter.Attenuation.MulVec(incoming).Scale(scatteringPDF / p)

	pt.logf("diffuse: contribution=%v attenuation=%v scatteringPDF=%f mixPDF=%f\n", contribution, scatter.Attenuation, scatteringPDF, p)
	return contribution
}

func (pt *PathTracer) logf(format string, args ...interface{}) {
	if pt.Verbose && pt.Logger != nil {
		pt.Logger.Printf(format, args...)
	}
}
