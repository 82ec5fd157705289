// Package integrator turns a scene and a ray into a color: the
// rendering-equation estimator that ties hittable, material, and pdf
// together.
package integrator

import (
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Logger is the narrow logging surface the integrator needs, matching
// the teacher's core.Logger shape.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Config bounds the path tracer's recursion and weighs material-PDF vs.
// light-PDF sampling. Defaults match the original: MaxDepth=20,
// LightBias=0.25.
type Config struct {
	MaxDepth   int
	LightBias  float64
	Background func(ray vmath.Ray) vmath.Vec4
}

// DefaultConfig returns the original's recursion depth and light bias.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  20,
		LightBias: 0.25,
		Background: func(ray vmath.Ray) vmath.Vec4 {
			return vmath.Color(0, 0, 0)
		},
	}
}
