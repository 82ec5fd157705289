// Package pdf implements probability density functions used both to
// importance-sample a scattered or shadow-ray direction and to evaluate
// the density of an arbitrary direction for multiple importance
// sampling.
package pdf

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// PDF samples directions and reports the probability density of a given
// direction, both with respect to solid angle around a fixed origin.
type PDF interface {
	// Value returns the probability density of sampling dir.
	Value(dir vmath.Vec4, rng *rand.Rand) float64
	// Generate draws a direction from this distribution.
	Generate(rng *rand.Rand) vmath.Vec4
}
