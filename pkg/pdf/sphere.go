package pdf

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// SphereUniformValue returns the density of sampling any fixed direction
// uniformly over a sphere's full surface, as seen from its center.
func SphereUniformValue(radius float64) float64 {
	return 1.0 / (4.0 * math.Pi * radius * radius)
}

// SphereConeValue returns the solid-angle sampling density for a
// direction toward a sphere of the given radius, as seen from a point at
// the given distance from its center. Falls back to uniform-sphere
// sampling when the origin is inside the sphere.
func SphereConeValue(distance, radius float64) float64 {
	if distance <= radius {
		return SphereUniformValue(radius)
	}
	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}

// SampleSphereCone draws a direction within the cone subtended by a
// sphere of the given radius centered at distance `distance` along local
// +z, returning the direction in the local frame (to be transformed into
// world space by the caller's ONB) along with the sampling density.
func SampleSphereCone(distance, radius float64, rng *rand.Rand) (dir vmath.Vec4, density float64) {
	if distance <= radius {
		d := vmath.RandomUnitVector(rng)
		return d, SphereUniformValue(radius)
	}

	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))

	r1 := rng.Float64()
	r2 := rng.Float64()

	cosTheta := 1.0 - r1*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * r2

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	z := cosTheta

	density = 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
	return vmath.Direction(x, y, z), density
}
