// Package vmath provides the homogeneous vector and matrix primitives
// shared by every other package in the renderer.
package vmath

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec4 is a homogeneous 4-component vector. W is 1 for points and 0 for
// directions; arithmetic treats all four lanes uniformly, so the tag is
// preserved automatically by Add/Sub (point - point = direction) as long
// as callers build vectors with Point/Direction rather than poking W by
// hand.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point creates a position vector (w=1).
func Point(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Direction creates a direction vector (w=0).
func Direction(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

// Color is an alias used where a Vec4 holds linear-light RGB rather than a
// geometric quantity. W is unused for colors and left at 0.
func Color(r, g, b float64) Vec4 {
	return Vec4{X: r, Y: g, Z: b}
}

func (v Vec4) IsPoint() bool     { return v.W != 0 }
func (v Vec4) IsDirection() bool { return v.W == 0 }

func (v Vec4) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g, w=%.0f}", v.X, v.Y, v.Z, v.W)
}

// Add returns the component-wise sum, including W.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference, including W (point-point
// yields w=0, a direction, as expected).
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale multiplies the xyz lanes by a scalar; W is left untouched so a
// scaled point is still a point.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W}
}

// MulVec returns the component-wise (Hadamard) product of the xyz lanes,
// used for color attenuation.
func (v Vec4) MulVec(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, v.W}
}

func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec4) Cross(o Vec4) Vec4 {
	return Direction(
		v.Y*o.Z-v.Z*o.Y,
		v.Z*o.X-v.X*o.Z,
		v.X*o.Y-v.Y*o.X,
	)
}

func (v Vec4) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec4) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns a direction vector normalized to unit length; the zero
// vector maps to itself rather than dividing by zero.
func (v Vec4) Unit() Vec4 {
	l := v.Length()
	if l == 0 {
		return Direction(0, 0, 0)
	}
	return Direction(v.X/l, v.Y/l, v.Z/l)
}

// NearZero reports whether all three spatial components are within a
// small epsilon of zero (degenerate scatter direction, spec.md §7).
func (v Vec4) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Reflect reflects v (incoming direction) about normal n.
func (v Vec4) Reflect(n Vec4) Vec4 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract refracts a unit direction v across a normal n with the given
// ratio of indices of refraction (eta_in/eta_out). Assumes v is unit.
func (v Vec4) Refract(n Vec4, etaRatio float64) Vec4 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	outPerp := v.Add(n.Scale(cosTheta)).Scale(etaRatio)
	outParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel)
}

// Lerp linearly interpolates between two vectors.
func Lerp(a, b Vec4, t float64) Vec4 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Luminance returns the Rec. 709 perceptual luminance of a color.
func (v Vec4) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Clamp clamps the xyz lanes to [lo, hi].
func (v Vec4) Clamp(lo, hi float64) Vec4 {
	return Color(
		math.Max(lo, math.Min(hi, v.X)),
		math.Max(lo, math.Min(hi, v.Y)),
		math.Max(lo, math.Min(hi, v.Z)),
	)
}

// RandomUnitVector returns a uniformly distributed unit direction.
func RandomUnitVector(rng *rand.Rand) Vec4 {
	for {
		p := Direction(
			2*rng.Float64()-1,
			2*rng.Float64()-1,
			2*rng.Float64()-1,
		)
		lsq := p.LengthSquared()
		if lsq > 1e-160 && lsq <= 1 {
			return p.Scale(1 / math.Sqrt(lsq))
		}
	}
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// ball, used for metal fuzz perturbation.
func RandomInUnitSphere(rng *rand.Rand) Vec4 {
	for {
		p := Direction(
			2*rng.Float64()-1,
			2*rng.Float64()-1,
			2*rng.Float64()-1,
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the xy-plane (used for camera defocus sampling).
func RandomInUnitDisk(rng *rand.Rand) Vec4 {
	for {
		p := Direction(2*rng.Float64()-1, 2*rng.Float64()-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a direction sampled from the cosine-weighted
// hemisphere around local +z, for use with an ONB transform.
func RandomCosineDirection(rng *rand.Rand) Vec4 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return Direction(x, y, z)
}
