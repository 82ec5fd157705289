// Package texture implements the color/float samplers attached to
// materials: constants, checkerboards, image maps, lerps, debug views,
// and procedural noise.
package texture

import (
	"math"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// ColorSampler evaluates a color at a given surface UV and world point.
type ColorSampler interface {
	Sample(u, v float64, p vmath.Vec4) vmath.Vec4
}

// FloatSampler evaluates a scalar at a given surface UV and world point;
// used for roughness/bump-style channels.
type FloatSampler interface {
	SampleFloat(u, v float64, p vmath.Vec4) float64
}

// Constant is a uniform color texture.
type Constant struct {
	Color vmath.Vec4
}

func NewConstant(c vmath.Vec4) *Constant { return &Constant{Color: c} }

func (c *Constant) Sample(u, v float64, p vmath.Vec4) vmath.Vec4 { return c.Color }

// ConstantFloat is a uniform scalar texture.
type ConstantFloat struct {
	Value float64
}

func NewConstantFloat(v float64) *ConstantFloat { return &ConstantFloat{Value: v} }

func (c *ConstantFloat) SampleFloat(u, v float64, p vmath.Vec4) float64 { return c.Value }

// Checkerboard3D alternates between two sub-textures based on the parity
// of floor(x/scale)+floor(y/scale)+floor(z/scale) in world space, so the
// pattern is attached to the surface's 3D position rather than its UVs.
type Checkerboard3D struct {
	Even, Odd ColorSampler
	Scale     float64
}

func NewCheckerboard3D(even, odd ColorSampler, scale float64) *Checkerboard3D {
	return &Checkerboard3D{Even: even, Odd: odd, Scale: scale}
}

func (c *Checkerboard3D) Sample(u, v float64, p vmath.Vec4) vmath.Vec4 {
	inv := 1.0 / c.Scale
	sum := math.Floor(p.X*inv) + math.Floor(p.Y*inv) + math.Floor(p.Z*inv)
	if int64(sum)%2 == 0 {
		return c.Even.Sample(u, v, p)
	}
	return c.Odd.Sample(u, v, p)
}

// CheckerboardUV alternates colors on a UV grid rather than world space,
// used for surfaces (like quads or image planes) without a meaningful 3D
// checker frequency.
type CheckerboardUV struct {
	Even, Odd ColorSampler
	Scale     float64
}

func NewCheckerboardUV(even, odd ColorSampler, scale float64) *CheckerboardUV {
	return &CheckerboardUV{Even: even, Odd: odd, Scale: scale}
}

func (c *CheckerboardUV) Sample(u, v float64, p vmath.Vec4) vmath.Vec4 {
	cu := math.Floor(u / c.Scale)
	cv := math.Floor(v / c.Scale)
	if int64(cu+cv)%2 == 0 {
		return c.Even.Sample(u, v, p)
	}
	return c.Odd.Sample(u, v, p)
}

// Lerp blends two sub-textures by a fixed factor, ported from the
// original loader's "lerp" texture declaration.
type Lerp struct {
	A, B ColorSampler
	T    float64
}

func NewLerp(a, b ColorSampler, t float64) *Lerp { return &Lerp{A: a, B: b, T: t} }

func (l *Lerp) Sample(u, v float64, p vmath.Vec4) vmath.Vec4 {
	return vmath.Lerp(l.A.Sample(u, v, p), l.B.Sample(u, v, p), l.T)
}

// UVDebug renders UV coordinates directly as red/green channels, useful
// for sanity-checking a mesh's or quad's parameterization.
type UVDebug struct{}

func NewUVDebug() *UVDebug { return &UVDebug{} }

func (UVDebug) Sample(u, v float64, p vmath.Vec4) vmath.Vec4 {
	return vmath.Color(u, v, 0)
}
