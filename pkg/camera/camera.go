// Package camera turns pixel coordinates into sample rays: a
// 35mm-equivalent-FOV pinhole/thin-lens camera with optional defocus
// blur and per-pixel stratified jitter.
package camera

import (
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Camera places a thin-lens projection in world space and produces
// jittered sample rays for a given pixel. Its derived fields (basis,
// viewport, first pixel, aperture radius) are recomputed by init
// whenever a setter changes position, orientation, or lens parameters,
// mirroring the original's camera.rs.
type Camera struct {
	ImageWidth    int
	AspectRatio   float64
	FocalLength   float64 // mm, 35mm-equivalent
	FNumber       float64 // 0 disables depth of field
	FocusDistance float64 // 0 means auto-focus on LookAt

	Position vmath.Vec4
	LookAt   vmath.Vec4
	VUp      vmath.Vec4

	Background func(ray vmath.Ray) vmath.Vec4

	imageHeight    int
	pixelDeltaU    vmath.Vec4
	pixelDeltaV    vmath.Vec4
	firstPixel     vmath.Vec4
	u, v, w        vmath.Vec4
	apertureRadius float64
	hasAperture    bool
}

// New builds a camera at the origin looking down -Z with default
// orientation, then computes its derived viewport geometry.
func New(imageWidth int, aspectRatio, focalLength float64) *Camera {
	c := &Camera{
		ImageWidth:  imageWidth,
		AspectRatio: aspectRatio,
		FocalLength: focalLength,
		Position:    vmath.Point(0, 0, 0),
		LookAt:      vmath.Point(0, 0, -1),
		VUp:         vmath.Direction(0, 1, 0),
		Background: func(vmath.Ray) vmath.Vec4 {
			return vmath.Color(0, 0, 0)
		},
	}
	c.init()
	return c
}

// ImageHeight reports the derived image height (at least 1).
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// SetFocalLength updates the lens focal length and recomputes geometry.
func (c *Camera) SetFocalLength(f float64) {
	c.FocalLength = f
	c.init()
}

// SetFNumber sets the lens aperture; 0 disables depth of field.
func (c *Camera) SetFNumber(f float64) {
	c.FNumber = f
	c.init()
}

// SetFocusDistance pins the focus plane; 0 auto-focuses on LookAt.
func (c *Camera) SetFocusDistance(d float64) {
	c.FocusDistance = d
	c.init()
}

// MoveAndLookAt repositions the camera and retargets it in one step.
func (c *Camera) MoveAndLookAt(pos, target vmath.Vec4) {
	c.Position = pos
	c.LookAt = target
	c.init()
}

func (c *Camera) init() {
	c.imageHeight = int(float64(c.ImageWidth) / c.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	direction := c.Position.Sub(c.LookAt)
	focusDist := c.FocusDistance
	if focusDist == 0 {
		focusDist = direction.Length()
	}

	// Relative viewport size to get a 35mm (36x24mm frame) equivalent FOV.
	h := 24.0 / c.FocalLength

	realAspectRatio := float64(c.ImageWidth) / float64(c.imageHeight)
	viewportHeight := focusDist * h
	viewportWidth := viewportHeight * realAspectRatio

	c.w = direction.Unit()
	c.u = c.VUp.Cross(c.w)
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Scale(viewportWidth)
	viewportV := c.v.Negate().Scale(viewportHeight)

	c.pixelDeltaU = viewportU.Scale(1.0 / float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Scale(1.0 / float64(c.imageHeight))

	// Image plane coincides with the focus plane: not how a real
	// camera works, but it keeps the defocus-disk math simple.
	viewportUpperLeft := c.Position.
		Sub(c.w.Scale(focusDist)).
		Sub(viewportU.Scale(0.5)).
		Sub(viewportV.Scale(0.5))

	c.firstPixel = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Scale(0.5))

	if c.FNumber > 0 {
		c.apertureRadius = (c.FocalLength / 1000.0) / c.FNumber
		c.hasAperture = true
	} else {
		c.apertureRadius = 0
		c.hasAperture = false
	}
}

// Ray returns a jittered sample ray through (pixelX, pixelY). subX/subY
// select a stratification sub-cell in [0, sqrtSPP); pass 0,0,1 to match
// the original's single-jitter-per-sample behavior.
func (c *Camera) Ray(pixelX, pixelY, subX, subY, sqrtSPP int, rng *rand.Rand) vmath.Ray {
	pixelCenter := c.firstPixel.
		Add(c.pixelDeltaU.Scale(float64(pixelX))).
		Add(c.pixelDeltaV.Scale(float64(pixelY)))

	pixelSample := pixelCenter.Add(c.sampleOffset(subX, subY, sqrtSPP, rng))

	origin := c.Position
	if c.hasAperture {
		origin = c.defocusDiskSample(rng)
	}

	direction := pixelSample.Sub(origin)
	return vmath.NewRay(origin, direction)
}

// sampleOffset jitters within the stratum (subX, subY) of an
// sqrtSPP x sqrtSPP grid covering the pixel footprint. sqrtSPP == 1
// reduces to the original's pixel_sample_square.
func (c *Camera) sampleOffset(subX, subY, sqrtSPP int, rng *rand.Rand) vmath.Vec4 {
	cell := 1.0 / float64(sqrtSPP)
	x := (float64(subX)+rng.Float64())*cell - 0.5
	y := (float64(subY)+rng.Float64())*cell - 0.5
	return c.pixelDeltaU.Scale(x).Add(c.pixelDeltaV.Scale(y))
}

func (c *Camera) defocusDiskSample(rng *rand.Rand) vmath.Vec4 {
	d := vmath.RandomInUnitDisk(rng)
	offset := c.u.Scale(d.X).Add(c.v.Scale(d.Y)).Scale(c.apertureRadius)
	return c.Position.Add(offset)
}
