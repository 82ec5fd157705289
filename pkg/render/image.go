package render

import (
	"image"
	"image/color"
	"math"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// Image is a linear-color pixel buffer: a width*height grid of
// unweighted radiance accumulators. Workers each own a private Image
// and the coordinator sums them, rather than writing into one shared
// buffer under a lock (grounded on the original's per-thread Buffer).
type Image struct {
	Width, Height int
	Pixels        []vmath.Vec4
}

// NewImage allocates a black width x height image.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]vmath.Vec4, width*height)}
}

func (img *Image) index(x, y int) int {
	return y*img.Width + x
}

// At returns the pixel color at (x, y).
func (img *Image) At(x, y int) vmath.Vec4 {
	return img.Pixels[img.index(x, y)]
}

// Set overwrites the pixel color at (x, y).
func (img *Image) Set(x, y int, c vmath.Vec4) {
	img.Pixels[img.index(x, y)] = c
}

// Accumulate adds c onto the existing pixel color at (x, y).
func (img *Image) Accumulate(x, y int, c vmath.Vec4) {
	i := img.index(x, y)
	img.Pixels[i] = img.Pixels[i].Add(c)
}

// Add returns the element-wise sum of img and other; both must share
// dimensions.
func (img *Image) Add(other *Image) *Image {
	sum := NewImage(img.Width, img.Height)
	for i := range img.Pixels {
		sum.Pixels[i] = img.Pixels[i].Add(other.Pixels[i])
	}
	return sum
}

// Scale returns img with every pixel multiplied by s.
func (img *Image) Scale(s float64) *Image {
	scaled := NewImage(img.Width, img.Height)
	for i, c := range img.Pixels {
		scaled.Pixels[i] = c.Scale(s)
	}
	return scaled
}

// gamma is the display gamma applied before 8-bit quantization,
// matching the teacher's vec3ToColor(gamma=2.0).
const gamma = 2.0

// ToRGBA renders img to an 8-bit image.RGBA with gamma correction and
// [0,1] clamping.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			r := gammaCorrect(c.X)
			g := gammaCorrect(c.Y)
			b := gammaCorrect(c.Z)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * r),
				G: uint8(255 * g),
				B: uint8(255 * b),
				A: 255,
			})
		}
	}
	return out
}

func gammaCorrect(v float64) float64 {
	if v < 0 {
		v = 0
	}
	v = math.Pow(v, 1.0/gamma)
	if v > 1 {
		v = 1
	}
	return v
}
