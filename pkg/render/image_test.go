package render

import (
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestNewImageIsBlack(t *testing.T) {
	img := NewImage(4, 3)
	assert.Equal(t, vmath.Color(0, 0, 0), img.At(1, 1))
	assert.Len(t, img.Pixels, 12)
}

func TestSetAndAt(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(1, 0, vmath.Color(0.5, 0.25, 0.1))
	assert.Equal(t, vmath.Color(0.5, 0.25, 0.1), img.At(1, 0))
	assert.Equal(t, vmath.Color(0, 0, 0), img.At(0, 0))
}

func TestAccumulateAdds(t *testing.T) {
	img := NewImage(1, 1)
	img.Accumulate(0, 0, vmath.Color(1, 1, 1))
	img.Accumulate(0, 0, vmath.Color(1, 1, 1))
	assert.Equal(t, vmath.Color(2, 2, 2), img.At(0, 0))
}

func TestAddSumsElementwise(t *testing.T) {
	a := NewImage(2, 1)
	b := NewImage(2, 1)
	a.Set(0, 0, vmath.Color(1, 0, 0))
	b.Set(0, 0, vmath.Color(0, 1, 0))
	a.Set(1, 0, vmath.Color(0.5, 0.5, 0.5))
	b.Set(1, 0, vmath.Color(0.5, 0.5, 0.5))

	sum := a.Add(b)
	assert.Equal(t, vmath.Color(1, 1, 0), sum.At(0, 0))
	assert.Equal(t, vmath.Color(1, 1, 1), sum.At(1, 0))
}

func TestScaleMultipliesEveryPixel(t *testing.T) {
	img := NewImage(1, 1)
	img.Set(0, 0, vmath.Color(4, 4, 4))
	scaled := img.Scale(0.25)
	assert.Equal(t, vmath.Color(1, 1, 1), scaled.At(0, 0))
}

func TestToRGBAClampsAndGammaCorrects(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, vmath.Color(2, -1, 0.25))
	rgba := img.ToRGBA()

	r, g, b, a := rgba.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Greater(t, b, uint32(0))
	assert.Equal(t, uint32(0xffff), a)
}
