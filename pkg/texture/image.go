package texture

import (
	"image"
	"io"
	"math"
	"os"

	// Registers JPEG/PNG decoders with image.Decode; golang.org/x/image adds
	// the wider format coverage (WebP, BMP, TIFF) the core "image" package
	// doesn't ship, so asset scenes aren't limited to PNG/JPEG.
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// WrapMode controls how out-of-[0,1] UV coordinates are handled.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
)

// Image is a file-backed color texture sampled by nearest-neighbor
// lookup, ported from the teacher's ImageTexture with wrap-mode support
// added (the teacher only repeats).
type Image struct {
	Width, Height int
	Pixels        []vmath.Vec4 // row-major, Pixels[y*Width+x], linear-light RGB
	Wrap          WrapMode
}

// LoadImage decodes an image file from path into a linear-light Image
// texture. sRGB-to-linear conversion is applied assuming the source file
// is sRGB-encoded, which holds for every common asset format.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening texture file %q", path)
	}
	defer f.Close()
	return DecodeImage(f)
}

// DecodeImage decodes an already-open image stream. Format is sniffed by
// image.Decode's registered decoders (PNG, JPEG, plus BMP/TIFF/WebP via
// golang.org/x/image, imported here for their decoder registration side
// effect and directly for formats image.Decode can't sniff unaided).
func DecodeImage(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding texture image")
	}
	_ = format

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]vmath.Vec4, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = vmath.Color(
				srgbToLinear(float64(r16)/65535.0),
				srgbToLinear(float64(g16)/65535.0),
				srgbToLinear(float64(b16)/65535.0),
			)
		}
	}

	return &Image{Width: w, Height: h, Pixels: pixels, Wrap: WrapRepeat}, nil
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Sample implements ColorSampler. UV wraps per Wrap before mapping to
// pixel coordinates; v=0 is treated as the bottom of the image (texture
// convention), so it is flipped against the top-left pixel origin.
func (t *Image) Sample(u, v float64, p vmath.Vec4) vmath.Vec4 {
	u = t.wrap(u)
	v = t.wrap(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

func (t *Image) wrap(x float64) float64 {
	switch t.Wrap {
	case WrapClamp:
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	default: // WrapRepeat
		frac := x - float64(int(x))
		if frac < 0 {
			frac += 1
		}
		return frac
	}
}

// ensure the bmp/tiff/webp decoders are linked in (and usable directly by
// callers that already have a concrete format in hand, bypassing sniffing).
var (
	_ = bmp.Decode
	_ = tiff.Decode
	_ = webp.Decode
)
