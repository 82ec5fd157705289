package sceneio

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// parseVec parses a "x,y,z" triple, ground truth: the original
// source's utils::parse_vec.
func parseVec(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, errors.Errorf("vector %q must have three comma-separated components", s)
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, errors.Wrapf(err, "parsing vector component %q", p)
		}
		out[i] = v
	}
	return out, nil
}

// parseColor accepts either a "r,g,b" triple or a "#rrggbb" hex string,
// the latter a grammar addition over the original (which only ever
// wrote raw component triples by hand): scene authors can paste a hex
// swatch straight from a color picker and get a linear-light Vec4 via
// go-colorful's sRGB-aware hex decoder instead of converting by hand.
func parseColor(s string) (vmath.Vec4, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return vmath.Vec4{}, errors.Wrapf(err, "parsing hex color %q", s)
		}
		r, g, b := c.LinearRgb()
		return vmath.Color(r, g, b), nil
	}
	xyz, err := parseVec(s)
	if err != nil {
		return vmath.Vec4{}, err
	}
	return vmath.Color(xyz[0], xyz[1], xyz[2]), nil
}
