package vmath

import "math"

// Interval is a scalar range [Min, Max] used for ray-parameter
// clipping and AABB axis extents.
type Interval struct {
	Min, Max float64
}

// EmptyInterval is an interval that contains nothing.
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval is an interval that contains everything.
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Size returns Max - Min.
func (iv Interval) Size() float64 { return iv.Max - iv.Min }

// Contains reports whether x lies in the closed interval [Min, Max].
func (iv Interval) Contains(x float64) bool { return iv.Min <= x && x <= iv.Max }

// Surrounds reports whether x lies in the open interval (Min, Max), the
// test used throughout the renderer for a valid ray-hit parameter.
func (iv Interval) Surrounds(x float64) bool { return iv.Min < x && x < iv.Max }

// Clamp clamps x into [Min, Max].
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Expand returns an interval padded by delta/2 on each side, so its
// size grows by delta in total.
func (iv Interval) Expand(delta float64) Interval {
	pad := delta / 2
	return Interval{Min: iv.Min - pad, Max: iv.Max + pad}
}

// Union returns the smallest interval containing both operands.
func (iv Interval) Union(o Interval) Interval {
	return Interval{Min: math.Min(iv.Min, o.Min), Max: math.Max(iv.Max, o.Max)}
}
