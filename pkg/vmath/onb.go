package vmath

import "math"

// BasisFromW builds an orthonormal-basis change-of-basis matrix whose
// third column is w (normalized). Its columns are returned as (u, v, w)
// via MatFromColumns so that m.MulVec(Direction(x,y,z)) maps a local
// cosine/hemisphere sample into world space.
//
// The construction is ported directly from the original Rust
// onb_from_vec, including its handedness: the helper axis a is +X
// unless w is nearly aligned with the x axis (|w.X| > 0.9, in which case
// +Y is used), and v is derived as w.Cross(a) and u as w.Cross(v) rather
// than the more common a.Cross(w)/w.Cross(u) ordering. This makes the
// resulting basis left-handed (u.Cross(v) == -w) for every w. That
// handedness has no effect on any PDF or BRDF computed
// here (all of them are invariant under a reflection of the tangent
// frame), so it is preserved as-is rather than "fixed".
func BasisFromW(w Vec4) Mat4 {
	w = w.Unit()

	var a Vec4
	if math.Abs(w.X) > 0.9 {
		a = Direction(0, 1, 0)
	} else {
		a = Direction(1, 0, 0)
	}

	v := w.Cross(a).Unit()
	u := w.Cross(v)

	return MatFromColumns(u, v, w, Direction(0, 0, 0))
}
