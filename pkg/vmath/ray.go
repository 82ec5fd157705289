package vmath

// Ray is a parametric ray Origin + t*Direction. InvDirection and Sign are
// precomputed once per ray and reused by every AABB slab test the ray is
// thrown against, rather than recomputed per-node (the teacher's
// core.AABB.Hit recomputes 1/d per call; here we cache it at the ray).
type Ray struct {
	Origin, Direction Vec4
	InvDirection      Vec4
	Sign              [3]int
}

// NewRay builds a ray and precomputes its inverse direction and slab signs.
func NewRay(origin, direction Vec4) Ray {
	inv := Direction(1/direction.X, 1/direction.Y, 1/direction.Z)
	var sign [3]int
	if inv.X < 0 {
		sign[0] = 1
	}
	if inv.Y < 0 {
		sign[1] = 1
	}
	if inv.Z < 0 {
		sign[2] = 1
	}
	return Ray{Origin: origin, Direction: direction, InvDirection: inv, Sign: sign}
}

// NewRayTo builds a ray from origin toward target.
func NewRayTo(origin, target Vec4) Ray {
	return NewRay(origin, target.Sub(origin))
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Scale(t))
}
