package vmath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat4 is a row-major 4x4 matrix used for affine transforms and ONB
// changes of basis.
type Mat4 struct {
	m [16]float64
}

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// NewMat4FromRows builds a matrix from 16 values in row-major order.
func NewMat4FromRows(values [16]float64) Mat4 {
	return Mat4{m: values}
}

// MatFromColumns builds a matrix whose first three columns are u, v, w and
// whose last column is the translation t (with a 1 in the bottom-right).
// This is the constructor the ONB basis-change matrix and affine
// transforms are built from.
func MatFromColumns(u, v, w, t Vec4) Mat4 {
	return Mat4{m: [16]float64{
		u.X, v.X, w.X, t.X,
		u.Y, v.Y, w.Y, t.Y,
		u.Z, v.Z, w.Z, t.Z,
		0, 0, 0, 1,
	}}
}

func (m Mat4) at(r, c int) float64 { return m.m[r*4+c] }

// Col returns column c (0-indexed) as a direction vector.
func (m Mat4) Col(c int) Vec4 {
	return Direction(m.at(0, c), m.at(1, c), m.at(2, c))
}

// MulVec transforms v by m, respecting the homogeneous w tag: points pick
// up the translation column, directions do not.
func (m Mat4) MulVec(v Vec4) Vec4 {
	x := m.at(0, 0)*v.X + m.at(0, 1)*v.Y + m.at(0, 2)*v.Z + m.at(0, 3)*v.W
	y := m.at(1, 0)*v.X + m.at(1, 1)*v.Y + m.at(1, 2)*v.Z + m.at(1, 3)*v.W
	z := m.at(2, 0)*v.X + m.at(2, 1)*v.Y + m.at(2, 2)*v.Z + m.at(2, 3)*v.W
	w := m.at(3, 0)*v.X + m.at(3, 1)*v.Y + m.at(3, 2)*v.Z + m.at(3, 3)*v.W
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Mul composes two matrices: (m.Mul(o)).MulVec(v) == m.MulVec(o.MulVec(v)).
func (m Mat4) Mul(o Mat4) Mat4 {
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.at(r, k) * o.at(k, c)
			}
			out[r*4+c] = sum
		}
	}
	return Mat4{m: out}
}

// Transpose returns the matrix transpose.
func (m Mat4) Transpose() Mat4 {
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m.at(r, c)
		}
	}
	return Mat4{m: out}
}

// Inverse returns the matrix inverse, computed with gonum rather than a
// hand-rolled cofactor expansion. ok is false if the matrix is singular.
func (m Mat4) Inverse() (Mat4, bool) {
	dense := mat.NewDense(4, 4, m.m[:])
	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return IdentityMat4(), false
	}
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = inv.At(r, c)
		}
	}
	return Mat4{m: out}, true
}

// Translate returns a translation matrix.
func Translate(delta Vec4) Mat4 {
	m := IdentityMat4()
	m.m[3] = delta.X
	m.m[7] = delta.Y
	m.m[11] = delta.Z
	return m
}

// Scale3 returns a non-uniform scale matrix.
func Scale3(sx, sy, sz float64) Mat4 {
	return Mat4{m: [16]float64{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}}
}

// ScaleUniform returns a uniform scale matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale3(s, s, s)
}

// RotateX returns a rotation matrix about the x axis, angle in radians.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{m: [16]float64{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}}
}

// RotateY returns a rotation matrix about the y axis, angle in radians.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{m: [16]float64{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}}
}

// RotateZ returns a rotation matrix about the z axis, angle in radians.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{m: [16]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}
