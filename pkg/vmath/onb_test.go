package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisFromWIsOrthonormal(t *testing.T) {
	cases := []Vec4{
		Direction(0, 1, 0),
		Direction(1, 0, 0),
		Direction(0, 0, 1),
		Direction(1, 1, 1).Unit(),
		Direction(0.95, 0.1, 0.2).Unit(),
	}

	for _, w := range cases {
		basis := BasisFromW(w)
		u := basis.Col(0)
		v := basis.Col(1)
		bw := basis.Col(2)

		assert.InDelta(t, 1.0, u.Length(), 1e-9)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
		assert.InDelta(t, 1.0, bw.Length(), 1e-9)

		assert.InDelta(t, 0, u.Dot(v), 1e-9)
		assert.InDelta(t, 0, u.Dot(bw), 1e-9)
		assert.InDelta(t, 0, v.Dot(bw), 1e-9)

		// w column must reproduce the input direction.
		assert.InDelta(t, w.X, bw.X, 1e-9)
		assert.InDelta(t, w.Y, bw.Y, 1e-9)
		assert.InDelta(t, w.Z, bw.Z, 1e-9)
	}
}

func TestBasisFromWTransformsLocalZToW(t *testing.T) {
	w := Direction(0.3, 0.6, 0.742).Unit()
	basis := BasisFromW(w)
	mapped := basis.MulVec(Direction(0, 0, 1))

	assert.InDelta(t, w.X, mapped.X, 1e-9)
	assert.InDelta(t, w.Y, mapped.Y, 1e-9)
	assert.InDelta(t, w.Z, mapped.Z, 1e-9)
}

func TestBasisFromWSwitchesHelperAxisNearXAlignment(t *testing.T) {
	// When |w.x| > 0.9 the helper axis is +Y instead of +X; either way the
	// result must stay orthonormal (handedness is not checked here, see
	// the doc comment on BasisFromW).
	w := Direction(0.95, 0.05, 0.05).Unit()
	basis := BasisFromW(w)
	u := basis.Col(0)
	v := basis.Col(1)

	assert.InDelta(t, 0, u.Dot(v), 1e-9)
	assert.InDelta(t, 1.0, u.Length(), 1e-9)
}
