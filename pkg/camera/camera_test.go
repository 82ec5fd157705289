package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrel-ray/pathtracer/pkg/vmath"
	"github.com/stretchr/testify/assert"
)

func TestNewDerivesImageHeightFromAspectRatio(t *testing.T) {
	c := New(400, 16.0/9.0, 50)
	assert.Equal(t, 225, c.ImageHeight())
}

func TestNewClampsImageHeightToOne(t *testing.T) {
	c := New(1, 1000, 50)
	assert.Equal(t, 1, c.ImageHeight())
}

func TestRayThroughCenterPixelPointsDownLookAxis(t *testing.T) {
	c := New(100, 1, 50)
	c.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	ray := c.Ray(50, 50, 0, 0, 1, rng)
	dir := ray.Direction.Unit()

	assert.InDelta(t, -1.0, dir.Z, 0.05)
	assert.InDelta(t, 0.0, dir.X, 0.05)
}

func TestRayOriginatesFromPositionWithoutAperture(t *testing.T) {
	c := New(100, 1, 50)
	pos := vmath.Point(1, 2, 3)
	c.MoveAndLookAt(pos, vmath.Point(1, 2, 2))
	rng := rand.New(rand.NewSource(1))

	ray := c.Ray(50, 50, 0, 0, 1, rng)
	assert.Equal(t, pos, ray.Origin)
}

func TestRayOriginatesOffAxisWithAperture(t *testing.T) {
	c := New(100, 1, 50)
	pos := vmath.Point(0, 0, 0)
	c.MoveAndLookAt(pos, vmath.Point(0, 0, -1))
	c.SetFNumber(1.4)

	sawOffset := false
	for i := 0; i < 32; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		ray := c.Ray(50, 50, 0, 0, 1, rng)
		if ray.Origin.Sub(pos).Length() > 1e-6 {
			sawOffset = true
			break
		}
	}
	assert.True(t, sawOffset)
}

func TestStratifiedSubCellsCoverDistinctPixelRegions(t *testing.T) {
	c := New(100, 1, 50)
	c.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))

	rng := rand.New(rand.NewSource(1))
	topLeft := c.Ray(50, 50, 0, 0, 4, rng)
	bottomRight := c.Ray(50, 50, 3, 3, 4, rng)

	assert.NotEqual(t, topLeft.Direction, bottomRight.Direction)
}

func TestFocalLengthChangesFieldOfView(t *testing.T) {
	wide := New(100, 1, 20)
	narrow := New(100, 1, 200)

	wide.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))
	narrow.MoveAndLookAt(vmath.Point(0, 0, 0), vmath.Point(0, 0, -1))

	rng := rand.New(rand.NewSource(1))
	wideEdge := wide.Ray(0, 50, 0, 0, 1, rng).Direction.Unit()
	narrowEdge := narrow.Ray(0, 50, 0, 0, 1, rng).Direction.Unit()

	wideAngle := math.Acos(wideEdge.Dot(vmath.Direction(0, 0, -1)))
	narrowAngle := math.Acos(narrowEdge.Dot(vmath.Direction(0, 0, -1)))

	assert.Greater(t, wideAngle, narrowAngle)
}
