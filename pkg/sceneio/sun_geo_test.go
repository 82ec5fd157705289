package sceneio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSunGeoParamsParsesCoordinatesAndTime(t *testing.T) {
	lat, lng, when, err := parseSunGeoParams("51.5,-0.12", "2026-06-21T12:00:00Z")
	require.NoError(t, err)
	assert.InDelta(t, 51.5, lat, 1e-9)
	assert.InDelta(t, -0.12, lng, 1e-9)
	assert.Equal(t, 2026, when.Year())
}

func TestParseSunGeoParamsRejectsMalformedCoordinate(t *testing.T) {
	_, _, _, err := parseSunGeoParams("51.5", "2026-06-21T12:00:00Z")
	assert.Error(t, err)
}

func TestParseSunGeoParamsRejectsMalformedTime(t *testing.T) {
	_, _, _, err := parseSunGeoParams("51.5,-0.12", "not-a-time")
	assert.Error(t, err)
}

func TestSunDirectionFromGeoReturnsUnitVector(t *testing.T) {
	when := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)
	dir := sunDirectionFromGeo(51.5, -0.12, when)
	assert.InDelta(t, 1.0, dir.Length(), 1e-9)
}

func TestSunDirectionFromGeoPointsUpwardAtLocalNoonSummer(t *testing.T) {
	// At local solar noon near the summer solstice at a mid-northern
	// latitude the sun is high in the sky, so the direction a camera
	// ray must travel to reach it should have a strongly positive Y.
	when := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)
	dir := sunDirectionFromGeo(51.5, -0.12, when)
	assert.Greater(t, dir.Y, 0.3)
}
