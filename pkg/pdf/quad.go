package pdf

// QuadAreaToSolidAngle converts an area-measure density (1/area) into a
// solid-angle-measure density as seen from a shading point, using the
// standard Jacobian PDF_solid_angle = PDF_area * distance^2 / |cosine|,
// where cosine is the angle between the light's outward normal and the
// direction back toward the shading point. Returns 0 when the point is
// behind the light (cosine <= 0).
func QuadAreaToSolidAngle(areaPDF, distance, cosine float64) float64 {
	if cosine <= 0 {
		return 0
	}
	return areaPDF * distance * distance / cosine
}
