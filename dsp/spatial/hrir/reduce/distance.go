package reduce

import "math"

// elevationWeight scales the elevation difference before squaring.
const elevationWeight = 2

// targetElevation is the plane every target lies on.
const targetElevation = 0

// Normalize360 maps az into [0, 360).
func Normalize360(az float64) float64 {
	m := math.Mod(az, 360)
	if m < 0 {
		m += 360
	}
	if m >= 360 {
		m -= 360
	}
	return m
}

// AngularDistance returns the shortest distance between two azimuths in
// degrees, in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(Normalize360(a) - Normalize360(b))
	return math.Min(d, 360-d)
}

// Score rates how well m matches a target at the given azimuth on the
// horizontal plane. Lower is better.
func Score(m Measurement, targetAzimuth float64) float64 {
	azDiff := AngularDistance(m.Azimuth, targetAzimuth)
	elDiff := math.Abs(m.Elevation - targetElevation)
	return azDiff*azDiff + (elevationWeight*elDiff)*(elevationWeight*elDiff)
}
