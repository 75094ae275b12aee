package hrir

import "math"

// sectorHalfWidth is half the angular width of the regular sectors in
// degrees.
const sectorHalfWidth = 22.5

// sector is a half-open azimuth range [lo, hi) in normalised degrees.
type sector struct {
	dir    Direction
	lo, hi float64
}

// contiguousSectors covers [rearLow, rearHigh). Everything outside belongs
// to the rear sector, which straddles the ±180° seam and is handled
// separately in classify. No azimuth classifies as [RearLeft]; its table
// entry is only reached through [Table.Pair].
var contiguousSectors = [...]sector{
	{Front, -22.5, 22.5},
	{FrontLeft45, 22.5, 67.5},
	{Left, 67.5, 112.5},
	{FrontRight45, -67.5, -22.5},
	{Right, -112.5, -67.5},
	{RearRight, -157.5, -112.5},
}

// rearLow and rearHigh bound the wrap-around rear sector:
// [rearHigh, 180] ∪ (-180, rearLow). It spans 90°, so the lookup is
// asymmetric: 112.5° to 157.5° is rear while -157.5° to -112.5° is
// rear-right.
const (
	rearHigh = 112.5
	rearLow  = -180 + sectorHalfWidth
)

// NormalizeAzimuth maps az into (-180, 180] using a floored modulo, so
// negative inputs wrap the same way as positive ones. Non-finite input
// yields NaN.
func NormalizeAzimuth(az float64) float64 {
	if math.IsNaN(az) || math.IsInf(az, 0) {
		return math.NaN()
	}
	m := math.Mod(az+180, 360)
	if m < 0 {
		m += 360
	}
	n := m - 180
	if n <= -180 {
		n += 360
	}
	return n
}

// Classify returns the canonical direction whose sector contains az.
// Every finite azimuth falls into exactly one sector. Non-finite input
// returns [Fallback] together with [ErrNonFiniteAzimuth].
func Classify(az float64) (Direction, error) {
	n := NormalizeAzimuth(az)
	if math.IsNaN(n) {
		return Fallback, ErrNonFiniteAzimuth
	}
	return classify(n), nil
}

// classify expects an azimuth already normalised into (-180, 180].
func classify(az float64) Direction {
	if az >= rearHigh || az < rearLow {
		return Rear
	}
	for i := range contiguousSectors {
		s := &contiguousSectors[i]
		if az >= s.lo && az < s.hi {
			return s.dir
		}
	}
	// Unreachable for normalised input; the sectors tile [rearLow, rearHigh).
	return Fallback
}

// SectorBounds returns the half-open range [lo, hi) covered by d and
// whether any azimuth classifies as d. The rear sector wraps, so for [Rear]
// lo is greater than hi and the range reads [lo, 180] ∪ (-180, hi). [RearLeft]
// and invalid directions own no range and return NaN bounds with ok false.
func SectorBounds(d Direction) (lo, hi float64, ok bool) {
	if d == Rear {
		return rearHigh, rearLow, true
	}
	for _, s := range contiguousSectors {
		if s.dir == d {
			return s.lo, s.hi, true
		}
	}
	return math.NaN(), math.NaN(), false
}
