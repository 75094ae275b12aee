package hrir

import "fmt"

// Direction identifies one of the canonical measurement directions.
type Direction uint8

const (
	// Front is straight ahead, 0°.
	Front Direction = iota
	// FrontLeft45 is 45° to the left.
	FrontLeft45
	// Left is 90°, the left ear axis.
	Left
	// RearLeft is 135°. Its filter pair is stored in every table but no
	// azimuth classifies to it; use [Table.Pair] to reach it.
	RearLeft
	// Rear is directly behind, 180°. Its sector spans [112.5°, 180°] and
	// (-180°, -157.5°).
	Rear
	// RearRight is -135°.
	RearRight
	// Right is -90°, the right ear axis.
	Right
	// FrontRight45 is 45° to the right, -45°.
	FrontRight45

	// NumDirections is the number of canonical directions.
	NumDirections = 8
)

// Fallback is returned by [Table.ForAzimuth] for non-finite azimuths.
const Fallback = Front

type directionInfo struct {
	name    string
	azimuth float64
}

var directionTable = [NumDirections]directionInfo{
	Front:        {"front", 0},
	FrontLeft45:  {"front-left-45", 45},
	Left:         {"left", 90},
	RearLeft:     {"rear-left", 135},
	Rear:         {"rear", 180},
	RearRight:    {"rear-right", -135},
	Right:        {"right", -90},
	FrontRight45: {"front-right-45", -45},
}

// Directions returns all canonical directions in tag order.
func Directions() [NumDirections]Direction {
	var out [NumDirections]Direction
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Valid reports whether d is a canonical direction.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// String returns the direction name, e.g. "front-left-45".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionTable[d].name
}

// Azimuth returns the centre azimuth of d in degrees, in (-180, 180].
func (d Direction) Azimuth() float64 {
	if !d.Valid() {
		return 0
	}
	return directionTable[d].azimuth
}

// ParseDirection returns the direction with the given name.
func ParseDirection(name string) (Direction, error) {
	for i, info := range directionTable {
		if info.name == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown name %q", ErrDirection, name)
}
