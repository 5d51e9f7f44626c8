package gravity

import "math"

const (
	// RestSpeed is the linear speed below which the avatar counts as resting.
	RestSpeed = 1e-4
	// RestTolerance is the half-width of the window around the target
	// rotation inside which a resting avatar keeps its physics rotation.
	RestTolerance = math.Pi / 4
	restMultiple  = 3
)

// RestTarget is the rotation a resting avatar is compared against.
func RestTarget(gravityAngle float64) float64 {
	return math.Mod(restMultiple*gravityAngle, TwoPi)
}

// Correct returns the avatar rotation after the resting check. A resting
// avatar tilted outside the tolerance window is snapped to -gravityAngle.
// The result is always normalised to [0, 2π).
func Correct(rotation, speed, gravityAngle float64) float64 {
	if speed < RestSpeed {
		target := RestTarget(gravityAngle)
		if rotation > target+RestTolerance || rotation < target-RestTolerance {
			rotation = -gravityAngle
		}
	}
	return Normalize(rotation)
}
