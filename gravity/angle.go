// Package gravity holds the rotation controller that turns player input into
// a world gravity vector, and the resting-orientation correction applied to
// the avatar. Everything here is a pure function of its arguments.
package gravity

import "math"

const (
	TwoPi = 2 * math.Pi

	// Magnitude is the default gravitational acceleration in simulation units.
	Magnitude = 9.8

	// Epsilon is the inward bias Clamp applies when pulling an angle out of
	// the forbidden zone. It keeps the result strictly inside the allowed
	// zone so the next tick's gate passes.
	Epsilon = 1e-3
)

// Normalize maps any angle into [0, 2π).
func Normalize(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -tiny + 2π rounds to 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// InAllowedZone reports whether angle lies in [0, r] ∪ [2π−r, 2π). Both
// bounds are inclusive.
func InAllowedZone(angle, halfRange float64) bool {
	return angle <= halfRange || angle >= TwoPi-halfRange
}

// Clamp saturates an angle that fell into the forbidden zone (r, 2π−r). The
// zone is split at π: the left half, π included, snaps to r−Epsilon and the
// right half to 2π−r+Epsilon. Angles already allowed are returned unchanged.
// When r is smaller than Epsilon both halves snap to 0.
func Clamp(angle, halfRange float64) float64 {
	switch {
	case angle > halfRange && angle <= math.Pi:
		target := halfRange - Epsilon
		if target < 0 {
			target = 0
		}
		return target
	case angle > math.Pi && angle < TwoPi-halfRange:
		target := TwoPi - halfRange + Epsilon
		if target >= TwoPi {
			target = 0
		}
		return target
	}
	return angle
}

// Vector derives the gravity vector for an angle measured from straight down.
func Vector(angle, g float64) (x, y float64) {
	return g * math.Sin(angle), g * math.Cos(angle)
}
