package gravity

import "math"

const (
	// QuarterTurn is applied once per press of rotate up/down.
	QuarterTurn = math.Pi / 2
	// CreepStep is applied every tick rotate left/right is held.
	CreepStep = math.Pi / 120
)

// InputState is one tick's snapshot of the controls the simulation reads.
type InputState struct {
	RotateUp    bool
	RotateLeft  bool
	RotateDown  bool
	RotateRight bool
	Acknowledge bool
	Quit        bool
}

// Pressed reports a rising edge between two snapshots for the selected button.
func Pressed(cur, prev InputState, button func(InputState) bool) bool {
	return button(cur) && !button(prev)
}

// Rule turns the current and previous input into an angle delta. Deltas are
// applied once per tick regardless of the tick length.
type Rule struct {
	Name  string
	Delta func(cur, prev InputState) float64
}

func onPress(button func(InputState) bool, delta float64) func(cur, prev InputState) float64 {
	return func(cur, prev InputState) float64 {
		if Pressed(cur, prev, button) {
			return delta
		}
		return 0
	}
}

func whileHeld(button func(InputState) bool, delta float64) func(cur, prev InputState) float64 {
	return func(cur, _ InputState) float64 {
		if button(cur) {
			return delta
		}
		return 0
	}
}

// DefaultRules returns the four rotation rules in application order. Left is
// expressed as a near full turn forward so the angle only ever grows before
// normalisation.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "rotate_up", Delta: onPress(func(s InputState) bool { return s.RotateUp }, QuarterTurn)},
		{Name: "rotate_left", Delta: whileHeld(func(s InputState) bool { return s.RotateLeft }, TwoPi-CreepStep)},
		{Name: "rotate_down", Delta: onPress(func(s InputState) bool { return s.RotateDown }, -QuarterTurn)},
		{Name: "rotate_right", Delta: whileHeld(func(s InputState) bool { return s.RotateRight }, CreepStep)},
	}
}
