package gravity

import (
	"math"
	"testing"
)

func TestCorrect(t *testing.T) {
	cases := []struct {
		name     string
		rotation float64
		speed    float64
		angle    float64
		want     float64
	}{
		{"resting_inside_window", 0.1, 0, 0, 0.1},
		{"resting_outside_window", 2.0, 0, 0.3, TwoPi - 0.3},
		{"resting_upright_snap", math.Pi, 0, 0, 0},
		{"moving_keeps_rotation", 2.0, 1, 0.3, 2.0},
		{"threshold_is_strict", 2.0, RestSpeed, 0.3, 2.0},
		{"moving_negative_wraps", -1, 5, 0, TwoPi - 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Correct(c.rotation, c.speed, c.angle)
			if math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("Correct(%v, %v, %v) = %v, want %v", c.rotation, c.speed, c.angle, got, c.want)
			}
		})
	}
}

func TestCorrectRestingProperty(t *testing.T) {
	for i := 0; i < 90; i++ {
		angle := float64(i) / 90 * TwoPi
		target := RestTarget(angle)
		for j := 0; j < 90; j++ {
			rotation := float64(j) / 90 * TwoPi
			got := Correct(rotation, 0, angle)
			if got < 0 || got >= TwoPi {
				t.Fatalf("Correct(%v, 0, %v) = %v, outside [0, 2π)", rotation, angle, got)
			}
			outside := rotation > target+RestTolerance || rotation < target-RestTolerance
			want := rotation
			if outside {
				want = Normalize(-angle)
			}
			if got != want {
				t.Fatalf("Correct(%v, 0, %v) = %v, want %v", rotation, angle, got, want)
			}
		}
	}
}
