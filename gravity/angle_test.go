package gravity

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 1.5, 1.5},
		{"full_turn", TwoPi, 0},
		{"negative", -0.25, TwoPi - 0.25},
		{"two_turns_plus", 2*TwoPi + 1, 1},
		{"tiny_negative", -1e-18, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize(c.in)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Normalize(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestNormalizeRangeAndIdempotent(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		in := float64(i) * 0.0137 * math.Pi
		got := Normalize(in)
		if got < 0 || got >= TwoPi {
			t.Fatalf("Normalize(%v) = %v, outside [0, 2π)", in, got)
		}
		if again := Normalize(got); again != got {
			t.Fatalf("Normalize not idempotent for %v: %v then %v", in, got, again)
		}
	}
}

func TestInAllowedZoneInclusive(t *testing.T) {
	r := math.Pi / 3
	cases := []struct {
		name  string
		angle float64
		want  bool
	}{
		{"zero", 0, true},
		{"left_boundary", r, true},
		{"right_boundary", TwoPi - r, true},
		{"just_past_left", r + 1e-6, false},
		{"just_before_right", TwoPi - r - 1e-6, false},
		{"pi", math.Pi, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InAllowedZone(c.angle, r); got != c.want {
				t.Fatalf("InAllowedZone(%v, %v) = %v, want %v", c.angle, r, got, c.want)
			}
		})
	}
}

func TestClampNeverLeavesAngleForbidden(t *testing.T) {
	ranges := []float64{0, 0.0005, math.Pi / 6, math.Pi / 3, math.Pi / 2, 2, math.Pi}
	for _, r := range ranges {
		for i := 0; i < 3600; i++ {
			angle := float64(i) / 3600 * TwoPi
			got := Clamp(angle, r)
			if got > r && got < TwoPi-r {
				t.Fatalf("Clamp(%v, %v) = %v, still forbidden", angle, r, got)
			}
			if got < 0 || got >= TwoPi {
				t.Fatalf("Clamp(%v, %v) = %v, outside [0, 2π)", angle, r, got)
			}
			if !InAllowedZone(got, r) {
				t.Fatalf("Clamp(%v, %v) = %v fails the gate", angle, r, got)
			}
			if angle > r && angle < TwoPi-r {
				left := math.Abs(got - r)
				right := angularDistance(got, TwoPi-r)
				if math.Min(left, right) > Epsilon+1e-12 {
					t.Fatalf("Clamp(%v, %v) = %v, not within epsilon of a boundary", angle, r, got)
				}
			}
		}
	}
}

func TestClampPiGoesLeft(t *testing.T) {
	r := math.Pi / 2
	if got := Clamp(math.Pi, r); got != r-Epsilon {
		t.Fatalf("Clamp(π, π/2) = %v, want %v", got, r-Epsilon)
	}
}

func TestClampScenario(t *testing.T) {
	r := math.Pi / 3
	got := Clamp(r+0.01, r)
	if got != r-Epsilon {
		t.Fatalf("Clamp(π/3+0.01) = %v, want %v", got, r-Epsilon)
	}
	got = Clamp(TwoPi-r-0.01, r)
	if got != TwoPi-r+Epsilon {
		t.Fatalf("Clamp(5π/3-0.01) = %v, want %v", got, TwoPi-r+Epsilon)
	}
}

func TestVectorMagnitude(t *testing.T) {
	for i := 0; i < 720; i++ {
		angle := float64(i) / 720 * TwoPi
		x, y := Vector(angle, Magnitude)
		if mag := math.Hypot(x, y); math.Abs(mag-Magnitude) > 1e-9 {
			t.Fatalf("|Vector(%v)| = %v, want %v", angle, mag, Magnitude)
		}
	}

	x, y := Vector(0, Magnitude)
	if x != 0 || y != Magnitude {
		t.Fatalf("Vector(0) = (%v, %v), want straight down", x, y)
	}
}
