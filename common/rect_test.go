package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 50, 50}, Rect{10, 10, 25, 25}, true},
		{"contained", Rect{0, 0, 50, 50}, Rect{1, 1, 2, 2}, true},
		{"touching_edge", Rect{0, 0, 50, 50}, Rect{50, 0, 10, 10}, false},
		{"apart", Rect{0, 0, 50, 50}, Rect{100, 100, 10, 10}, false},
		{"empty", Rect{0, 0, 0, 0}, Rect{0, 0, 10, 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("Intersects(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("Intersects is not symmetric for %v, %v", c.a, c.b)
			}
		})
	}
}
