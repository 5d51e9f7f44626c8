package main

import (
	"math"
	"testing"

	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
)

func TestCameraGeoM(t *testing.T) {
	cx, cy := float64(common.BaseWidth)/2, float64(common.BaseHeight)/2

	tests := []struct {
		name  string
		angle float64
	}{
		{name: "rest", angle: 0},
		{name: "quarter turn", angle: math.Pi / 2},
		{name: "tilted", angle: 0.7},
		{name: "upside down", angle: math.Pi},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := component.Camera{Rotation: tc.angle, FocusX: 300, FocusY: 120, Zoom: 1}
			geo := cameraGeoM(cam)

			x, y := geo.Apply(cam.FocusX, cam.FocusY)
			if math.Abs(x-cx) > 1e-9 || math.Abs(y-cy) > 1e-9 {
				t.Fatalf("expected focus at screen centre, got (%f, %f)", x, y)
			}

			// Gravity always points straight down on screen.
			gx, gy := gravity.Vector(tc.angle, 100)
			x, y = geo.Apply(cam.FocusX+gx, cam.FocusY+gy)
			if math.Abs(x-cx) > 1e-6 || math.Abs(y-(cy+100)) > 1e-6 {
				t.Fatalf("expected gravity to point down, got (%f, %f)", x-cx, y-cy)
			}
		})
	}
}

func TestCameraGeoMZoom(t *testing.T) {
	geo := cameraGeoM(component.Camera{Zoom: 2})
	x, y := geo.Apply(10, 0)
	if math.Abs(x-(float64(common.BaseWidth)/2+20)) > 1e-9 || math.Abs(y-float64(common.BaseHeight)/2) > 1e-9 {
		t.Fatalf("expected doubled offset, got (%f, %f)", x, y)
	}

	geo = cameraGeoM(component.Camera{})
	x, _ = geo.Apply(10, 0)
	if math.Abs(x-(float64(common.BaseWidth)/2+10)) > 1e-9 {
		t.Fatalf("expected zero zoom to act as 1, got x=%f", x)
	}
}
