package main

import (
	"math"
	"testing"

	"github.com/milk9111/unstable/ecs/component"
)

func TestProjectionCentresFocus(t *testing.T) {
	p := newProjection(component.Camera{FocusX: 100, FocusY: 200, Zoom: 1}, 80, 24)
	col, row := p.cell(100, 200)
	if col != 40 || row != 12 {
		t.Fatalf("expected focus at (40, 12), got (%d, %d)", col, row)
	}
}

func TestProjectionTurnsWithCamera(t *testing.T) {
	// A quarter turn maps a point right of the focus to below it.
	p := newProjection(component.Camera{Rotation: math.Pi / 2, Zoom: 1}, 80, 24)
	col, row := p.cell(100, 0)
	if col != 40 || row != 12+100/cellHeight {
		t.Fatalf("expected (40, %d), got (%d, %d)", 12+100/cellHeight, col, row)
	}
}
