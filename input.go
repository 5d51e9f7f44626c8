package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/unstable/gravity"
)

// deviceInput polls the keyboard and the first standard gamepad. Rotation
// and acknowledge are reported as held state; the systems find the edges.
type deviceInput struct {
	pendingAck bool
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (d *deviceInput) Poll() gravity.InputState {
	st := gravity.InputState{
		RotateUp:    anyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		RotateLeft:  anyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		RotateDown:  anyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		RotateRight: anyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Acknowledge: anyKeyPressed(ebiten.KeySpace, ebiten.KeyEnter) || d.pendingAck,
		Quit:        ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
	d.pendingAck = false

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		pressed := func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		st.RotateUp = st.RotateUp || pressed(ebiten.StandardGamepadButtonLeftTop)
		st.RotateLeft = st.RotateLeft || pressed(ebiten.StandardGamepadButtonLeftLeft)
		st.RotateDown = st.RotateDown || pressed(ebiten.StandardGamepadButtonLeftBottom)
		st.RotateRight = st.RotateRight || pressed(ebiten.StandardGamepadButtonLeftRight)
		st.Acknowledge = st.Acknowledge || pressed(ebiten.StandardGamepadButtonRightBottom)
		st.Quit = st.Quit || pressed(ebiten.StandardGamepadButtonCenterRight)
	}
	return st
}

// Acknowledge reports the acknowledge button held for the next poll. The
// game-over overlay uses it for its Continue button.
func (d *deviceInput) Acknowledge() {
	d.pendingAck = true
}
