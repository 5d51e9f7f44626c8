package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/unstable/gravity"
)

type button int

const (
	buttonUp button = iota
	buttonLeft
	buttonDown
	buttonRight
	buttonAck
	buttonQuit
	buttonCount
)

// keyInput turns terminal key presses into held buttons. Terminals report
// no key releases, so a press holds its button for a fixed number of polls
// and key repeat extends it.
type keyInput struct {
	hold int
	left [buttonCount]int
}

func newKeyInput(hold int) *keyInput {
	if hold < 1 {
		hold = 1
	}
	return &keyInput{hold: hold}
}

func keyButton(ev *tcell.EventKey) (button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return buttonUp, true
	case tcell.KeyLeft:
		return buttonLeft, true
	case tcell.KeyDown:
		return buttonDown, true
	case tcell.KeyRight:
		return buttonRight, true
	case tcell.KeyEnter:
		return buttonAck, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return buttonQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return buttonUp, true
		case 'a', 'A':
			return buttonLeft, true
		case 's', 'S':
			return buttonDown, true
		case 'd', 'D':
			return buttonRight, true
		case ' ':
			return buttonAck, true
		case 'q', 'Q':
			return buttonQuit, true
		}
	}
	return 0, false
}

func (k *keyInput) Handle(ev *tcell.EventKey) {
	if b, ok := keyButton(ev); ok {
		k.left[b] = k.hold
	}
}

func (k *keyInput) Poll() gravity.InputState {
	held := func(b button) bool { return k.left[b] > 0 }
	st := gravity.InputState{
		RotateUp:    held(buttonUp),
		RotateLeft:  held(buttonLeft),
		RotateDown:  held(buttonDown),
		RotateRight: held(buttonRight),
		Acknowledge: held(buttonAck),
		Quit:        held(buttonQuit),
	}
	for i := range k.left {
		if k.left[i] > 0 {
			k.left[i]--
		}
	}
	return st
}
