package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/unstable/gravity"
)

func TestKeyInputHoldsPressForHoldPolls(t *testing.T) {
	k := newKeyInput(3)
	k.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))

	for i := 0; i < 3; i++ {
		if st := k.Poll(); !st.RotateUp {
			t.Fatalf("poll %d: expected rotate up held", i)
		}
	}
	if st := k.Poll(); st.RotateUp {
		t.Fatalf("expected rotate up released after hold")
	}
}

func TestKeyInputMapping(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		check func(gravity.InputState) bool
	}{
		{name: "arrow up", ev: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), check: func(s gravity.InputState) bool { return s.RotateUp }},
		{name: "a", ev: tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), check: func(s gravity.InputState) bool { return s.RotateLeft }},
		{name: "arrow down", ev: tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), check: func(s gravity.InputState) bool { return s.RotateDown }},
		{name: "d", ev: tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), check: func(s gravity.InputState) bool { return s.RotateRight }},
		{name: "space", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), check: func(s gravity.InputState) bool { return s.Acknowledge }},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), check: func(s gravity.InputState) bool { return s.Quit }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := newKeyInput(1)
			k.Handle(tc.ev)
			if !tc.check(k.Poll()) {
				t.Fatalf("expected button held after %s", tc.name)
			}
		})
	}
}

func TestKeyInputIgnoresUnmappedKeys(t *testing.T) {
	k := newKeyInput(2)
	k.Handle(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	if st := k.Poll(); st != (gravity.InputState{}) {
		t.Fatalf("expected no buttons, got %+v", st)
	}
}
