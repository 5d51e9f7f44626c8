package component

import "github.com/milk9111/unstable/gravity"

// Input stores this tick's and last tick's button state so systems can tell
// a press from a hold.
type Input struct {
	Current  gravity.InputState
	Previous gravity.InputState
}

var InputComponent = NewComponent[Input]()
