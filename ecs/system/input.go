package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
)

// InputSource polls the raw button state once per tick.
type InputSource interface {
	Poll() gravity.InputState
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// Update shifts last tick's state into Previous and stores the fresh poll.
// Input is read in every flow state so game over can be acknowledged.
func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}
	state := i.source.Poll()
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		in.Previous = in.Current
		in.Current = state
	})
}
