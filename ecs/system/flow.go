package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

func gameFlow(w *ecs.World) (ecs.Entity, component.GameFlow, bool) {
	return ecs.First(w, component.GameFlowComponent)
}

func gameOver(w *ecs.World) bool {
	_, flow, ok := gameFlow(w)
	return ok && flow.State == component.FlowGameOver
}

func avatar(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.AvatarTagComponent.Kind())
}

func gravityState(w *ecs.World) (ecs.Entity, component.Gravity, bool) {
	return ecs.First(w, component.GravityComponent)
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value T, what string) {
	if err := ecs.Add(w, e, handle, value); err != nil {
		panic(what + ": " + err.Error())
	}
}
