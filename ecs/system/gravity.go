package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
)

// GravitySystem applies the rotation rules to the world gravity and pushes
// the resulting vector to the physics world.
type GravitySystem struct {
	controller *gravity.Controller
	dt         float64
}

func NewGravitySystem(magnitude, dt float64) *GravitySystem {
	return &GravitySystem{controller: gravity.NewController(magnitude), dt: dt}
}

func (gs *GravitySystem) Update(w *ecs.World) {
	if gs == nil || w == nil || gameOver(w) {
		return
	}

	avatarEnt, ok := avatar(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, avatarEnt, component.InputComponent)
	if !ok {
		return
	}
	_, bounds, ok := ecs.First(w, component.LevelBoundsComponent)
	if !ok {
		return
	}
	gravEnt, grav, ok := gravityState(w)
	if !ok {
		return
	}

	next, gated := gs.controller.Update(in.Current, in.Previous, gs.dt, bounds.MaxGravity, grav.State)
	grav.State = next
	mustAdd(w, gravEnt, component.GravityComponent, grav, "gravity system: update gravity")

	if gated {
		w.PhysicsWorld().SetGravity(next.X, next.Y)
	}
}
