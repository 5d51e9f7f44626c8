package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
)

// OrientationSystem rights a resting avatar that came to rest at an angle
// far from the surface implied by gravity.
type OrientationSystem struct{}

func NewOrientationSystem() *OrientationSystem {
	return &OrientationSystem{}
}

func (o *OrientationSystem) Update(w *ecs.World) {
	if w == nil || gameOver(w) {
		return
	}
	avatarEnt, ok := avatar(w)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, avatarEnt, component.PhysicsBodyComponent)
	if !ok || body.Body == nil {
		return
	}
	_, grav, ok := gravityState(w)
	if !ok {
		return
	}

	rotation := body.Body.Angle()
	next := gravity.Correct(rotation, ecs.LinearSpeed(body.Body), grav.Angle)
	if next == rotation {
		return
	}
	body.Body.SetAngle(next)

	if t, ok := ecs.Get(w, avatarEnt, component.TransformComponent); ok {
		t.Rotation = next
		mustAdd(w, avatarEnt, component.TransformComponent, t, "orientation system: update transform")
	}
}
