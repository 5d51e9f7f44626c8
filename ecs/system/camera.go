package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

// CameraSystem turns the camera with gravity and centres it on the avatar.
// The HUD dial stays screen-locked.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || gameOver(w) {
		return
	}

	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	if _, grav, ok := gravityState(w); ok {
		cam.Rotation = grav.Angle
	}
	if avatarEnt, ok := avatar(w); ok {
		if t, ok := ecs.Get(w, avatarEnt, component.TransformComponent); ok {
			cam.FocusX = t.X
			cam.FocusY = t.Y
		}
	}
	mustAdd(w, cs.camEntity, component.CameraComponent, cam, "camera system: update camera")

	ecs.ForEach(w, component.GravityIndicatorComponent, func(_ ecs.Entity, hud *component.GravityIndicator) {
		hud.Rotation = 0
	})
}
