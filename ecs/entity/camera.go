package entity

import "github.com/milk9111/unstable/ecs"

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

// NewGravityIndicator builds the HUD dial.
func NewGravityIndicator(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "hud.yaml")
}
