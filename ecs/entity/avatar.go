package entity

import "github.com/milk9111/unstable/ecs"

func NewAvatar(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "avatar.yaml")
}
