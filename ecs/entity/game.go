package entity

import (
	"fmt"

	"github.com/milk9111/unstable/ecs"
)

// Scene holds the long-lived entities of a session.
type Scene struct {
	Game   ecs.Entity
	Avatar ecs.Entity
	Camera ecs.Entity
	HUD    ecs.Entity
}

// NewGame builds the game flow singleton, which also carries world gravity
// and the level sound clips.
func NewGame(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "game.yaml")
}

// NewScene builds every long-lived entity. The world must already have a
// physics world attached. The level itself is built by the level system.
func NewScene(w *ecs.World) (Scene, error) {
	var s Scene
	var err error
	if s.Game, err = NewGame(w); err != nil {
		return Scene{}, fmt.Errorf("scene: game: %w", err)
	}
	if s.Avatar, err = NewAvatar(w); err != nil {
		return Scene{}, fmt.Errorf("scene: avatar: %w", err)
	}
	if s.Camera, err = NewCamera(w); err != nil {
		return Scene{}, fmt.Errorf("scene: camera: %w", err)
	}
	if s.HUD, err = NewGravityIndicator(w); err != nil {
		return Scene{}, fmt.Errorf("scene: hud: %w", err)
	}
	return s, nil
}
