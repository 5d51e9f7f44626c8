package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
)

func newWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(ecs.PhysicsConfig{GravityY: gravity.Magnitude}))
	return w
}

func TestNewScene(t *testing.T) {
	w := newWorld()
	scene, err := NewScene(w)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{
			name: "avatar",
			check: func(t *testing.T) {
				if !ecs.Has(w, scene.Avatar, component.AvatarTagComponent) || !ecs.Has(w, scene.Avatar, component.InputComponent) {
					t.Fatalf("avatar missing tag or input")
				}
				body, ok := ecs.Get(w, scene.Avatar, component.PhysicsBodyComponent)
				if !ok || body.Body == nil || body.Shape == nil {
					t.Fatalf("avatar missing physics body")
				}
				if body.Width != 25 || body.Height != 50 || body.Friction != 0.6 {
					t.Fatalf("unexpected avatar body %+v", body)
				}
				sprite, _ := ecs.Get(w, scene.Avatar, component.SpriteComponent)
				if sprite.OriginX != 12.5 || sprite.OriginY != 25 {
					t.Fatalf("expected centred origin, got %v,%v", sprite.OriginX, sprite.OriginY)
				}
			},
		},
		{
			name: "game",
			check: func(t *testing.T) {
				flow, ok := ecs.Get(w, scene.Game, component.GameFlowComponent)
				if !ok || flow.State != component.FlowPlaying || flow.Level != 0 {
					t.Fatalf("unexpected flow %+v", flow)
				}
				grav, ok := ecs.Get(w, scene.Game, component.GravityComponent)
				if !ok || grav.Angle != 0 || grav.X != 0 || grav.Y != gravity.Magnitude {
					t.Fatalf("unexpected gravity %+v", grav)
				}
				audio, ok := ecs.Get(w, scene.Game, component.AudioComponent)
				if !ok || audio.Index("music") < 0 || audio.Index("portal") < 0 {
					t.Fatalf("expected music and portal clips, got %+v", audio.Names)
				}
			},
		},
		{
			name: "camera_and_hud",
			check: func(t *testing.T) {
				cam, ok := ecs.Get(w, scene.Camera, component.CameraComponent)
				if !ok || cam.Zoom != 1 {
					t.Fatalf("unexpected camera %+v", cam)
				}
				hud, ok := ecs.Get(w, scene.HUD, component.GravityIndicatorComponent)
				if !ok {
					t.Fatalf("missing gravity indicator")
				}
				if hud.X <= common.BaseWidth/2 || hud.Y <= common.BaseHeight/2 {
					t.Fatalf("expected dial in the bottom-right corner, got %v,%v", hud.X, hud.Y)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestAvatarNeedsPhysicsWorld(t *testing.T) {
	w := ecs.NewWorld()
	_, err := NewAvatar(w)
	if !errors.Is(err, errNoPhysicsWorld) {
		t.Fatalf("expected errNoPhysicsWorld, got %v", err)
	}
	if len(w.Entities()) != 0 {
		t.Fatalf("expected half-built avatar to be destroyed")
	}
}

func TestBuildEntityMissingPrefab(t *testing.T) {
	if _, err := BuildEntity(newWorld(), "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}
