package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
	"github.com/milk9111/unstable/prefabs"
)

var errNoPhysicsWorld = errors.New("entity: world has no physics world")

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"avatar_tag":        addAvatarTag,
	"camera_tag":        addCameraTag,
	"input":             addInput,
	"transform":         addTransform,
	"sprite":            addSprite,
	"physics_body":      addPhysicsBody,
	"camera":            addCamera,
	"gravity_indicator": addGravityIndicator,
	"gravity":           addGravity,
	"game_flow":         addGameFlow,
	"audio":             addAudio,
}

// physics_body reads the transform, so it comes after it.
var componentBuildOrder = []string{
	"avatar_tag",
	"camera_tag",
	"game_flow",
	"gravity",
	"input",
	"transform",
	"sprite",
	"physics_body",
	"camera",
	"gravity_indicator",
	"audio",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := w.CreateEntity()
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			destroy(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			destroy(w, e)
			return 0, err
		}
	}

	return e, nil
}

// destroy removes a half-built entity along with any physics body it got.
func destroy(w *ecs.World, e ecs.Entity) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		w.PhysicsWorld().RemoveAvatar(body.Body, body.Shape)
	}
	w.DestroyEntity(e)
}

func addAvatarTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AvatarTagComponent, component.AvatarTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent, component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Texture == "" {
		return fmt.Errorf("sprite needs a texture name")
	}
	sprite := component.Sprite{
		Texture: spec.Texture,
		Width:   spec.Width,
		Height:  spec.Height,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
	}
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		sprite.OriginX = sprite.Width / 2
		sprite.OriginY = sprite.Height / 2
	}
	return ecs.Add(w, e, component.SpriteComponent, sprite)
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return errNoPhysicsWorld
	}
	if spec.Width <= 0 {
		spec.Width = 25
	}
	if spec.Height <= 0 {
		spec.Height = 50
	}
	if spec.Mass <= 0 {
		spec.Mass = 1
	}

	t, _ := ecs.Get(w, e, component.TransformComponent)
	body, shape := pw.AddAvatar(e, t.X, t.Y, spec.Width, spec.Height, spec.Mass, spec.Friction)
	return ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Body:     body,
		Shape:    shape,
		Width:    spec.Width,
		Height:   spec.Height,
		Mass:     spec.Mass,
		Friction: spec.Friction,
	})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent, component.Camera{Zoom: spec.Zoom})
}

type gravityIndicatorSpec = prefabs.GravityIndicatorComponentSpec

// addGravityIndicator anchors the dial to the bottom-right screen corner.
func addGravityIndicator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityIndicatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity indicator spec: %w", err)
	}
	if spec.Size <= 0 {
		spec.Size = 64
	}
	half := spec.Size / 2
	return ecs.Add(w, e, component.GravityIndicatorComponent, component.GravityIndicator{
		X:    common.BaseWidth - spec.Margin - half,
		Y:    common.BaseHeight - spec.Margin - half,
		Size: spec.Size,
	})
}

type gravitySpec = prefabs.GravityComponentSpec

func addGravity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity spec: %w", err)
	}
	if spec.Magnitude == 0 {
		spec.Magnitude = gravity.Magnitude
	}
	return ecs.Add(w, e, component.GravityComponent, component.Gravity{State: gravity.Default(spec.Magnitude)})
}

type gameFlowSpec = prefabs.GameFlowComponentSpec

func addGameFlow(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gameFlowSpec](raw)
	if err != nil {
		return fmt.Errorf("decode game flow spec: %w", err)
	}
	return ecs.Add(w, e, component.GameFlowComponent, component.GameFlow{Level: spec.Level})
}

type audioSpec = prefabs.AudioComponentSpec

// addAudio registers clip flags only; players are owned by the audio system.
func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	n := len(spec.Clips)
	comp := component.Audio{
		Names:  make([]string, 0, n),
		Volume: make([]float64, 0, n),
		Play:   make([]bool, n),
		Stop:   make([]bool, n),
	}
	for _, clip := range spec.Clips {
		comp.Names = append(comp.Names, clip.Name)
		comp.Volume = append(comp.Volume, 1)
	}
	return ecs.Add(w, e, component.AudioComponent, comp)
}
