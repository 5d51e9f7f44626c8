package system

import (
	"fmt"
	"log"

	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
	"github.com/milk9111/unstable/levels"
)

const (
	ClipMusic  = "music"
	ClipPortal = "portal"
)

// LayoutLoader loads the layout of the level at index.
type LayoutLoader func(index int) (*levels.Layout, error)

// LevelSystem consumes LevelChangeRequest and rebuilds the level, resetting
// the avatar, gravity and camera to their starting state.
type LevelSystem struct {
	load      LayoutLoader
	count     func() int
	magnitude float64
	err       error
}

func NewLevelSystem(load LayoutLoader, count func() int, magnitude float64) *LevelSystem {
	if load == nil {
		load = levels.LoadLayout
	}
	if count == nil {
		count = levels.Count
	}
	return &LevelSystem{load: load, count: count, magnitude: magnitude}
}

// Err returns the first load failure. Level data errors are fatal.
func (ls *LevelSystem) Err() error {
	if ls == nil {
		return nil
	}
	return ls.err
}

func (ls *LevelSystem) Update(w *ecs.World) {
	if ls == nil || w == nil {
		return
	}
	flowEnt, _, ok := gameFlow(w)
	if !ok {
		return
	}
	req, ok := ecs.Get(w, flowEnt, component.LevelChangeRequestComponent)
	if !ok {
		return
	}
	ecs.Remove(w, flowEnt, component.LevelChangeRequestComponent)

	if !req.Reload {
		if lg := w.Level(); lg != nil && lg.Attached() && lg.Bounds().Index == ls.wrap(req.Target) {
			return
		}
	}
	if err := ls.Load(w, req.Target); err != nil && ls.err == nil {
		ls.err = err
	}
}

func (ls *LevelSystem) wrap(index int) int {
	n := ls.count()
	if index < 0 {
		index = 0
	}
	if n > 0 {
		index %= n
	}
	return index
}

// Load builds the level at index, wrapping past the last level back to the
// first.
func (ls *LevelSystem) Load(w *ecs.World, index int) error {
	pw := w.PhysicsWorld()
	if pw == nil {
		return fmt.Errorf("level system: load level %d: no physics world", index)
	}
	index = ls.wrap(index)

	layout, err := ls.load(index)
	if err != nil {
		return fmt.Errorf("level system: load level %d: %w", index, err)
	}

	levelEnt, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		levelEnt = w.CreateEntity()
	}
	geometry := ecs.NewLevelGeometry(pw, levelEnt, layout, audioCues{w: w})
	w.SetLevel(geometry)
	mustAdd(w, levelEnt, component.LevelBoundsComponent, geometry.Bounds(), "level system: set bounds")

	flowEnt, flow, ok := gameFlow(w)
	if ok {
		flow.Level = index
		mustAdd(w, flowEnt, component.GameFlowComponent, flow, "level system: update flow")
	}

	spawnX, spawnY := geometry.Spawn()
	if avatarEnt, ok := avatar(w); ok {
		if body, ok := ecs.Get(w, avatarEnt, component.PhysicsBodyComponent); ok {
			ecs.ResetBody(body.Body, spawnX, spawnY)
		}
		if in, ok := ecs.Get(w, avatarEnt, component.InputComponent); ok {
			in.Previous = in.Current
			mustAdd(w, avatarEnt, component.InputComponent, in, "level system: reset input")
		}
	}
	syncTransforms(w)

	state := gravity.Default(ls.magnitude)
	if gravEnt, grav, ok := gravityState(w); ok {
		grav.State = state
		mustAdd(w, gravEnt, component.GravityComponent, grav, "level system: reset gravity")
	}
	pw.SetGravity(state.X, state.Y)

	ecs.ForEach(w, component.CameraComponent, func(_ ecs.Entity, cam *component.Camera) {
		cam.Rotation = 0
		cam.FocusX = spawnX
		cam.FocusY = spawnY
	})

	audioCues{w: w}.PlayMusic()

	w.Events().Push(ecs.Event{Kind: ecs.EventLevelLoaded, Data: ecs.LevelLoadedEvent{Index: index, Name: layout.Name}})
	log.Printf("level %d loaded: %q max gravity %.3f rad", index, layout.Name, layout.MaxGravity)
	return nil
}

// audioCues routes level sound cues through the audio component flags.
type audioCues struct {
	w *ecs.World
}

func (c audioCues) each(fn func(a *component.Audio)) {
	ecs.ForEach(c.w, component.AudioComponent, func(_ ecs.Entity, a *component.Audio) { fn(a) })
}

func (c audioCues) StopMusic()  { c.each(func(a *component.Audio) { a.Halt(ClipMusic) }) }
func (c audioCues) PlayPortal() { c.each(func(a *component.Audio) { a.Request(ClipPortal) }) }
func (c audioCues) PlayMusic()  { c.each(func(a *component.Audio) { a.Request(ClipMusic) }) }
