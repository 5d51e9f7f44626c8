package ecs

import (
	"fmt"

	"github.com/milk9111/unstable/ecs/component"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the event queue and the attached
// physics world.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	physicsWorld *PhysicsWorld
	level        *LevelGeometry
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes all components of e and marks it dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

func (w *World) store(kind component.Identifier, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[kind.ID()]
	if !ok && create {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	return s
}

// AddComponent attaches or replaces the component of the given kind.
func (w *World) AddComponent(e Entity, kind component.Identifier, value any) error {
	if w == nil {
		return fmt.Errorf("ecs: add component: nil world")
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("ecs: add %s: %w", kind.Name(), component.ErrNilComponent)
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("ecs: add %s to %s: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	w.store(kind, true).Set(e, value)
	return nil
}

// GetComponent returns the raw component value of the given kind.
func (w *World) GetComponent(e Entity, kind component.Identifier) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind, false)
	if s == nil || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

// HasComponent reports whether e carries the given kind.
func (w *World) HasComponent(e Entity, kind component.Identifier) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent detaches the given kind from e.
func (w *World) RemoveComponent(e Entity, kind component.Identifier) bool {
	if w == nil || kind == nil {
		return false
	}
	s := w.store(kind, false)
	if s == nil {
		return false
	}
	return s.Remove(e)
}

// Query returns the entities carrying every given kind.
func (w *World) Query(kinds ...component.Identifier) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, kind := range kinds {
		s := w.store(kind, false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	return IntersectEntities(sets...)
}

// First returns the first entity carrying kind, if any.
func (w *World) First(kind component.Identifier) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s := w.store(kind, false)
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world. Contact events
// raised during a step land in the world event queue.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
	if pw != nil {
		pw.events = &w.events
	}
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// SetLevel replaces the current level geometry. The previous geometry is
// removed from the physics world.
func (w *World) SetLevel(lg *LevelGeometry) {
	if w == nil {
		return
	}
	if w.level != nil && w.level != lg {
		w.level.Destroy()
	}
	w.level = lg
}

// Level returns the current level geometry, if any.
func (w *World) Level() *LevelGeometry {
	if w == nil {
		return nil
	}
	return w.level
}
