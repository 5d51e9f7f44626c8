package ecs

import "github.com/milk9111/unstable/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// First returns the first entity carrying handle along with its component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, T, bool) {
	var zero T
	e, ok := w.First(handle.Kind())
	if !ok {
		return 0, zero, false
	}
	value, ok := Get(w, e, handle)
	return e, value, ok
}

// ForEach visits every entity carrying handle. Changes made through the
// pointer are written back after fn returns.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, value *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind(), false)
	if s == nil {
		return
	}
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		value, ok := Get(w, e, handle)
		if !ok {
			continue
		}
		fn(e, &value)
		if w.IsAlive(e) && s.Has(e) {
			s.Set(e, value)
		}
	}
}
