// Package component declares the component types of the game and a typed
// handle for each. Handles are created once at package init.
package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// Identifier is implemented by every ComponentKind regardless of its type
// parameter, so untyped world methods can accept any kind.
type Identifier interface {
	ID() ComponentID
	Name() string
}

// ComponentKind identifies the storage of one component type. The zero
// value is invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Name is the Go type name of T, used in error messages.
func (k ComponentKind[T]) Name() string { return k.name }

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new component type.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: reflect.TypeFor[T]().Name(),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
