package ecs

// EventKind identifies event payload types.
type EventKind string

const (
	EventContact     EventKind = "contact"
	EventLevelLoaded EventKind = "level_loaded"
	EventGameOver    EventKind = "game_over"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind EventKind
	Data any
}

// ContactEvent is raised by the physics world when the avatar starts touching
// level geometry. Speed is the avatar's linear speed in simulation units at
// the moment of contact.
type ContactEvent struct {
	A     Entity
	B     Entity
	Speed float64
}

// LevelLoadedEvent is raised after a level finished building.
type LevelLoadedEvent struct {
	Index int
	Name  string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// DrainKind removes and returns the events of one kind, keeping the rest in
// order.
func (q *EventQueue) DrainKind(kind EventKind) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Kind == kind {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}
