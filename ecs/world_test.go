package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/unstable/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
		})
	}
}

func TestWorldRecyclesIDsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 7); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh.generation() == old.generation() {
		t.Fatalf("expected a new generation for recycled id")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if _, ok := Get(w, old, h); ok {
		t.Fatalf("stale handle must not resolve")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_and_get",
			run: func(t *testing.T) {
				if err := Add(w, e1, hInt, 42); err != nil {
					t.Fatalf("add failed: %v", err)
				}
				got, ok := Get(w, e1, hInt)
				if !ok || got != 42 {
					t.Fatalf("expected 42, got %v (ok=%v)", got, ok)
				}
			},
		},
		{
			name: "replace",
			run: func(t *testing.T) {
				if err := Add(w, e1, hInt, 43); err != nil {
					t.Fatalf("add failed: %v", err)
				}
				if got, _ := Get(w, e1, hInt); got != 43 {
					t.Fatalf("expected 43, got %v", got)
				}
			},
		},
		{
			name: "query_intersection",
			run: func(t *testing.T) {
				if err := Add(w, e1, hStr, "a"); err != nil {
					t.Fatalf("add failed: %v", err)
				}
				if err := Add(w, e2, hStr, "b"); err != nil {
					t.Fatalf("add failed: %v", err)
				}
				got := w.Query(hInt.Kind(), hStr.Kind())
				if len(got) != 1 || got[0] != e1 {
					t.Fatalf("expected only e1, got %v", got)
				}
			},
		},
		{
			name: "first",
			run: func(t *testing.T) {
				e, v, ok := First(w, hStr)
				if !ok || e != e1 || v != "a" {
					t.Fatalf("expected e1/a, got %v/%v (ok=%v)", e, v, ok)
				}
			},
		},
		{
			name: "remove",
			run: func(t *testing.T) {
				if !Remove(w, e1, hInt) {
					t.Fatalf("remove should report true")
				}
				if Has(w, e1, hInt) {
					t.Fatalf("component should be gone")
				}
				if Remove(w, e1, hInt) {
					t.Fatalf("second remove should report false")
				}
			},
		},
		{
			name: "add_to_dead_entity",
			run: func(t *testing.T) {
				dead := w.CreateEntity()
				w.DestroyEntity(dead)
				err := Add(w, dead, hInt, 1)
				if !errors.Is(err, component.ErrEntityNotAlive) {
					t.Fatalf("expected ErrEntityNotAlive, got %v", err)
				}
			},
		},
		{
			name: "invalid_kind",
			run: func(t *testing.T) {
				var zero component.ComponentHandle[int]
				if err := Add(w, e1, zero, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
					t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachWritesBack(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	_ = Add(w, e1, h, 1)
	_ = Add(w, e3, h, 3)

	var seen []Entity
	ForEach(w, h, func(e Entity, v *int) {
		seen = append(seen, e)
		*v *= 10
	})

	if len(seen) != 2 {
		t.Fatalf("expected 2 visits, got %d", len(seen))
	}
	for _, e := range seen {
		if e == e2 {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	}
	if v, _ := Get(w, e1, h); v != 10 {
		t.Fatalf("expected 10, got %d", v)
	}
	if v, _ := Get(w, e3, h); v != 30 {
		t.Fatalf("expected 30, got %d", v)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	_ = Add(w, e1, h, 1)
	_ = Add(w, e2, h, 2)

	count := 0
	ForEach(w, h, func(e Entity, _ *int) {
		count++
		w.DestroyEntity(e1)
		w.DestroyEntity(e2)
	})
	if count != 1 {
		t.Fatalf("expected destroyed entities to be skipped, got %d visits", count)
	}
}

func TestEventQueueDrainKind(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventContact, Data: ContactEvent{Speed: 1}})
	q.Push(Event{Kind: EventLevelLoaded})
	q.Push(Event{Kind: EventContact, Data: ContactEvent{Speed: 2}})

	contacts := q.DrainKind(EventContact)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 remaining event, got %d", q.Len())
	}
	if rest := q.DrainKind(EventLevelLoaded); len(rest) != 1 {
		t.Fatalf("expected the level event to remain, got %d", len(rest))
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty, got %d", q.Len())
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	s.Add(recordSystem{"c", &log})
	s.Add(nil)
	if err := s.Update(NewWorld()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("unexpected order %v", log)
	}
	if s.Ticks() != 1 {
		t.Fatalf("expected 1 tick, got %d", s.Ticks())
	}
}

type failingSystem struct {
	recordSystem
	err error
}

func (f failingSystem) Err() error { return f.err }

func TestSchedulerStopsAtFailure(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	s := NewScheduler(
		recordSystem{"a", &log},
		failingSystem{recordSystem{"b", &log}, boom},
		recordSystem{"c", &log},
	)

	err := s.Update(NewWorld())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
	if len(log) != 2 || log[1] != "b" {
		t.Fatalf("expected systems after the failure to be skipped, got %v", log)
	}
}
