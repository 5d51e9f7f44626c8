package ecs

import "fmt"

// Failer is implemented by systems that can hit a fatal error. The scheduler
// stops the tick at the first one.
type Failer interface {
	Err() error
}

// Scheduler runs systems in insertion order. The order is the tick order.
type Scheduler struct {
	systems []System
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one tick. Systems after a failing one are skipped for the
// tick and the error is returned.
func (s *Scheduler) Update(w *World) error {
	s.ticks++
	for _, system := range s.systems {
		system.Update(w)
		if f, ok := system.(Failer); ok {
			if err := f.Err(); err != nil {
				return fmt.Errorf("ecs: tick %d: %T: %w", s.ticks, system, err)
			}
		}
	}
	return nil
}

// Ticks returns the number of completed or attempted ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
