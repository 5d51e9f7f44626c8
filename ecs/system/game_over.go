package system

import (
	"log"

	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/gravity"
)

// ImpactSpeed is the avatar speed in units per second above which a contact
// ends the game.
const ImpactSpeed = 10.0

// GameOverSystem consumes contact events and the acknowledge input.
type GameOverSystem struct {
	impactSpeed float64
}

func NewGameOverSystem(impactSpeed float64) *GameOverSystem {
	if impactSpeed <= 0 {
		impactSpeed = ImpactSpeed
	}
	return &GameOverSystem{impactSpeed: impactSpeed}
}

func (gs *GameOverSystem) Update(w *ecs.World) {
	if gs == nil || w == nil {
		return
	}
	flowEnt, flow, ok := gameFlow(w)
	if !ok {
		return
	}
	avatarEnt, hasAvatar := avatar(w)

	contacts := w.Events().DrainKind(ecs.EventContact)
	if flow.State == component.FlowPlaying && hasAvatar {
		for _, evt := range contacts {
			contact, ok := evt.Data.(ecs.ContactEvent)
			if !ok || (contact.A != avatarEnt && contact.B != avatarEnt) {
				continue
			}
			if contact.Speed > gs.impactSpeed {
				flow.State = component.FlowGameOver
				flow.Impacts++
				log.Printf("game over: impact at %.2f units/s on level %d", contact.Speed, flow.Level)
				w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Data: contact})
				break
			}
		}
	}

	if flow.State == component.FlowGameOver && hasAvatar {
		if in, ok := ecs.Get(w, avatarEnt, component.InputComponent); ok && acknowledged(in) {
			flow.State = component.FlowPlaying
			log.Printf("game over acknowledged")
		}
	}

	mustAdd(w, flowEnt, component.GameFlowComponent, flow, "game over system: update flow")
}

func acknowledged(in component.Input) bool {
	return gravity.Pressed(in.Current, in.Previous, func(s gravity.InputState) bool { return s.Acknowledge })
}
