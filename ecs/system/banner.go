package system

import (
	"fmt"

	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

// BannerSystem turns level-loaded and game-over events into a timed Banner
// on the game flow entity. It runs last so every event raised during the
// tick is consumed within it.
type BannerSystem struct {
	duration int
}

func NewBannerSystem(duration int) *BannerSystem {
	if duration <= 0 {
		duration = 1
	}
	return &BannerSystem{duration: duration}
}

func (bs *BannerSystem) Update(w *ecs.World) {
	if bs == nil || w == nil {
		return
	}
	loaded := w.Events().DrainKind(ecs.EventLevelLoaded)
	overs := w.Events().DrainKind(ecs.EventGameOver)

	flowEnt, _, ok := gameFlow(w)
	if !ok {
		return
	}

	text := ""
	if n := len(loaded); n > 0 {
		if evt, ok := loaded[n-1].Data.(ecs.LevelLoadedEvent); ok {
			text = fmt.Sprintf("Level %d: %s", evt.Index+1, evt.Name)
		}
	}
	if n := len(overs); n > 0 {
		if contact, ok := overs[n-1].Data.(ecs.ContactEvent); ok {
			text = fmt.Sprintf("Impact at %.1f", contact.Speed)
		}
	}
	if text != "" {
		mustAdd(w, flowEnt, component.BannerComponent, component.Banner{Text: text, Ticks: bs.duration}, "banner system: set banner")
		return
	}

	banner, ok := ecs.Get(w, flowEnt, component.BannerComponent)
	if !ok {
		return
	}
	banner.Ticks--
	if banner.Ticks <= 0 {
		ecs.Remove(w, flowEnt, component.BannerComponent)
		return
	}
	mustAdd(w, flowEnt, component.BannerComponent, banner, "banner system: count down")
}
