package system

import (
	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

// PortalSystem checks the avatar against the level portal and requests the
// next level on contact.
type PortalSystem struct{}

func NewPortalSystem() *PortalSystem {
	return &PortalSystem{}
}

func (ps *PortalSystem) Update(w *ecs.World) {
	if w == nil || gameOver(w) {
		return
	}
	lg := w.Level()
	if lg == nil {
		return
	}
	avatarEnt, ok := avatar(w)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, avatarEnt, component.TransformComponent)
	if !ok {
		return
	}
	sprite, _ := ecs.Get(w, avatarEnt, component.SpriteComponent)

	if !lg.IntersectsPortal(AvatarRect(t, sprite)) {
		return
	}

	flowEnt, flow, ok := gameFlow(w)
	if !ok {
		return
	}
	mustAdd(w, flowEnt, component.LevelChangeRequestComponent, component.LevelChangeRequest{
		Target: flow.Level + 1,
	}, "portal system: request level change")
}

// AvatarRect is the rectangle tested against the portal: anchored at the
// avatar position and half the texture size.
func AvatarRect(t component.Transform, sprite component.Sprite) common.Rect {
	return common.Rect{
		X:      t.X,
		Y:      t.Y,
		Width:  sprite.Width / 2,
		Height: sprite.Height / 2,
	}
}
