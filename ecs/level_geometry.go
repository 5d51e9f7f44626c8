package ecs

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/levels"
)

const boundaryFriction = 0.6

// PortalCues is notified when the avatar enters the portal.
type PortalCues interface {
	StopMusic()
	PlayPortal()
}

// LevelGeometry is the static boundary of one level inside a physics world.
type LevelGeometry struct {
	entity Entity
	layout *levels.Layout
	pw     *PhysicsWorld
	cues   PortalCues

	body   *cp.Body
	shapes []*cp.Shape

	portal   common.Rect
	consumed bool
}

// NewLevelGeometry adds the boundary of layout to pw as one static body with
// a segment per consecutive vertex pair.
func NewLevelGeometry(pw *PhysicsWorld, e Entity, layout *levels.Layout, cues PortalCues) *LevelGeometry {
	if pw == nil || layout == nil {
		return nil
	}

	edges := layout.Edges()
	cpEdges := make([][2]cp.Vector, 0, len(edges))
	for _, edge := range edges {
		cpEdges = append(cpEdges, [2]cp.Vector{
			{X: edge[0].X, Y: edge[0].Y},
			{X: edge[1].X, Y: edge[1].Y},
		})
	}

	lg := &LevelGeometry{
		entity: e,
		layout: layout,
		pw:     pw,
		cues:   cues,
	}
	lg.body, lg.shapes = pw.addBoundary(e, cpEdges, boundaryFriction)
	if layout.PortalActive {
		lg.portal = common.Rect{
			X:      layout.PortalOrigin.X,
			Y:      layout.PortalOrigin.Y,
			Width:  layout.PortalSize.X,
			Height: layout.PortalSize.Y,
		}
	}
	return lg
}

// Bounds returns the gravity limits of the level.
func (lg *LevelGeometry) Bounds() component.LevelBounds {
	if lg == nil || lg.layout == nil {
		return component.LevelBounds{}
	}
	return component.LevelBounds{
		Index:        lg.layout.Index,
		Name:         lg.layout.Name,
		MaxGravity:   lg.layout.MaxGravity,
		PortalActive: lg.layout.PortalActive && !lg.consumed,
	}
}

// Spawn returns the avatar spawn point in pixels.
func (lg *LevelGeometry) Spawn() (x, y float64) {
	if lg == nil || lg.layout == nil {
		return 0, 0
	}
	return lg.layout.Spawn.X, lg.layout.Spawn.Y
}

// Segments returns the boundary edges in pixels.
func (lg *LevelGeometry) Segments() [][2]levels.Point {
	if lg == nil {
		return nil
	}
	return lg.layout.Edges()
}

// Portal returns the portal rectangle in pixels and whether it is still
// open.
func (lg *LevelGeometry) Portal() (common.Rect, bool) {
	if lg == nil || lg.layout == nil || !lg.layout.PortalActive || lg.consumed {
		return common.Rect{}, false
	}
	return lg.portal, true
}

// IntersectsPortal reports whether rect overlaps the open portal. A hit
// stops the level music, plays the portal sound and removes the boundary
// from the physics world; afterwards the portal reports false.
func (lg *LevelGeometry) IntersectsPortal(rect common.Rect) bool {
	portal, open := lg.Portal()
	if !open || !portal.Intersects(rect) {
		return false
	}

	if lg.cues != nil {
		lg.cues.StopMusic()
		lg.cues.PlayPortal()
	}
	lg.Destroy()
	lg.consumed = true
	log.Printf("level %d: portal reached", lg.layout.Index)
	return true
}

// Destroy removes the boundary from the physics world. It is safe to call
// more than once.
func (lg *LevelGeometry) Destroy() {
	if lg == nil || lg.pw == nil || lg.body == nil {
		return
	}
	lg.pw.removeBoundary(lg.body, lg.shapes)
	lg.body = nil
	lg.shapes = nil
}

// Attached reports whether the boundary is still in the physics world.
func (lg *LevelGeometry) Attached() bool {
	return lg != nil && lg.body != nil
}
