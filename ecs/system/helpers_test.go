package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

func cpVec(x, y float64) cp.Vector { return cp.Vector{X: x, Y: y} }

func levelBounds(w *ecs.World) (component.LevelBounds, ecs.Entity, bool) {
	e, b, ok := ecs.First(w, component.LevelBoundsComponent)
	return b, e, ok
}
