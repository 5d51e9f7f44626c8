package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"golang.design/x/clipboard"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawPhysicsDebug outlines every shape in space through the camera.
func DrawPhysicsDebug(space *cp.Space, geo ebiten.GeoM, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, geo: geo})
}

// debugStatus describes the avatar, gravity and flow state for the debug
// overlay.
func debugStatus(w *ecs.World, frames int) string {
	s := fmt.Sprintf("Frames: %d    FPS: %.2f", frames, ebiten.ActualFPS())
	if _, flow, ok := ecs.First(w, component.GameFlowComponent); ok {
		s += fmt.Sprintf("\nLevel: %d    State: %s    Impacts: %d", flow.Level, flow.State, flow.Impacts)
	}
	if _, bounds, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		s += fmt.Sprintf("\nName: %q    Max: %.3f    Portal: %v", bounds.Name, bounds.MaxGravity, bounds.PortalActive)
	}
	if _, grav, ok := ecs.First(w, component.GravityComponent); ok {
		s += fmt.Sprintf("\nGravity: %.3f rad (%.2f, %.2f)", grav.Angle, grav.X, grav.Y)
	}
	if e, ok := w.First(component.AvatarTagComponent.Kind()); ok {
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && body.Body != nil {
			pos := body.Body.Position()
			s += fmt.Sprintf("\nAvatar: (%.0f, %.0f)    Speed: %.2f    Rotation: %.3f",
				pos.X, pos.Y, ecs.LinearSpeed(body.Body), body.Body.Angle())
		}
	}
	return s
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyAvatarPoint puts the avatar position on the clipboard in level file
// point syntax, for authoring spawn and portal positions.
func copyAvatarPoint(w *ecs.World) {
	e, ok := w.First(component.AvatarTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}

	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		log.Printf("debug: clipboard unavailable: %v", clipboardErr)
		return
	}
	point := fmt.Sprintf("[%.0f, %.0f]", t.X, t.Y)
	clipboard.Write(clipboard.FmtText, []byte(point))
	log.Printf("debug: copied avatar point %s", point)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	geo    ebiten.GeoM
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.geo.Apply(a.X, a.Y)
	x2, y2 := d.geo.Apply(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(common.Clamp(float64(v), 0, 1) * 255)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
