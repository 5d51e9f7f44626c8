package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/unstable/assets"
	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/prefabs"
	"golang.org/x/image/font/basicfont"
)

const (
	gameOverShade = 0.45
	shadeRate     = 0.15
)

type renderer struct {
	spec  prefabs.RenderSpec
	face  ebtext.Face
	shade float64
}

func newRenderer(spec prefabs.RenderSpec) *renderer {
	return &renderer{
		spec: spec,
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// cameraGeoM maps world pixels to the screen: the camera focus lands on the
// screen centre and the world turns by the camera rotation.
func cameraGeoM(cam component.Camera) ebiten.GeoM {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	var g ebiten.GeoM
	g.Translate(-cam.FocusX, -cam.FocusY)
	g.Rotate(cam.Rotation)
	g.Scale(zoom, zoom)
	g.Translate(common.BaseWidth/2, common.BaseHeight/2)
	return g
}

func worldCamera(w *ecs.World) component.Camera {
	if _, cam, ok := ecs.First(w, component.CameraComponent); ok {
		return cam
	}
	return component.Camera{Zoom: 1}
}

func (r *renderer) Draw(screen *ebiten.Image, w *ecs.World, gameOver bool) {
	screen.Fill(r.spec.Background)

	geo := cameraGeoM(worldCamera(w))
	r.drawLevel(screen, w, geo)
	r.drawSprites(screen, w, geo)

	target := 0.0
	if gameOver {
		target = gameOverShade
	}
	r.shade = common.Clamp(common.Lerp(r.shade, target, shadeRate), 0, 1)
	if r.shade > 0.01 {
		r.drawShade(screen)
	}

	r.drawHUD(screen, w)
	r.drawBanner(screen, w)
}

func (r *renderer) drawLevel(screen *ebiten.Image, w *ecs.World, geo ebiten.GeoM) {
	lg := w.Level()
	if lg == nil {
		return
	}

	if portal, open := lg.Portal(); open {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(portal.Width, portal.Height)
		op.GeoM.Translate(portal.X, portal.Y)
		op.GeoM.Concat(geo)
		op.ColorScale.ScaleWithColor(r.spec.Portal)
		screen.DrawImage(assets.Texture(assets.TexturePixel), op)
	}

	// The boundary stays visible after the portal detaches it from physics.
	for _, seg := range lg.Segments() {
		x0, y0 := geo.Apply(seg[0].X, seg[0].Y)
		x1, y1 := geo.Apply(seg[1].X, seg[1].Y)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), r.spec.BoundaryWidth, r.spec.Boundary, true)
	}
}

func (r *renderer) drawSprites(screen *ebiten.Image, w *ecs.World, geo ebiten.GeoM) {
	for _, e := range w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		img := assets.Texture(s.Texture)
		if img == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		bounds := img.Bounds()
		if s.Width > 0 && s.Height > 0 {
			op.GeoM.Scale(s.Width/float64(bounds.Dx()), s.Height/float64(bounds.Dy()))
		}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.GeoM.Concat(geo)
		screen.DrawImage(img, op)
	}
}

func (r *renderer) drawShade(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(common.BaseWidth, common.BaseHeight)
	op.ColorScale.ScaleWithColor(color.Black)
	op.ColorScale.ScaleAlpha(float32(r.shade))
	screen.DrawImage(assets.Texture(assets.TexturePixel), op)
}

// drawHUD draws the screen-locked gravity dial.
func (r *renderer) drawHUD(screen *ebiten.Image, w *ecs.World) {
	img := assets.Texture(assets.TextureGravityDial)
	ecs.ForEach(w, component.GravityIndicatorComponent, func(_ ecs.Entity, hud *component.GravityIndicator) {
		half := float64(assets.DialSize) / 2
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(-half, -half)
		op.GeoM.Rotate(hud.Rotation)
		op.GeoM.Scale(hud.Size/float64(assets.DialSize), hud.Size/float64(assets.DialSize))
		op.GeoM.Translate(hud.X, hud.Y)
		screen.DrawImage(img, op)
	})
}

// drawBanner centres the current banner near the top of the screen.
func (r *renderer) drawBanner(screen *ebiten.Image, w *ecs.World) {
	_, banner, ok := ecs.First(w, component.BannerComponent)
	if !ok || banner.Text == "" {
		return
	}
	width := float64(len(banner.Text) * basicfont.Face7x13.Advance)
	r.drawText(screen, banner.Text, (common.BaseWidth-width)/2, 40)
}

func (r *renderer) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(r.spec.Text)
	ebtext.Draw(screen, s, r.face, op)
}
