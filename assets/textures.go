// Package assets generates the game's textures and sound players at
// startup. Nothing is read from disk.
package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	TextureStickman    = "stickman"
	TexturePixel       = "pixel"
	TextureGravityDial = "gravity_dial"

	StickmanWidth  = 25
	StickmanHeight = 50
	DialSize       = 64
)

var images = map[string]*ebiten.Image{}

var generators = map[string]func() *ebiten.Image{
	TextureStickman:    stickman,
	TexturePixel:       pixel,
	TextureGravityDial: gravityDial,
}

// Texture returns the named texture, generating it on first use. Unknown
// names return nil.
func Texture(name string) *ebiten.Image {
	if img, ok := images[name]; ok {
		return img
	}
	gen, ok := generators[name]
	if !ok {
		return nil
	}
	img := gen()
	images[name] = img
	return img
}

func pixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

// stickman fills the avatar's 25x50 box: head on top, feet on the bottom
// edge.
func stickman() *ebiten.Image {
	img := ebiten.NewImage(StickmanWidth, StickmanHeight)
	ink := color.Black
	const w = 2
	cx := float32(StickmanWidth) / 2

	vector.StrokeCircle(img, cx, 7, 6, w, ink, true)
	vector.StrokeLine(img, cx, 13, cx, 32, w, ink, true)
	vector.StrokeLine(img, cx, 18, 2, 27, w, ink, true)
	vector.StrokeLine(img, cx, 18, StickmanWidth-2, 27, w, ink, true)
	vector.StrokeLine(img, cx, 32, 3, StickmanHeight-1, w, ink, true)
	vector.StrokeLine(img, cx, 32, StickmanWidth-3, StickmanHeight-1, w, ink, true)
	return img
}

// gravityDial is a ring with a needle pointing straight down. The HUD keeps
// it upright, and the world rotates so gravity always points the same way.
func gravityDial() *ebiten.Image {
	img := ebiten.NewImage(DialSize, DialSize)
	c := float32(DialSize) / 2
	r := c - 3

	vector.FillCircle(img, c, c, r, color.NRGBA{A: 96}, true)
	vector.StrokeCircle(img, c, c, r, 2, color.White, true)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		sx, sy := float32(math.Sin(a)), float32(math.Cos(a))
		vector.StrokeLine(img, c+sx*(r-6), c+sy*(r-6), c+sx*r, c+sy*r, 1, color.White, true)
	}
	needle := color.NRGBA{R: 255, G: 200, B: 40, A: 255}
	vector.StrokeLine(img, c, c, c, c+r-4, 3, needle, true)
	vector.StrokeLine(img, c, c+r-4, c-5, c+r-12, 2, needle, true)
	vector.StrokeLine(img, c, c+r-4, c+5, c+r-12, 2, needle, true)
	vector.FillCircle(img, c, c, 3, needle, true)
	return img
}
