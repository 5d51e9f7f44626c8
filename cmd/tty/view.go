package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

// A terminal cell covers cellWidth by cellHeight world pixels.
const (
	cellWidth  = 10
	cellHeight = 20
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePortal = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleAvatar = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

// projection maps world pixels to cells around the camera focus, turned by
// the camera rotation like the window build.
type projection struct {
	cam  component.Camera
	cols int
	rows int
	sin  float64
	cos  float64
}

func newProjection(cam component.Camera, cols, rows int) projection {
	return projection{
		cam:  cam,
		cols: cols,
		rows: rows,
		sin:  math.Sin(cam.Rotation),
		cos:  math.Cos(cam.Rotation),
	}
}

func (p projection) cell(x, y float64) (int, int) {
	dx, dy := x-p.cam.FocusX, y-p.cam.FocusY
	rx := dx*p.cos - dy*p.sin
	ry := dx*p.sin + dy*p.cos
	col := int(math.Floor(rx/cellWidth)) + p.cols/2
	row := int(math.Floor(ry/cellHeight)) + p.rows/2
	return col, row
}

type view struct {
	frames int
}

func newView() *view {
	return &view{}
}

func (v *view) Draw(screen tcell.Screen, w *ecs.World) {
	v.frames++
	screen.Clear()
	cols, rows := screen.Size()

	cam := component.Camera{}
	if _, c, ok := ecs.First(w, component.CameraComponent); ok {
		cam = c
	}
	p := newProjection(cam, cols, rows-1)

	if lg := w.Level(); lg != nil {
		if portal, open := lg.Portal(); open {
			fillRect(screen, p, portal.X, portal.Y, portal.Width, portal.Height, '#', stylePortal)
		}
		for _, seg := range lg.Segments() {
			drawSegment(screen, p, seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, '+', styleWall)
		}
	}

	if e, ok := w.First(component.AvatarTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			col, row := p.cell(t.X, t.Y)
			screen.SetContent(col, row, '@', nil, styleAvatar)
		}
	}

	status := fmt.Sprintf(" frame %d", v.frames)
	over := false
	if _, flow, ok := ecs.First(w, component.GameFlowComponent); ok {
		status += fmt.Sprintf("  level %d  %s", flow.Level, flow.State)
		over = flow.State == component.FlowGameOver
	}
	if _, grav, ok := ecs.First(w, component.GravityComponent); ok {
		status += fmt.Sprintf("  gravity %.2f rad", grav.Angle)
	}
	drawString(screen, 0, rows-1, status, styleStatus)

	if _, banner, ok := ecs.First(w, component.BannerComponent); ok && banner.Text != "" {
		drawString(screen, (cols-len(banner.Text))/2, 0, banner.Text, styleStatus)
	}
	if over {
		msg := " Game Over! (space to continue, esc to exit) "
		drawString(screen, (cols-len(msg))/2, rows/2, msg, styleOver)
	}
	screen.Show()
}

// drawSegment plots a line by sampling it at half-cell steps.
func drawSegment(screen tcell.Screen, p projection, x0, y0, x1, y1 float64, r rune, style tcell.Style) {
	length := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(length/(cellWidth/2))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row := p.cell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		screen.SetContent(col, row, r, nil, style)
	}
}

func fillRect(screen tcell.Screen, p projection, x, y, width, height float64, r rune, style tcell.Style) {
	for dy := 0.0; dy <= height; dy += cellHeight / 2 {
		drawSegment(screen, p, x, y+dy, x+width, y+dy, r, style)
	}
	drawSegment(screen, p, x, y+height, x+width, y+height, r, style)
}

func drawString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}
