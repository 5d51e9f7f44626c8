package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficientVertices = errors.New("levels: layout needs a header and at least two boundary vertices")
	ErrInvalidPortal        = errors.New("levels: active portal needs an origin and a positive size")
)

// headerPoints is the number of leading points that describe the level rather
// than its boundary: spawn, portal size and the gravity/portal flags.
const headerPoints = 3

// Point is a position in pixels.
type Point struct {
	X float64
	Y float64
}

// File is the on-disk shape of a level.
type File struct {
	Name   string       `json:"name"`
	Points [][2]float64 `json:"points"`
	Portal *[2]float64  `json:"portal,omitempty"`
	Script string       `json:"script,omitempty"`
}

// Layout is a parsed level.
type Layout struct {
	Index int
	Name  string

	Spawn Point

	// MaxGravity is the half-width in radians of the allowed gravity zone
	// around straight down.
	MaxGravity float64

	PortalActive bool
	PortalOrigin Point
	PortalSize   Point
	// HasPortalOrigin is set when the file places a portal, open or not.
	HasPortalOrigin bool

	// Vertices is the boundary polyline. Consecutive pairs form edges.
	Vertices []Point

	Script string
}

// Parse decodes and validates a level file.
func Parse(index int, data []byte) (*Layout, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level %d: %w", index, err)
	}
	return FromFile(index, f)
}

// FromFile validates a decoded level file and converts it to a Layout.
func FromFile(index int, f File) (*Layout, error) {
	if len(f.Points) < headerPoints+2 {
		return nil, fmt.Errorf("levels: level %d has %d points: %w", index, len(f.Points), ErrInsufficientVertices)
	}

	flags := f.Points[2]
	layout := &Layout{
		Index:        index,
		Name:         f.Name,
		Spawn:        Point{X: f.Points[0][0], Y: f.Points[0][1]},
		PortalSize:   Point{X: f.Points[1][0], Y: f.Points[1][1]},
		MaxGravity:   HalfRange(flags[0]),
		PortalActive: flags[1] != 0,
		Script:       f.Script,
	}

	if f.Portal != nil {
		layout.PortalOrigin = Point{X: f.Portal[0], Y: f.Portal[1]}
		layout.HasPortalOrigin = true
	}
	if layout.PortalActive && !layout.portalPlaced() {
		return nil, fmt.Errorf("levels: level %d: %w", index, ErrInvalidPortal)
	}

	layout.Vertices = make([]Point, 0, len(f.Points)-headerPoints)
	for _, p := range f.Points[headerPoints:] {
		layout.Vertices = append(layout.Vertices, Point{X: p[0], Y: p[1]})
	}

	return layout, nil
}

// portalPlaced reports whether the portal has an origin and a positive size.
func (l *Layout) portalPlaced() bool {
	return l.HasPortalOrigin && l.PortalSize.X > 0 && l.PortalSize.Y > 0
}

// HalfRange converts a level's gravity multiplier into the half-width of the
// allowed zone. Multipliers are clamped to [0, 1] so the zone never exceeds a
// full turn.
func HalfRange(multiplier float64) float64 {
	if math.IsNaN(multiplier) || multiplier < 0 {
		multiplier = 0
	}
	if multiplier > 1 {
		multiplier = 1
	}
	return multiplier * math.Pi
}

// Edges returns the boundary as segment endpoint pairs.
func (l *Layout) Edges() [][2]Point {
	if l == nil || len(l.Vertices) < 2 {
		return nil
	}
	edges := make([][2]Point, 0, len(l.Vertices)-1)
	for i := 0; i < len(l.Vertices)-1; i++ {
		edges = append(edges, [2]Point{l.Vertices[i], l.Vertices[i+1]})
	}
	return edges
}

// LoadLayout loads, validates and scripts the level at index.
func LoadLayout(index int) (*Layout, error) {
	name := FileName(index)
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	layout, err := Parse(index, data)
	if err != nil {
		return nil, err
	}
	if layout.Script != "" {
		if err := RunScript(layout); err != nil {
			return nil, err
		}
	}
	return layout, nil
}
