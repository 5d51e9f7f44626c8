package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PhysicsSpec tunes the simulation.
type PhysicsSpec struct {
	TPS         int     `yaml:"tps"`
	Iterations  int     `yaml:"iterations"`
	Gravity     float64 `yaml:"gravity"`
	ImpactSpeed float64 `yaml:"impact_speed"`
}

func LoadPhysicsSpec() (PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec]("physics.yaml")
	if err != nil {
		return PhysicsSpec{}, err
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	if spec.Iterations <= 0 {
		spec.Iterations = 20
	}
	if spec.Gravity == 0 {
		spec.Gravity = 9.8
	}
	if spec.ImpactSpeed <= 0 {
		spec.ImpactSpeed = 10
	}
	return spec, nil
}

// RenderSpec holds the colours and line widths used to draw a level.
type RenderSpec struct {
	Background    *YAMLColor `yaml:"background"`
	Boundary      *YAMLColor `yaml:"boundary"`
	BoundaryWidth float32    `yaml:"boundary_width"`
	Portal        *YAMLColor `yaml:"portal"`
	Text          *YAMLColor `yaml:"text"`
}

func LoadRenderSpec() (RenderSpec, error) {
	spec, err := LoadSpec[RenderSpec]("render.yaml")
	if err != nil {
		return RenderSpec{}, err
	}
	if spec.BoundaryWidth <= 0 {
		spec.BoundaryWidth = 2
	}
	if spec.Background == nil {
		spec.Background = &YAMLColor{Color: color.Gray{Y: 128}}
	}
	if spec.Boundary == nil {
		spec.Boundary = &YAMLColor{Color: color.Black}
	}
	if spec.Portal == nil {
		spec.Portal = &YAMLColor{Color: color.NRGBA{R: 90, G: 40, B: 160, A: 255}}
	}
	if spec.Text == nil {
		spec.Text = &YAMLColor{Color: color.White}
	}
	return spec, nil
}

// YAMLColor reads "#rgb", "#rrggbb", "#rrggbbaa" or an SVG colour name
// such as "slategray".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := parseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func parseColor(v string) (color.Color, error) {
	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	s := strings.TrimPrefix(v, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", v)
	}
	if len(s) == 6 {
		s += "ff"
	}

	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %s: %w", v, err)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
