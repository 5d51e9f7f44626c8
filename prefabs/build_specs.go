package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Texture            string  `yaml:"texture"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
}

type PhysicsBodyComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type GravityIndicatorComponentSpec struct {
	Size   float64 `yaml:"size"`
	Margin float64 `yaml:"margin"`
}

type GravityComponentSpec struct {
	Magnitude float64 `yaml:"magnitude"`
}

type GameFlowComponentSpec struct {
	Level int `yaml:"level"`
}

// AudioClipSpec describes a synthesised clip. Kind selects the voice
// ("chime" or "drone"); Notes are frequencies in Hz.
type AudioClipSpec struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Notes  []float64 `yaml:"notes"`
	NoteMS int       `yaml:"note_ms"`
	Volume float64   `yaml:"volume"`
	Loop   bool      `yaml:"loop"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}
