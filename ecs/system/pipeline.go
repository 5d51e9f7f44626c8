package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/gravity"
)

// Config wires the per-tick systems.
type Config struct {
	Input       InputSource
	Players     map[string]SoundPlayer
	TPS         int
	Magnitude   float64
	ImpactSpeed float64
	Loader      LayoutLoader
	Count       func() int
}

// Pipeline runs one simulation tick: input, gravity, physics step,
// game-over check, orientation, camera and HUD, portal, level transition,
// audio and finally the banner, which consumes the tick's remaining events.
type Pipeline struct {
	*ecs.Scheduler
	Level *LevelSystem
}

func NewPipeline(cfg Config) *Pipeline {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Magnitude == 0 {
		cfg.Magnitude = gravity.Magnitude
	}
	dt := 1 / float64(cfg.TPS)

	level := NewLevelSystem(cfg.Loader, cfg.Count, cfg.Magnitude)
	return &Pipeline{
		Scheduler: ecs.NewScheduler(
			NewInputSystem(cfg.Input),
			NewGravitySystem(cfg.Magnitude, dt),
			NewPhysicsSystem(dt),
			NewGameOverSystem(cfg.ImpactSpeed),
			NewOrientationSystem(),
			NewCameraSystem(),
			NewPortalSystem(),
			level,
			NewAudioSystem(cfg.Players),
			NewBannerSystem(2*cfg.TPS),
		),
		Level: level,
	}
}
