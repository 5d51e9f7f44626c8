package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/unstable/assets"
	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/ecs/entity"
	"github.com/milk9111/unstable/ecs/system"
	"github.com/milk9111/unstable/prefabs"
)

type options struct {
	Level int
	Debug bool
	Watch bool
	TPS   int
}

type Game struct {
	frames int
	debug  bool

	world    *ecs.World
	scene    entity.Scene
	pipeline *system.Pipeline
	input    *deviceInput
	renderer *renderer
	gameOver *ebitenui.UI
	watcher  *prefabs.Watcher
}

func NewGame(opts options) (*Game, error) {
	physSpec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if opts.TPS > 0 {
		physSpec.TPS = opts.TPS
	}
	renderSpec, err := prefabs.LoadRenderSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	ebiten.SetTPS(physSpec.TPS)

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(ecs.PhysicsConfig{
		Iterations: physSpec.Iterations,
		GravityY:   physSpec.Gravity,
	}))

	scene, err := entity.NewScene(w)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	players, err := loadPlayers()
	if err != nil {
		// The game runs silently without audio.
		log.Printf("game: audio disabled: %v", err)
	}

	input := &deviceInput{}
	pipeline := system.NewPipeline(system.Config{
		Input:       input,
		Players:     players,
		TPS:         physSpec.TPS,
		Magnitude:   physSpec.Gravity,
		ImpactSpeed: physSpec.ImpactSpeed,
	})
	if err := pipeline.Level.Load(w, opts.Level); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		debug:    opts.Debug,
		world:    w,
		scene:    scene,
		pipeline: pipeline,
		input:    input,
		renderer: newRenderer(renderSpec),
		gameOver: NewGameOverUI(input.Acknowledge),
	}

	if opts.Watch {
		dirs := []string{"levels", filepath.Join("levels", "scripts")}
		if prefabs.Dir != "" {
			dirs = append(dirs, prefabs.Dir)
		}
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("game: watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func loadPlayers() (map[string]system.SoundPlayer, error) {
	spec, err := prefabs.LoadEntityBuildSpec("game.yaml")
	if err != nil {
		return nil, err
	}
	audioSpec, err := prefabs.DecodeComponentSpec[prefabs.AudioComponentSpec](spec.Components["audio"])
	if err != nil {
		return nil, err
	}
	players, err := assets.LoadClipPlayers(audioSpec.Clips)
	if err != nil {
		return nil, err
	}
	out := make(map[string]system.SoundPlayer, len(players))
	for name, p := range players {
		out[name] = p
	}
	return out, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) isGameOver() bool {
	_, flow, ok := ecs.First(g.world, component.GameFlowComponent)
	return ok && flow.State == component.FlowGameOver
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()

	if g.isGameOver() {
		g.gameOver.Update()
	}

	if err := g.pipeline.Update(g.world); err != nil {
		return err
	}

	if in, ok := ecs.Get(g.world, g.scene.Avatar, component.InputComponent); ok && in.Current.Quit {
		return ebiten.Termination
	}

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		copyAvatarPoint(g.world)
	}
	return nil
}

// pollWatcher applies pending file changes. Level edits rebuild the current
// level; render spec edits take effect immediately.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch {
	case change.AffectsLevel():
		flowEnt, flow, ok := ecs.First(g.world, component.GameFlowComponent)
		if !ok {
			return
		}
		if err := ecs.Add(g.world, flowEnt, component.LevelChangeRequestComponent, component.LevelChangeRequest{Target: flow.Level, Reload: true}); err != nil {
			log.Printf("watch: reload level: %v", err)
			return
		}
		log.Printf("watch: %s %s changed, reloading level %d", change.Kind, change.Name(), flow.Level)
	case change.Name() == "render.yaml":
		spec, err := prefabs.LoadRenderSpec()
		if err != nil {
			log.Printf("watch: %v", err)
			return
		}
		g.renderer.spec = spec
		log.Printf("watch: render spec reloaded")
	default:
		log.Printf("watch: %s changed; restart to apply", change.Name())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	over := g.isGameOver()
	g.renderer.Draw(screen, g.world, over)

	if g.debug {
		DrawPhysicsDebug(g.world.PhysicsWorld().Space(), cameraGeoM(worldCamera(g.world)), screen)
		g.renderer.drawText(screen, debugStatus(g.world, g.frames), 10, 10)
	}

	if over {
		g.gameOver.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
