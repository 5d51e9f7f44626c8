// Command tty runs the game in a terminal. It drives the same systems as the
// window build and draws the level with characters. There is no sound.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
	"github.com/milk9111/unstable/ecs/entity"
	"github.com/milk9111/unstable/ecs/system"
	"github.com/milk9111/unstable/prefabs"
)

func main() {
	level := flag.Int("level", 0, "index of the first level")
	tps := flag.Int("tps", 0, "ticks per second (0 uses physics.yaml)")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// The terminal belongs to the screen.
		log.SetOutput(io.Discard)
	}

	if err := run(*level, *tps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(level, tps int) error {
	physSpec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return err
	}
	if tps > 0 {
		physSpec.TPS = tps
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(ecs.PhysicsConfig{
		Iterations: physSpec.Iterations,
		GravityY:   physSpec.Gravity,
	}))
	scene, err := entity.NewScene(w)
	if err != nil {
		return err
	}

	input := newKeyInput(physSpec.TPS / 6)
	pipeline := system.NewPipeline(system.Config{
		Input:       input,
		TPS:         physSpec.TPS,
		Magnitude:   physSpec.Gravity,
		ImpactSpeed: physSpec.ImpactSpeed,
	})
	if err := pipeline.Level.Load(w, level); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(physSpec.TPS))
	defer ticker.Stop()

	v := newView()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input.Handle(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := pipeline.Update(w); err != nil {
				return err
			}
			if in, ok := ecs.Get(w, scene.Avatar, component.InputComponent); ok && in.Current.Quit {
				return nil
			}
			v.Draw(screen, w)
		}
	}
}
