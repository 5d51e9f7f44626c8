package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/unstable/common"
	"github.com/milk9111/unstable/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	level := flag.Int("level", 0, "index of the first level")
	watch := flag.Bool("watch", false, "reload prefabs and levels from disk when they change")
	tps := flag.Int("tps", 0, "ticks per second (0 uses physics.yaml)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for edited prefab specs (empty uses the embedded ones)")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("unstable")

	game, err := NewGame(options{
		Level: *level,
		Debug: *debug,
		Watch: *watch,
		TPS:   *tps,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
