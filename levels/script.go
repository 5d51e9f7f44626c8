package levels

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunScript runs the layout's tengo script once. The script sees
// level_index, max_gravity (as a multiplier of pi), portal_active, spawn_x
// and spawn_y, and may reassign max_gravity and portal_active. Opening a
// portal the file never placed fails with ErrInvalidPortal.
func RunScript(layout *Layout) error {
	if layout == nil || layout.Script == "" {
		return nil
	}
	src, err := LoadScript(layout.Script)
	if err != nil {
		return fmt.Errorf("levels: read script %s: %w", layout.Script, err)
	}
	return runScript(layout, src)
}

func runScript(layout *Layout, src []byte) error {
	script := tengo.NewScript(src)
	_ = script.Add("level_index", layout.Index)
	_ = script.Add("max_gravity", layout.MaxGravity/math.Pi)
	_ = script.Add("portal_active", layout.PortalActive)
	_ = script.Add("spawn_x", layout.Spawn.X)
	_ = script.Add("spawn_y", layout.Spawn.Y)
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("levels: compile script %s: %w", layout.Script, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("levels: run script %s: %w", layout.Script, err)
	}

	active := compiled.Get("portal_active").Bool()
	if active && !layout.portalPlaced() {
		return fmt.Errorf("levels: script %s: %w", layout.Script, ErrInvalidPortal)
	}
	layout.MaxGravity = HalfRange(compiled.Get("max_gravity").Float())
	layout.PortalActive = active
	return nil
}
