package gravity

// State is the world gravity: the angle in [0, 2π) and the vector derived
// from it the last time the controller was allowed to push one.
type State struct {
	Angle float64
	X     float64
	Y     float64
}

// Default is straight down at the given magnitude.
func Default(g float64) State {
	return State{Angle: 0, X: 0, Y: g}
}

// Controller applies rotation rules to the gravity angle and saturates it
// against a level's allowed range.
type Controller struct {
	Rules     []Rule
	Magnitude float64
}

func NewController(g float64) *Controller {
	if g <= 0 {
		g = Magnitude
	}
	return &Controller{Rules: DefaultRules(), Magnitude: g}
}

// Update advances the gravity state by one tick. The returned bool is true
// when the angle was inside the allowed zone before adjustment; only then is
// the vector recomputed and must be pushed to the physics world. Otherwise
// the vector stays frozen at its last in-zone value. The third argument is
// the tick length, unused since rule deltas are per tick.
func (c *Controller) Update(cur, prev InputState, _, halfRange float64, st State) (State, bool) {
	gated := InAllowedZone(st.Angle, halfRange)
	angle := st.Angle
	if gated {
		for _, r := range c.Rules {
			if r.Delta == nil {
				continue
			}
			angle += r.Delta(cur, prev)
		}
	}
	angle = Clamp(Normalize(angle), halfRange)

	next := State{Angle: angle, X: st.X, Y: st.Y}
	if gated {
		next.X, next.Y = Vector(angle, c.Magnitude)
	}
	return next, gated
}
