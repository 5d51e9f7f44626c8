package component

import "github.com/milk9111/unstable/gravity"

// Gravity is the world gravity singleton. Angle 0 points straight down the
// screen.
type Gravity struct {
	gravity.State
}

var GravityComponent = NewComponent[Gravity]()
