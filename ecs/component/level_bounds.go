package component

// LevelBounds stores the gravity limits and portal state of the current
// level.
type LevelBounds struct {
	Index        int
	Name         string
	MaxGravity   float64
	PortalActive bool
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
