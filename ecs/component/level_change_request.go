package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask
// the level system to build a different level. Reload rebuilds Target even
// when it is the current level.
type LevelChangeRequest struct {
	Target int
	Reload bool
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
