package component

type FlowState int

const (
	FlowPlaying FlowState = iota
	FlowGameOver
)

func (s FlowState) String() string {
	switch s {
	case FlowPlaying:
		return "playing"
	case FlowGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameFlow is the level/game-over singleton.
type GameFlow struct {
	Level int
	State FlowState
	// Impacts counts transitions into game over since startup.
	Impacts int
}

var GameFlowComponent = NewComponent[GameFlow]()
