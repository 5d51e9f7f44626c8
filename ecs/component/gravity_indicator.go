package component

// GravityIndicator is the screen-locked HUD dial. X and Y are screen pixels.
type GravityIndicator struct {
	X        float64
	Y        float64
	Size     float64
	Rotation float64
}

var GravityIndicatorComponent = NewComponent[GravityIndicator]()
