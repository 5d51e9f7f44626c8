package common

const (
	BaseWidth  = 800
	BaseHeight = 480
)

// Level data is authored in pixels; the physics world runs in simulation
// units of 100 pixels.
const (
	UnitToPixel = 100.0
	PixelToUnit = 1 / UnitToPixel
)
