package component

// Camera rotates the world view to the gravity angle and keeps the avatar at
// the screen centre. Focus is in pixels.
type Camera struct {
	Rotation float64
	FocusX   float64
	FocusY   float64
	Zoom     float64
}

var CameraComponent = NewComponent[Camera]()
