package component

// Audio holds per-clip flags consumed by the audio system. Slices are
// parallel and indexed by clip.
type Audio struct {
	Names  []string
	Volume []float64
	Play   []bool
	Stop   []bool
}

// Index returns the clip index for name or -1.
func (a Audio) Index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Request flags name to play on the next audio update.
func (a *Audio) Request(name string) bool {
	i := a.Index(name)
	if i < 0 || i >= len(a.Play) {
		return false
	}
	a.Play[i] = true
	return true
}

// Halt flags name to stop on the next audio update.
func (a *Audio) Halt(name string) bool {
	i := a.Index(name)
	if i < 0 || i >= len(a.Stop) {
		return false
	}
	a.Stop[i] = true
	return true
}

var AudioComponent = NewComponent[Audio]()
