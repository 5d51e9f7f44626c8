package component

// Banner is a short message shown over the level. Ticks counts down to
// removal.
type Banner struct {
	Text  string
	Ticks int
}

var BannerComponent = NewComponent[Banner]()
