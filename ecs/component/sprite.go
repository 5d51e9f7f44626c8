package component

// Sprite names a texture generated by the assets package. Width and Height
// are the texture size in pixels.
type Sprite struct {
	Texture string
	Width   float64
	Height  float64
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
