package component

type AvatarTag struct{}

var AvatarTagComponent = NewComponent[AvatarTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
