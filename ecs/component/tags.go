package component

type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type FloorTag struct{}

var FloorTagComponent = NewComponent[FloorTag]()

type SkyTag struct{}

var SkyTagComponent = NewComponent[SkyTag]()
