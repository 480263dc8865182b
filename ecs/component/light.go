package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionalLight shines along the owning transform's forward axis.
type DirectionalLight struct {
	Color       color.NRGBA
	Illuminance float64
	Shadows     bool
}

var DirectionalLightComponent = NewComponent[DirectionalLight]()

// AmbientLight is a uniform fill term.
type AmbientLight struct {
	Color      color.NRGBA
	Brightness float64
}

var AmbientLightComponent = NewComponent[AmbientLight]()

// PointLight lights surfaces within Range of the owning transform.
type PointLight struct {
	Color     color.NRGBA
	Intensity float64
	Range     float64
}

var PointLightComponent = NewComponent[PointLight]()

// RotateLight moves its entity along a circular orbit. A non-empty Script
// replaces the built-in path with a tengo program that assigns x, y and z
// from t.
type RotateLight struct {
	Radius float64
	Height float64
	Script string
}

// OrbitPosition is the built-in light path at time t.
func (r RotateLight) OrbitPosition(t float64) mgl64.Vec3 {
	return OrbitPosition(r.Radius, r.Height, t)
}

var RotateLightComponent = NewComponent[RotateLight]()
