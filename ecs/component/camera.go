package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitCamera orbits Focus at Radius. Yaw is measured around +Y from +Z and
// Pitch is the elevation above the floor plane.
type OrbitCamera struct {
	Focus  mgl64.Vec3
	Yaw    float64
	Pitch  float64
	Radius float64

	FOV  float64
	Near float64
	Far  float64

	OrbitSensitivity float64
	PanSensitivity   float64
	ZoomSensitivity  float64
	MinPitch         float64
	MaxPitch         float64
	MinRadius        float64
	MaxRadius        float64
}

// NewOrbitCameraAt derives yaw, pitch and radius so the camera sits at eye
// looking at focus.
func NewOrbitCameraAt(eye, focus mgl64.Vec3) OrbitCamera {
	offset := eye.Sub(focus)
	radius := offset.Len()
	cam := OrbitCamera{
		Focus:            focus,
		Radius:           radius,
		FOV:              mgl64.DegToRad(45),
		Near:             0.1,
		Far:              1000,
		OrbitSensitivity: 0.005,
		PanSensitivity:   0.002,
		ZoomSensitivity:  0.2,
		MinPitch:         0.05,
		MaxPitch:         1.5,
		MinRadius:        1,
		MaxRadius:        40,
	}
	if radius > 0 {
		cam.Yaw = math.Atan2(offset.X(), offset.Z())
		cam.Pitch = math.Asin(offset.Y() / radius)
	}
	return cam
}

// Eye returns the camera position in world space.
func (c OrbitCamera) Eye() mgl64.Vec3 {
	cosP := math.Cos(c.Pitch)
	return c.Focus.Add(mgl64.Vec3{
		c.Radius * cosP * math.Sin(c.Yaw),
		c.Radius * math.Sin(c.Pitch),
		c.Radius * cosP * math.Cos(c.Yaw),
	})
}

var OrbitCameraComponent = NewComponent[OrbitCamera]()
