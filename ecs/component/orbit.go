package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitPosition is (r*cos t, h, r*sin t).
func OrbitPosition(radius, height, t float64) mgl64.Vec3 {
	return mgl64.Vec3{radius * math.Cos(t), height, radius * math.Sin(t)}
}
