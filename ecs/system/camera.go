package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
)

// OrbitCameraSystem turns drag and wheel input into a pan-orbit camera.
type OrbitCameraSystem struct{}

func NewOrbitCameraSystem() *OrbitCameraSystem { return &OrbitCameraSystem{} }

func (s *OrbitCameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	input := component.Input{}
	if e, ok := w.First(component.InputComponent.Kind()); ok {
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			input = *in
		}
	}

	ecs.ForEach(w, component.OrbitCameraComponent.Kind(), func(e ecs.Entity, cam *component.OrbitCamera) {
		ApplyOrbitInput(cam, input)
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			transform.Position = cam.Eye()
			transform.Rotation = mgl64.QuatLookAtV(transform.Position, cam.Focus, mgl64.Vec3{0, 1, 0})
		}
	})
}

// ApplyOrbitInput updates yaw, pitch, radius and focus from one frame of input.
func ApplyOrbitInput(cam *component.OrbitCamera, input component.Input) {
	if cam == nil {
		return
	}

	cam.Yaw -= input.OrbitDX * cam.OrbitSensitivity
	cam.Pitch += input.OrbitDY * cam.OrbitSensitivity
	cam.Pitch = clamp(cam.Pitch, cam.MinPitch, cam.MaxPitch)

	if input.Zoom != 0 {
		cam.Radius *= math.Pow(1-cam.ZoomSensitivity, input.Zoom)
	}
	cam.Radius = clamp(cam.Radius, cam.MinRadius, cam.MaxRadius)

	if input.PanDX != 0 || input.PanDY != 0 {
		right := mgl64.Vec3{math.Cos(cam.Yaw), 0, -math.Sin(cam.Yaw)}
		up := mgl64.Vec3{0, 1, 0}
		scale := cam.PanSensitivity * cam.Radius
		cam.Focus = cam.Focus.
			Add(right.Mul(-input.PanDX * scale)).
			Add(up.Mul(input.PanDY * scale))
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return v
	}
	return math.Max(lo, math.Min(hi, v))
}
