package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/prefabs"
)

// NewCamera spawns the orbit camera. It also carries the Input component the
// input system writes each frame.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	orbit := component.NewOrbitCameraAt(spec.Eye.Vec3(), spec.Focus.Vec3())
	if spec.FOVDegrees > 0 {
		orbit.FOV = mgl64.DegToRad(spec.FOVDegrees)
	}

	transform := component.NewTransform(spec.Eye.Vec3())
	transform.Rotation = mgl64.QuatLookAtV(transform.Position, orbit.Focus, mgl64.Vec3{0, 1, 0})
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.OrbitCameraComponent.Kind(), &orbit); err != nil {
		return 0, fmt.Errorf("camera: add orbit camera: %w", err)
	}

	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}

	return camera, nil
}
