package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/prefabs"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// EulerXYZ composes rotations about X, then Y, then Z.
func EulerXYZ(v mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatRotate(v.X(), mgl64.Vec3{1, 0, 0}).
		Mul(mgl64.QuatRotate(v.Y(), mgl64.Vec3{0, 1, 0})).
		Mul(mgl64.QuatRotate(v.Z(), mgl64.Vec3{0, 0, 1}))
}

func NewSun(w *ecs.World, spec prefabs.SunSpec) (ecs.Entity, error) {
	sun := ecs.CreateEntity(w)

	transform := component.NewTransform(mgl64.Vec3{})
	transform.Rotation = EulerXYZ(spec.Euler.Vec3())
	if err := ecs.Add(w, sun, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("sun: add transform: %w", err)
	}

	if err := ecs.Add(w, sun, component.DirectionalLightComponent.Kind(), &component.DirectionalLight{
		Color:       white,
		Illuminance: spec.Illuminance,
		Shadows:     spec.Shadows,
	}); err != nil {
		return 0, fmt.Errorf("sun: add directional light: %w", err)
	}

	return sun, nil
}

func NewAmbientLight(w *ecs.World, spec prefabs.AmbientSpec) (ecs.Entity, error) {
	c, err := prefabs.ParseHexColor(spec.Color)
	if err != nil {
		return 0, fmt.Errorf("ambient: %w", err)
	}

	ambient := ecs.CreateEntity(w)
	if err := ecs.Add(w, ambient, component.AmbientLightComponent.Kind(), &component.AmbientLight{
		Color:      c,
		Brightness: spec.Brightness,
	}); err != nil {
		return 0, fmt.Errorf("ambient: add ambient light: %w", err)
	}

	return ambient, nil
}

// NewRotatingLight spawns the point light that circles above the floor.
func NewRotatingLight(w *ecs.World, spec prefabs.RotatingLightSpec) (ecs.Entity, error) {
	rotate := component.RotateLight{Radius: spec.Radius, Height: spec.Height, Script: spec.Script}

	light := ecs.CreateEntity(w)
	transform := component.NewTransform(rotate.OrbitPosition(0))
	if err := ecs.Add(w, light, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("rotating light: add transform: %w", err)
	}

	if err := ecs.Add(w, light, component.PointLightComponent.Kind(), &component.PointLight{
		Color:     white,
		Intensity: spec.Intensity,
		Range:     spec.Range,
	}); err != nil {
		return 0, fmt.Errorf("rotating light: add point light: %w", err)
	}

	if err := ecs.Add(w, light, component.RotateLightComponent.Kind(), &rotate); err != nil {
		return 0, fmt.Errorf("rotating light: add rotate light: %w", err)
	}

	return light, nil
}
