package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/prefabs"
)

// NewFloor spawns the checkerboard floor and its fixed collider.
func NewFloor(w *ecs.World, spec prefabs.FloorSpec) (ecs.Entity, error) {
	floor := ecs.CreateEntity(w)
	if err := ecs.Add(w, floor, component.FloorTagComponent.Kind(), &component.FloorTag{}); err != nil {
		return 0, fmt.Errorf("floor: add floor tag: %w", err)
	}

	transform := component.NewTransform(mgl64.Vec3{})
	if err := ecs.Add(w, floor, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("floor: add transform: %w", err)
	}

	if err := ecs.Add(w, floor, component.MeshComponent.Kind(), &component.Mesh{
		Mesh:     AssetFloor,
		Material: AssetFloor,
		Layer:    component.LayerFloor,
	}); err != nil {
		return 0, fmt.Errorf("floor: add mesh: %w", err)
	}

	if err := ecs.Add(w, floor, component.RigidBodyComponent.Kind(), &component.RigidBody{Type: component.BodyFixed}); err != nil {
		return 0, fmt.Errorf("floor: add rigid body: %w", err)
	}

	// Chipmunk multiplies elasticity and friction of both shapes, so the
	// floor uses 1 and the other body's values apply unchanged.
	if err := ecs.Add(w, floor, component.ColliderComponent.Kind(), &component.Collider{
		Shape:       component.ColliderCuboid,
		HalfExtents: spec.HalfExtents.Vec3(),
		Restitution: 1,
		Friction:    1,
	}); err != nil {
		return 0, fmt.Errorf("floor: add collider: %w", err)
	}

	if err := ecs.Add(w, floor, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerWorld,
	}); err != nil {
		return 0, fmt.Errorf("floor: add collision layer: %w", err)
	}

	return floor, nil
}

// NewSky spawns the unlit dome around the scene.
func NewSky(w *ecs.World) (ecs.Entity, error) {
	sky := ecs.CreateEntity(w)
	if err := ecs.Add(w, sky, component.SkyTagComponent.Kind(), &component.SkyTag{}); err != nil {
		return 0, fmt.Errorf("sky: add sky tag: %w", err)
	}

	transform := component.NewTransform(mgl64.Vec3{})
	if err := ecs.Add(w, sky, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("sky: add transform: %w", err)
	}

	if err := ecs.Add(w, sky, component.MeshComponent.Kind(), &component.Mesh{
		Mesh:     AssetSky,
		Material: AssetSky,
		Layer:    component.LayerSky,
	}); err != nil {
		return 0, fmt.Errorf("sky: add mesh: %w", err)
	}

	if err := ecs.Add(w, sky, component.NotShadowCasterComponent.Kind(), &component.NotShadowCaster{}); err != nil {
		return 0, fmt.Errorf("sky: add not shadow caster: %w", err)
	}

	return sky, nil
}
