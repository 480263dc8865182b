package entity

import (
	"fmt"

	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/prefabs"
)

// NewDroplet spawns the falling water droplet.
func NewDroplet(w *ecs.World, spec prefabs.DropletSpec) (ecs.Entity, error) {
	droplet := ecs.CreateEntity(w)
	if err := ecs.Add(w, droplet, component.NameComponent.Kind(), &component.Name{Value: "droplet"}); err != nil {
		return 0, fmt.Errorf("droplet: add name: %w", err)
	}

	transform := component.NewTransform(spec.Start.Vec3())
	if err := ecs.Add(w, droplet, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("droplet: add transform: %w", err)
	}

	if err := ecs.Add(w, droplet, component.MeshComponent.Kind(), &component.Mesh{
		Mesh:     AssetDroplet,
		Material: AssetDroplet,
		Layer:    component.LayerObjects,
	}); err != nil {
		return 0, fmt.Errorf("droplet: add mesh: %w", err)
	}

	if err := ecs.Add(w, droplet, component.DropletComponent.Kind(), &component.Droplet{
		State:       component.DropletFalling,
		Start:       spec.Start.Vec3(),
		SplashBelow: spec.SplashBelow,
		SplashScale: spec.SplashScale.Vec3(),
		Wobble:      spec.Wobble,
	}); err != nil {
		return 0, fmt.Errorf("droplet: add droplet: %w", err)
	}

	if err := ecs.Add(w, droplet, component.RigidBodyComponent.Kind(), &component.RigidBody{Type: component.BodyDynamic}); err != nil {
		return 0, fmt.Errorf("droplet: add rigid body: %w", err)
	}

	if err := ecs.Add(w, droplet, component.ColliderComponent.Kind(), &component.Collider{
		Shape:       component.ColliderBall,
		Radius:      spec.Radius,
		Restitution: spec.Restitution,
		Friction:    0.5,
	}); err != nil {
		return 0, fmt.Errorf("droplet: add collider: %w", err)
	}

	if err := ecs.Add(w, droplet, component.DampingComponent.Kind(), &component.Damping{
		Linear:  spec.LinearDamping,
		Angular: spec.AngularDamping,
	}); err != nil {
		return 0, fmt.Errorf("droplet: add damping: %w", err)
	}

	if err := ecs.Add(w, droplet, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("droplet: add velocity: %w", err)
	}

	if err := ecs.Add(w, droplet, component.CollisionEventsComponent.Kind(), &component.CollisionEvents{}); err != nil {
		return 0, fmt.Errorf("droplet: add collision events: %w", err)
	}

	if err := ecs.Add(w, droplet, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerDroplet,
	}); err != nil {
		return 0, fmt.Errorf("droplet: add collision layer: %w", err)
	}

	return droplet, nil
}
