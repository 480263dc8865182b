package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/common"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/ecs/render"
	"github.com/milk9111/splash/prefabs"
)

// NewSplashParticle spawns one particle at pos moving at vel.
func NewSplashParticle(w *ecs.World, assets *render.Assets, pos, vel mgl64.Vec3, spec prefabs.ParticleSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := BuildSplashParticle(w, e, assets, pos, vel, spec); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

// BuildSplashParticle adds the particle components to an existing entity.
// Particles only collide with the world layer.
func BuildSplashParticle(w *ecs.World, e ecs.Entity, assets *render.Assets, pos, vel mgl64.Vec3, spec prefabs.ParticleSpec) error {
	registerParticleAssets(assets, spec)

	if err := ecs.Add(w, e, component.SplashParticleComponent.Kind(), &component.SplashParticle{}); err != nil {
		return fmt.Errorf("splash particle: add tag: %w", err)
	}

	transform := component.NewTransform(pos)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
		return fmt.Errorf("splash particle: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{
		Mesh:     AssetParticle,
		Material: AssetParticle,
		Layer:    component.LayerObjects,
	}); err != nil {
		return fmt.Errorf("splash particle: add mesh: %w", err)
	}

	if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Type: component.BodyDynamic}); err != nil {
		return fmt.Errorf("splash particle: add rigid body: %w", err)
	}

	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Shape:       component.ColliderBall,
		Radius:      spec.Radius,
		Restitution: 0,
		Friction:    0.5,
	}); err != nil {
		return fmt.Errorf("splash particle: add collider: %w", err)
	}

	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Linear: vel}); err != nil {
		return fmt.Errorf("splash particle: add velocity: %w", err)
	}

	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerParticle,
		Mask:     component.LayerWorld,
	}); err != nil {
		return fmt.Errorf("splash particle: add collision layer: %w", err)
	}

	return nil
}

// RandomSplashVelocity samples each axis uniformly from [min, max).
func RandomSplashVelocity(rng *rand.Rand, spec prefabs.ParticleSpec) mgl64.Vec3 {
	lo, hi := spec.VelocityMin, spec.VelocityMax
	var v mgl64.Vec3
	for i := range v {
		v[i] = common.Lerp(lo[i], hi[i], rng.Float64())
	}
	return v
}
