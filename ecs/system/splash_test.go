package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/stretchr/testify/require"
)

func placeDroplet(t *testing.T, w *ecs.World, e ecs.Entity, y float64) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	tr.Position = mgl64.Vec3{0, y, 0}
	return tr
}

func TestSplashSpawnsParticlesOnFloorImpact(t *testing.T) {
	w, scene, spec := newTestScene(t)
	tr := placeDroplet(t, w, scene.Droplet, 0.51)

	sys := NewSplashSystem(nil, spec.Particles, testRand())
	w.AddSystem(sys)
	w.Events().PushCollision(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: scene.Droplet, B: scene.Floor})
	w.Update()

	d, _ := ecs.Get(w, scene.Droplet, component.DropletComponent.Kind())
	require.True(t, d.HasSplashed())
	require.Equal(t, mgl64.Vec3{2, 0.1, 2}, tr.Scale)

	require.Equal(t, 20, ecs.Count(w, component.SplashParticleComponent.Kind()))
	ecs.ForEach(w, component.SplashParticleComponent.Kind(), func(e ecs.Entity, _ *component.SplashParticle) {
		pt, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		require.True(t, ok)
		require.Equal(t, mgl64.Vec3{0, 0.51, 0}, pt.Position)

		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		require.True(t, ok)
		require.GreaterOrEqual(t, vel.Linear.X(), -2.0)
		require.Less(t, vel.Linear.X(), 2.0)
		require.GreaterOrEqual(t, vel.Linear.Y(), 2.0)
		require.Less(t, vel.Linear.Y(), 5.0)
		require.GreaterOrEqual(t, vel.Linear.Z(), -2.0)
		require.Less(t, vel.Linear.Z(), 2.0)
		require.Equal(t, mgl64.Vec3{}, vel.Angular)

		col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		require.True(t, ok)
		require.Equal(t, component.ColliderBall, col.Shape)
		require.Equal(t, 0.1, col.Radius)

		layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		require.True(t, ok)
		require.Equal(t, component.LayerWorld, layer.Mask)
	})
}

func TestSplashHappensOnce(t *testing.T) {
	w, scene, spec := newTestScene(t)
	placeDroplet(t, w, scene.Droplet, 0.5)

	w.AddSystem(NewSplashSystem(nil, spec.Particles, testRand()))

	hit := ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: scene.Floor, B: scene.Droplet}
	w.Events().PushCollision(hit)
	w.Events().PushCollision(hit)
	w.Update()
	require.Equal(t, 20, ecs.Count(w, component.SplashParticleComponent.Kind()))

	w.Events().PushCollision(hit)
	w.Update()
	require.Equal(t, 20, ecs.Count(w, component.SplashParticleComponent.Kind()))
}

func TestSplashIgnoresHighCollisions(t *testing.T) {
	w, scene, spec := newTestScene(t)
	tr := placeDroplet(t, w, scene.Droplet, 1.0)
	before := tr.Scale

	w.AddSystem(NewSplashSystem(nil, spec.Particles, testRand()))
	w.Events().PushCollision(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: scene.Droplet, B: scene.Floor})
	w.Update()

	d, _ := ecs.Get(w, scene.Droplet, component.DropletComponent.Kind())
	require.False(t, d.HasSplashed())
	require.Equal(t, before, tr.Scale)
	require.Zero(t, ecs.Count(w, component.SplashParticleComponent.Kind()))
}

func TestSplashIgnoresUnrelatedAndStoppedEvents(t *testing.T) {
	w, scene, spec := newTestScene(t)
	placeDroplet(t, w, scene.Droplet, 0.5)

	other := ecs.CreateEntity(w)
	w.AddSystem(NewSplashSystem(nil, spec.Particles, testRand()))
	w.Events().PushCollision(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: other, B: scene.Floor})
	w.Events().PushCollision(ecs.CollisionEvent{Kind: ecs.CollisionStopped, A: scene.Droplet, B: scene.Floor})
	w.Update()

	d, _ := ecs.Get(w, scene.Droplet, component.DropletComponent.Kind())
	require.False(t, d.HasSplashed())
	require.Zero(t, ecs.Count(w, component.SplashParticleComponent.Kind()))
}
