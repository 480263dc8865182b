package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/stretchr/testify/require"
)

func newPhysicsScene(t *testing.T) (*ecs.World, *ecs.Entity, *fakeInput, *PhysicsSystem) {
	t.Helper()
	w, scene, spec := newTestScene(t)
	input := newFakeInput()
	physics := NewPhysicsSystem(spec.Physics.Timestep, spec.Physics.Gravity, spec.Physics.Iterations)

	w.AddSystem(NewInputSystemWithSource(input, ebiten.KeyR))
	w.AddSystem(NewOrbitCameraSystem())
	w.AddSystem(physics)
	w.AddSystem(NewLightOrbitSystem())
	w.AddSystem(NewDropletWobbleSystem())
	w.AddSystem(NewResetSystem())
	w.AddSystem(NewSplashSystem(nil, spec.Particles, testRand()))

	droplet := scene.Droplet
	return w, &droplet, input, physics
}

func step(w *ecs.World, input *fakeInput) {
	input.tick()
	w.Clock().Advance(frame)
	w.Update()
}

func TestPhysicsDropletFallsUnderGravity(t *testing.T) {
	w, droplet, input, _ := newPhysicsScene(t)
	tr, _ := ecs.Get(w, *droplet, component.TransformComponent.Kind())

	// Chipmunk moves bodies before it applies gravity, so the first step
	// only picks up speed.
	step(w, input)
	require.InDelta(t, 5.0, tr.Position.Y(), 1e-9)

	prev := tr.Position.Y()
	for i := 0; i < 10; i++ {
		step(w, input)
		require.Less(t, tr.Position.Y(), prev)
		prev = tr.Position.Y()
	}

	vel, _ := ecs.Get(w, *droplet, component.VelocityComponent.Kind())
	require.Less(t, vel.Linear.Y(), 0.0)
	require.InDelta(t, 0.0, tr.Position.X(), 1e-9)
	require.InDelta(t, 0.0, tr.Position.Z(), 1e-9)
}

func TestPhysicsDropSplashReset(t *testing.T) {
	w, droplet, input, physics := newPhysicsScene(t)
	d, _ := ecs.Get(w, *droplet, component.DropletComponent.Kind())
	tr, _ := ecs.Get(w, *droplet, component.TransformComponent.Kind())

	splashedAt := -1
	for i := 0; i < 300 && splashedAt < 0; i++ {
		step(w, input)
		if d.HasSplashed() {
			splashedAt = i
		}
	}
	require.GreaterOrEqual(t, splashedAt, 0, "droplet never splashed")
	require.Less(t, tr.Position.Y(), 1.0)
	require.Greater(t, tr.Position.Y(), 0.0)
	require.Equal(t, mgl64.Vec3{2, 0.1, 2}, tr.Scale)
	require.Equal(t, 20, ecs.Count(w, component.SplashParticleComponent.Kind()))

	// Particles register with the space and stay out of the floor.
	for i := 0; i < 120; i++ {
		step(w, input)
	}
	require.Equal(t, 20, ecs.Count(w, component.SplashParticleComponent.Kind()))
	require.Equal(t, 22, physics.Bodies())
	ecs.ForEach(w, component.SplashParticleComponent.Kind(), func(e ecs.Entity, _ *component.SplashParticle) {
		pt, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		require.Greater(t, pt.Position.Y(), 0.0)
	})
	require.True(t, d.HasSplashed())

	input.pressed[ebiten.KeyR] = true
	step(w, input)
	input.pressed[ebiten.KeyR] = false

	require.False(t, d.HasSplashed())
	require.Zero(t, ecs.Count(w, component.SplashParticleComponent.Kind()))

	// The next step drops the particle bodies and the one after moves the
	// droplet down again.
	step(w, input)
	require.Equal(t, 2, physics.Bodies())
	require.InDelta(t, 5.0, tr.Position.Y(), 1e-6)
	step(w, input)
	require.Less(t, tr.Position.Y(), 5.0)
	require.Greater(t, tr.Position.Y(), 4.9)
	require.False(t, d.HasSplashed())
}

func TestPhysicsTakesRotationFromTransform(t *testing.T) {
	w, droplet, input, _ := newPhysicsScene(t)
	step(w, input)

	rb, _ := ecs.Get(w, *droplet, component.RigidBodyComponent.Kind())
	require.NotNil(t, rb.Body)
	rb.Body.SetAngle(1.2)

	tr, _ := ecs.Get(w, *droplet, component.TransformComponent.Kind())
	vel, _ := ecs.Get(w, *droplet, component.VelocityComponent.Kind())
	tr.Rotation = mgl64.QuatIdent()
	vel.Angular = mgl64.Vec3{}
	step(w, input)

	require.InDelta(t, 0.0, rb.Body.Angle(), 1e-9)
	require.True(t, tr.Rotation.ApproxEqualThreshold(mgl64.QuatIdent(), 1e-9))

	tr.Rotation = mgl64.QuatRotate(0.5, mgl64.Vec3{0, 0, 1})
	step(w, input)
	require.InDelta(t, 0.5, rb.Body.Angle(), 1e-9)
}

func TestPhysicsEmitsCollisionEventsOnce(t *testing.T) {
	w, _, input, _ := newPhysicsScene(t)

	started := 0
	w.AddSystem(systemFunc(func(w *ecs.World) {
		for _, evt := range w.Events().Collisions() {
			if evt.Kind == ecs.CollisionStarted {
				started++
			}
		}
	}))

	for i := 0; i < 300 && started == 0; i++ {
		step(w, input)
	}
	require.Equal(t, 1, started)
}

type systemFunc func(w *ecs.World)

func (f systemFunc) Update(w *ecs.World) { f(w) }
