package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
)

// ResetSystem puts every droplet back at its start and clears the splash
// particles when reset is pressed.
type ResetSystem struct{}

func NewResetSystem() *ResetSystem { return &ResetSystem{} }

func (s *ResetSystem) Update(w *ecs.World) {
	if w == nil || !resetPressed(w) {
		return
	}

	ecs.ForEach(w, component.DropletComponent.Kind(), func(e ecs.Entity, droplet *component.Droplet) {
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			*transform = component.NewTransform(droplet.Start)
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.Linear = mgl64.Vec3{}
			vel.Angular = mgl64.Vec3{}
		}
		droplet.State = component.DropletFalling
	})

	ecs.ForEach(w, component.SplashParticleComponent.Kind(), func(e ecs.Entity, _ *component.SplashParticle) {
		w.Commands().Destroy(e)
	})
}

func resetPressed(w *ecs.World) bool {
	pressed := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		pressed = pressed || input.ResetPressed
	})
	return pressed
}
