package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/ecs/entity"
	"github.com/milk9111/splash/ecs/render"
	"github.com/milk9111/splash/prefabs"
)

// SplashSystem flattens a falling droplet when it hits something low enough
// and sprays particles from the impact point.
type SplashSystem struct {
	assets    *render.Assets
	particles prefabs.ParticleSpec
	rng       *rand.Rand
}

func NewSplashSystem(assets *render.Assets, particles prefabs.ParticleSpec, rng *rand.Rand) *SplashSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SplashSystem{assets: assets, particles: particles, rng: rng}
}

func (s *SplashSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Collisions() {
		if evt.Kind != ecs.CollisionStarted {
			continue
		}

		for _, e := range w.Query(component.DropletComponent.Kind(), component.TransformComponent.Kind()) {
			if !evt.Involves(e) {
				continue
			}
			droplet, _ := ecs.Get(w, e, component.DropletComponent.Kind())
			transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if droplet == nil || transform == nil || droplet.HasSplashed() {
				continue
			}
			if transform.Position.Y() >= droplet.SplashBelow {
				continue
			}
			s.splash(w, e, droplet, transform)
		}
	}
}

func (s *SplashSystem) splash(w *ecs.World, e ecs.Entity, droplet *component.Droplet, transform *component.Transform) {
	transform.Scale = droplet.SplashScale
	droplet.State = component.DropletSplashed

	origin := transform.Position
	for i := 0; i < s.particles.Count; i++ {
		vel := entity.RandomSplashVelocity(s.rng, s.particles)
		w.Commands().Spawn(func(w *ecs.World, p ecs.Entity) error {
			return entity.BuildSplashParticle(w, p, s.assets, origin, vel, s.particles)
		})
	}

	log.Printf("splash: droplet %s at (%.2f, %.2f, %.2f), %d particles", e, origin.X(), origin.Y(), origin.Z(), s.particles.Count)
}
