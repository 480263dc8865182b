package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
)

// DropletWobbleSystem jiggles the scale of falling droplets.
type DropletWobbleSystem struct{}

func NewDropletWobbleSystem() *DropletWobbleSystem { return &DropletWobbleSystem{} }

func (s *DropletWobbleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	t := w.Clock().Elapsed

	ecs.ForEach(w, component.DropletComponent.Kind(), func(e ecs.Entity, droplet *component.Droplet) {
		if droplet.HasSplashed() {
			return
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		transform.Scale = WobbleScale(t, droplet.Wobble)
	})
}

// WobbleScale is the per-axis droplet scale at time t. Each axis stays
// within 1 ± amplitude.
func WobbleScale(t, amplitude float64) mgl64.Vec3 {
	return mgl64.Vec3{
		1 + math.Sin(t*5.0)*amplitude,
		1 + math.Cos(t*4.3)*amplitude,
		1 + math.Sin(t*3.5)*amplitude,
	}
}
