package component

import "github.com/go-gl/mathgl/mgl64"

// DropletState is the single splash signal read by wobble, splash and reset.
type DropletState int

const (
	DropletFalling DropletState = iota
	DropletSplashed
)

func (s DropletState) String() string {
	switch s {
	case DropletFalling:
		return "falling"
	case DropletSplashed:
		return "splashed"
	default:
		return "unknown"
	}
}

type Droplet struct {
	State DropletState
	// Start is where reset puts the droplet back.
	Start mgl64.Vec3
	// SplashBelow is the height the droplet must be under for a collision
	// to count as hitting the floor.
	SplashBelow float64
	// SplashScale is the flattened puddle scale.
	SplashScale mgl64.Vec3
	// Wobble is the oscillation amplitude applied while falling.
	Wobble float64
}

// HasSplashed reports whether the droplet is past its one splash.
func (d *Droplet) HasSplashed() bool {
	return d != nil && d.State == DropletSplashed
}

var DropletComponent = NewComponent[Droplet]()

// SplashParticle tags a short-lived particle spawned by a splash.
type SplashParticle struct{}

var SplashParticleComponent = NewComponent[SplashParticle]()
