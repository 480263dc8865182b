package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

type BodyType int

const (
	BodyDynamic BodyType = iota
	BodyFixed
)

// RigidBody marks an entity as simulated. Body and Shape are filled in by the
// physics system once the entity has been registered with the space.
type RigidBody struct {
	Type  BodyType
	Body  *cp.Body
	Shape *cp.Shape
}

var RigidBodyComponent = NewComponent[RigidBody]()

type ColliderShape int

const (
	ColliderBall ColliderShape = iota
	ColliderCuboid
)

// Collider describes the collision shape in meters.
type Collider struct {
	Shape       ColliderShape
	Radius      float64
	HalfExtents mgl64.Vec3
	// Restitution is the bounce coefficient.
	Restitution float64
	Friction    float64
	// Density in kg/m^3 of the ball volume. Zero means 1.
	Density float64
}

var ColliderComponent = NewComponent[Collider]()

// Velocity is the linear velocity in m/s and angular velocity in rad/s.
type Velocity struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

var VelocityComponent = NewComponent[Velocity]()

// Damping slows a body each step by v *= 1/(1+dt*d).
type Damping struct {
	Linear  float64
	Angular float64
}

var DampingComponent = NewComponent[Damping]()

// CollisionEvents opts an entity into collision start/stop events.
type CollisionEvents struct{}

var CollisionEventsComponent = NewComponent[CollisionEvents]()

// CollisionLayer allows entities to declare a collision category and mask
// so the physics system can selectively enable/disable collisions between
// groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system will treat it as category 1.
	Category uint32 `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity should collide with. If
	// zero, the physics system will treat it as all-bits set (collide with all).
	Mask uint32 `yaml:"mask,omitempty"`
}

const (
	LayerWorld    uint32 = 1 << 0
	LayerParticle uint32 = 1 << 1
	LayerDroplet  uint32 = 1 << 2
)

var CollisionLayerComponent = NewComponent[CollisionLayer]()
