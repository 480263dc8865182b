package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
)

// physicsScale converts meters to chipmunk units. Chipmunk's default
// collision slop is tuned for pixel-sized worlds, so the space runs in
// centimeters.
const physicsScale = 100.0

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeEvents
)

// PhysicsSystem simulates rigid bodies in a chipmunk space. Chipmunk covers
// the vertical XY plane; depth (Z) is integrated here with the same damping,
// which is exact for contacts against the horizontal floor.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	timestep      float64
	gravity       float64
	iterations    uint

	bodies *intmap.Map[ecs.Entity, *bodyInfo]

	// set while stepping so collision callbacks can push events
	world   *ecs.World
	emitted map[collisionKey]struct{}
}

type bodyInfo struct {
	body    *cp.Body
	shape   *cp.Shape
	static  bool
	damping component.Damping
}

type collisionKey struct {
	a, b ecs.Entity
	kind ecs.CollisionEventKind
}

func NewPhysicsSystem(timestep, gravity float64, iterations int) *PhysicsSystem {
	if timestep <= 0 {
		timestep = 1.0 / 60
	}
	if iterations <= 0 {
		iterations = 20
	}
	ps := &PhysicsSystem{
		timestep:   timestep,
		gravity:    gravity,
		iterations: uint(iterations),
		bodies:     intmap.New[ecs.Entity, *bodyInfo](64),
		emitted:    make(map[collisionKey]struct{}),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = ps.iterations
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity * physicsScale})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Timestep returns the fixed step in seconds.
func (ps *PhysicsSystem) Timestep() float64 {
	return ps.timestep
}

// Bodies returns the number of bodies registered with the space.
func (ps *PhysicsSystem) Bodies() int {
	return ps.bodies.Len()
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushState(w)

	ps.world = w
	ps.space.Step(ps.timestep)
	ps.world = nil
	clear(ps.emitted)

	ps.pullState(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewWildcardCollisionHandler(collisionTypeEvents)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.emit(ecs.CollisionStarted, arb)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.emit(ecs.CollisionStopped, arb)
		}
	}

	ps.handlersReady = true
}

// emit pushes one event per shape pair; the wildcard handler runs once for
// each side when both shapes want events.
func (ps *PhysicsSystem) emit(kind ecs.CollisionEventKind, arb *cp.Arbiter) {
	if ps.world == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := shapeEntity(shapeA)
	b, okB := shapeEntity(shapeB)
	if !okA || !okB {
		return
	}
	key := collisionKey{a: min(a, b), b: max(a, b), kind: kind}
	if _, dup := ps.emitted[key]; dup {
		return
	}
	ps.emitted[key] = struct{}{}
	ps.world.Events().PushCollision(ecs.CollisionEvent{Kind: kind, A: a, B: b})
}

func shapeEntity(shape *cp.Shape) (ecs.Entity, bool) {
	if shape == nil {
		return 0, false
	}
	e, ok := shape.UserData.(ecs.Entity)
	return e, ok
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.RigidBodyComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		rb, _ := ecs.Get(w, e, component.RigidBodyComponent.Kind())
		collider, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if rb == nil || collider == nil || transform == nil {
			continue
		}

		damping := component.Damping{}
		if d, ok := ecs.Get(w, e, component.DampingComponent.Kind()); ok {
			damping = *d
		}

		if info, ok := ps.bodies.Get(e); ok {
			info.damping = damping
			continue
		}

		layer := component.CollisionLayer{}
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			layer = *l
		}
		wantsEvents := ecs.Has(w, e, component.CollisionEventsComponent.Kind())

		info := ps.createBodyInfo(e, *transform, *rb, *collider, layer, wantsEvents)
		if info == nil {
			continue
		}
		info.damping = damping
		ps.bodies.Put(e, info)
		rb.Body = info.body
		rb.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, rb component.RigidBody, collider component.Collider, layer component.CollisionLayer, wantsEvents bool) *bodyInfo {
	pos := cp.Vector{X: transform.Position.X() * physicsScale, Y: transform.Position.Y() * physicsScale}
	radius := collider.Radius * physicsScale
	halfW := collider.HalfExtents.X() * physicsScale
	halfH := collider.HalfExtents.Y() * physicsScale

	if collider.Shape == component.ColliderBall && radius <= 0 {
		return nil
	}
	if collider.Shape == component.ColliderCuboid && (halfW <= 0 || halfH <= 0) {
		return nil
	}

	info := &bodyInfo{static: rb.Type == component.BodyFixed}

	var shape *cp.Shape
	if info.static {
		info.body = ps.space.StaticBody
		switch collider.Shape {
		case component.ColliderBall:
			shape = cp.NewCircle(ps.space.StaticBody, radius, pos)
		default:
			bb := cp.BB{L: pos.X - halfW, B: pos.Y - halfH, R: pos.X + halfW, T: pos.Y + halfH}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
	} else {
		mass := colliderMass(collider)
		var moment float64
		switch collider.Shape {
		case component.ColliderBall:
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		default:
			moment = cp.MomentForBox(mass, halfW*2, halfH*2)
		}
		body := cp.NewBody(mass, moment)
		body.SetPosition(pos)
		body.UserData = e
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, damping, dt)
			if info.damping.Linear > 0 {
				body.SetVelocityVector(body.Velocity().Mult(dampFactor(info.damping.Linear, dt)))
			}
			if info.damping.Angular > 0 {
				body.SetAngularVelocity(body.AngularVelocity() * dampFactor(info.damping.Angular, dt))
			}
		})
		ps.space.AddBody(body)
		info.body = body

		switch collider.Shape {
		case component.ColliderBall:
			shape = cp.NewCircle(body, radius, cp.Vector{})
		default:
			shape = cp.NewBox(body, halfW*2, halfH*2, 0)
		}
	}

	shape.SetElasticity(collider.Restitution)
	shape.SetFriction(collider.Friction)
	shape.SetCollisionType(collisionTypeSolid)
	if wantsEvents {
		shape.SetCollisionType(collisionTypeEvents)
	}
	shape.SetFilter(shapeFilter(layer))
	shape.UserData = e
	ps.space.AddShape(shape)

	info.shape = shape
	return info
}

func shapeFilter(layer component.CollisionLayer) cp.ShapeFilter {
	category := uint(layer.Category)
	if category == 0 {
		category = uint(component.LayerWorld)
	}
	mask := uint(layer.Mask)
	if mask == 0 {
		mask = ^uint(0)
	}
	return cp.NewShapeFilter(0, category, mask)
}

// colliderMass uses the collider volume, as rapier does with unit density.
func colliderMass(c component.Collider) float64 {
	density := c.Density
	if density <= 0 {
		density = 1
	}
	var volume float64
	switch c.Shape {
	case component.ColliderBall:
		volume = 4.0 / 3.0 * math.Pi * c.Radius * c.Radius * c.Radius
	default:
		volume = 8 * c.HalfExtents.X() * c.HalfExtents.Y() * c.HalfExtents.Z()
	}
	if mass := density * volume; mass > 0 {
		return mass
	}
	return 1
}

func dampFactor(d, dt float64) float64 {
	return 1 / (1 + dt*d)
}

// pushState copies ECS transforms and velocities into the bodies so systems
// can teleport, turn or stop a body by editing its components.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	ps.bodies.ForEach(func(e ecs.Entity, info *bodyInfo) bool {
		if info.static || info.body == nil {
			return true
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			info.body.SetPosition(cp.Vector{X: transform.Position.X() * physicsScale, Y: transform.Position.Y() * physicsScale})
			info.body.SetAngle(planeAngle(transform.Rotation))
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			info.body.SetVelocity(vel.Linear.X()*physicsScale, vel.Linear.Y()*physicsScale)
			info.body.SetAngularVelocity(vel.Angular.Z())
		}
		return true
	})
}

// planeAngle is the rotation of q about Z, read from where it sends the X axis.
func planeAngle(q mgl64.Quat) float64 {
	x := q.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(x.Y(), x.X())
}

func (ps *PhysicsSystem) pullState(w *ecs.World) {
	dt := ps.timestep
	ps.bodies.ForEach(func(e ecs.Entity, info *bodyInfo) bool {
		if info.static || info.body == nil {
			return true
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return true
		}
		pos := info.body.Position()
		z := transform.Position.Z()

		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v := info.body.Velocity()
			vz := vel.Linear.Z() * dampFactor(info.damping.Linear, dt)
			angular := vel.Angular.Mul(dampFactor(info.damping.Angular, dt))
			vel.Linear = mgl64.Vec3{v.X / physicsScale, v.Y / physicsScale, vz}
			vel.Angular = mgl64.Vec3{angular.X(), angular.Y(), info.body.AngularVelocity()}
			z += vz * dt
		}

		transform.Position = mgl64.Vec3{pos.X / physicsScale, pos.Y / physicsScale, z}
		transform.Rotation = mgl64.QuatRotate(info.body.Angle(), mgl64.Vec3{0, 0, 1})
		return true
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	var stale []ecs.Entity
	ps.bodies.ForEach(func(e ecs.Entity, _ *bodyInfo) bool {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.RigidBodyComponent.Kind()) {
			stale = append(stale, e)
		}
		return true
	})

	for _, e := range stale {
		info, ok := ps.bodies.Get(e)
		if !ok {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		ps.bodies.Del(e)
	}
}
