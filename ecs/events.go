package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventTypeCollision = "collision"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionStarted CollisionEventKind = "started"
	CollisionStopped CollisionEventKind = "stopped"
)

// CollisionEvent is emitted by the physics system when two bodies start or
// stop touching.
type CollisionEvent struct {
	Kind CollisionEventKind
	A    Entity
	B    Entity
}

// Involves reports whether e is one of the two bodies.
func (c CollisionEvent) Involves(e Entity) bool {
	return c.A == e || c.B == e
}

// EventQueue is a per-frame FIFO queue. Every reader sees every event pushed
// during the frame; the world clears it after the systems have run.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushCollision adds a collision event.
func (q *EventQueue) PushCollision(evt CollisionEvent) {
	q.Push(Event{Type: EventTypeCollision, Data: evt})
}

// Read returns the events of the given type pushed this frame.
func (q *EventQueue) Read(eventType string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

// Collisions returns this frame's collision events in push order.
func (q *EventQueue) Collisions() []CollisionEvent {
	var out []CollisionEvent
	for _, evt := range q.Read(EventTypeCollision) {
		if c, ok := evt.Data.(CollisionEvent); ok {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
