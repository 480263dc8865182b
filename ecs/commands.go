package ecs

import "log"

// Commands buffers structural changes made by systems. They are applied once
// per frame after every system has run.
type Commands struct {
	spawns   []func(w *World, e Entity) error
	destroys []Entity
}

// Spawn queues creation of an entity; build adds its components.
func (c *Commands) Spawn(build func(w *World, e Entity) error) {
	if c == nil || build == nil {
		return
	}
	c.spawns = append(c.spawns, build)
}

// Destroy queues destruction of e.
func (c *Commands) Destroy(e Entity) {
	if c == nil {
		return
	}
	c.destroys = append(c.destroys, e)
}

// flush applies queued commands. Destroys run before spawns.
func (c *Commands) flush(w *World) {
	if c == nil || w == nil {
		return
	}
	destroys, spawns := c.destroys, c.spawns
	c.destroys, c.spawns = nil, nil

	for _, e := range destroys {
		w.DestroyEntity(e)
	}
	for _, build := range spawns {
		e := w.CreateEntity()
		if err := build(w, e); err != nil {
			log.Printf("ecs: spawn entity %s: %v", e, err)
			w.DestroyEntity(e)
		}
	}
}
