package ecs

import "time"

// Clock tracks simulation time in seconds.
type Clock struct {
	Elapsed float64
	Delta   float64
	Frame   uint64
}

// Advance moves the clock forward by dt.
func (c *Clock) Advance(dt time.Duration) {
	if c == nil || dt < 0 {
		return
	}
	c.Delta = dt.Seconds()
	c.Elapsed += c.Delta
	c.Frame++
}

// Set positions the clock at an absolute elapsed time.
func (c *Clock) Set(elapsed float64) {
	if c == nil {
		return
	}
	c.Delta = elapsed - c.Elapsed
	c.Elapsed = elapsed
	c.Frame++
}
