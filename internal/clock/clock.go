package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Simulated is a discrete-event clock measured in abstract time units. It
// starts at 0 and is owned by a single simulation.
type Simulated struct {
	now int
}

// Now returns the current simulated time
func (c *Simulated) Now() int {
	return c.now
}

// Advance moves the clock forward by units
func (c *Simulated) Advance(units int) int {
	c.now += units
	return c.now
}

// Rewind moves the clock back by units that were advanced but not consumed
func (c *Simulated) Rewind(units int) int {
	c.now -= units
	return c.now
}
