package sim

import "math"

// Clock converts variable wall-clock frame deltas into a whole number of
// fixed simulation steps via an accumulator. Physics results are identical
// across machines and frame rates for the same elapsed wall time, up to the
// frame-delta clamp.
type Clock struct {
	step     float64
	maxDelta float64
	acc      float64
}

// newClock creates a clock; the session validates step and maxDelta before
// calling this.
func newClock(step, maxDelta float64) Clock {
	return Clock{step: step, maxDelta: maxDelta}
}

// Advance feeds one frame delta (seconds) into the accumulator and invokes
// tick once per whole fixed step now due, carrying any fractional remainder
// to the next frame. Returns the number of steps executed.
//
// Pathological deltas (negative, NaN, Inf) are clamped to zero so they can
// never corrupt the integrator; deltas above maxDelta are clamped to bound
// catch-up work after a stall.
func (c *Clock) Advance(rawDt float64, tick func()) int {
	if math.IsNaN(rawDt) || math.IsInf(rawDt, 0) || rawDt < 0 {
		rawDt = 0
	}
	if rawDt > c.maxDelta {
		rawDt = c.maxDelta
	}

	c.acc += rawDt
	steps := 0
	for c.acc >= c.step {
		tick()
		c.acc -= c.step
		steps++
	}
	return steps
}

// Remainder returns the unconsumed fraction of a step carried in the
// accumulator. Render interpolation may use it; the simulation never does.
func (c *Clock) Remainder() float64 {
	return c.acc
}

// reset discards any accumulated remainder.
func (c *Clock) reset() {
	c.acc = 0
}
