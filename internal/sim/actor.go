package sim

// Actor is the controlled flyer: a vertical position/velocity integrator
// plus a monotonically advancing horizontal world position. It is owned
// exclusively by the Session and mutated only during fixed-step ticks.
type Actor struct {
	X    float64 // Horizontal world position of the center
	Y    float64 // Vertical position of the center
	VelY float64 // Vertical velocity
}

// ApplyImpulse sets the vertical velocity to the given upward impulse,
// unconditionally overwriting any existing velocity. The caller guards
// against impulses near the top of the world.
func (a *Actor) ApplyImpulse(v float64) {
	a.VelY = v
}

// Integrate advances the vertical state by one Euler step. No damping and
// no terminal velocity clamp; a fall may overshoot the death boundary and
// is clamped afterwards by the session.
func (a *Actor) Integrate(gravity, dt float64) {
	a.VelY += gravity * dt
	a.Y += a.VelY * dt
}

// Descending reports whether the actor is currently moving downward.
// The renderers key the sprite pose on this.
func (a *Actor) Descending() bool {
	return a.VelY > 0
}
