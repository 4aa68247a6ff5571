// Package sim implements the deterministic fixed-step simulation engine
// behind every Flappy Nerd variant: actor physics, the recycling obstacle
// ring, collision detection, score derivation, and the idle/playing/dead
// session state machine. The package is pure logic with no I/O; the
// presentation layers consume it through Flap, Advance, and Snapshot.
package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// ObstaclePair is one top/bottom pipe pair in the ring. WorldX is the
// absolute horizontal position of its left edge; Shift offsets the gap
// center from the middle of the play area. Extra holds additional solid
// rectangles (pair-local X, absolute Y) seeded by the OnRecycle hook; the
// quiz variant uses it for the deadly wrong-answer zone.
type ObstaclePair struct {
	WorldX float64
	Shift  float64
	Passed bool
	Extra  []RectSpec
}

// RectSpec is a solid rectangle attached to an obstacle pair.
// X is relative to the pair's WorldX; Y, W, H are in world units.
type RectSpec struct {
	X, Y, W, H float64
}

// BandConfig describes one decorative streaming band (trees, ground tiles,
// parallax layers). Bands never collide; they only scroll and re-seed.
type BandConfig struct {
	Name    string  // Identifier for the renderer
	Factor  float64 // Parallax multiplier applied to the scroll distance
	Spacing float64 // Distance between consecutive elements
	Width   float64 // Element width, used for the off-screen test
	Count   int     // Number of elements in the loop
	Margin  float64 // Slack beyond the left viewport edge before re-seeding
	StartX  float64 // World position of the first element
}

// Config holds every constant of the simulation. All values are fixed at
// construction; Validate rejects unusable combinations instead of clamping.
type Config struct {
	// World geometry, in world units (pixels of the original canvas).
	WorldW float64
	WorldH float64
	FloorH float64 // Ground band height; the death boundary is WorldH-FloorH

	// Actor geometry. ActorX is the viewport-fixed horizontal position of
	// the actor's center; StartY is the idle altitude of its center.
	ActorX        float64
	ActorW        float64
	ActorH        float64
	StartY        float64
	CeilingMargin float64 // Flap impulses are suppressed above this altitude

	// Physics, in world units per second.
	Gravity     float64 // Downward acceleration
	FlapImpulse float64 // Vertical velocity set by a flap (negative = up)
	ScrollSpeed float64 // Horizontal world speed

	// Obstacle ring.
	PairWidth     float64
	PairSpacing   float64
	GapHeight     float64
	ShiftRange    float64 // Gap center shift drawn uniformly from ±ShiftRange
	FirstPairX    float64 // WorldX of the first pair; X0 of the score formula
	RecycleMargin float64 // Slack beyond the left viewport edge
	RingSize      int

	// Fixed-step clock.
	FixedStep     float64 // Simulation step duration in seconds
	MaxFrameDelta float64 // Frame deltas above this are clamped

	// Idle bob animation.
	BobSpeed  float64
	BobHeight float64

	// Seed for the session RNG. Zero is a valid (fixed) seed; callers that
	// want varied rounds pass a time-derived value.
	Seed int64

	// Decorative streaming bands.
	Bands []BandConfig

	// OnRecycle is invoked for every pair at initial seeding and again each
	// time the pair is recycled to the back of the ring; slot is the pair's
	// stable arena index. Variants use it to attach content such as quiz
	// answer zones.
	OnRecycle func(slot int, p *ObstaclePair, rng *rand.Rand)

	// OnScoreChange fires only when the derived integer score changes.
	OnScoreChange func(score int)
}

// DefaultConfig returns the desktop-sized tuning: the classic per-tick
// values (gravity 0.9, impulse -15, scroll 3 at 60 ticks/second) expressed
// per second.
func DefaultConfig() Config {
	return Config{
		WorldW: 960,
		WorldH: 540,
		FloorH: 96,

		ActorX:        268,
		ActorW:        64,
		ActorH:        48,
		StartY:        243,
		CeilingMargin: 40,

		Gravity:     3240, // 0.9 per tick² at 60 Hz
		FlapImpulse: -900, // -15 per tick
		ScrollSpeed: 180,  // 3 per tick

		PairWidth:     140,
		PairSpacing:   420,
		GapHeight:     260,
		ShiftRange:    90,
		FirstPairX:    1080,
		RecycleMargin: 192,
		RingSize:      6,

		FixedStep:     1.0 / 60.0,
		MaxFrameDelta: 0.25,

		BobSpeed:  3.5,
		BobHeight: 12,
	}
}

// Validate checks the configuration for precondition violations.
// Invalid values are construction-time errors, never silently adjusted.
func (c Config) Validate() error {
	switch {
	case !(c.FixedStep > 0) || math.IsInf(c.FixedStep, 0):
		return fmt.Errorf("sim: fixed step must be positive, got %v", c.FixedStep)
	case !(c.MaxFrameDelta >= c.FixedStep):
		return fmt.Errorf("sim: max frame delta %v must be at least the fixed step %v", c.MaxFrameDelta, c.FixedStep)
	case !(c.PairSpacing > 0):
		return fmt.Errorf("sim: pair spacing must be positive, got %v", c.PairSpacing)
	case !(c.PairWidth > 0):
		return fmt.Errorf("sim: pair width must be positive, got %v", c.PairWidth)
	case c.RingSize < 1:
		return fmt.Errorf("sim: ring size must be at least 1, got %d", c.RingSize)
	case !(c.WorldW > 0) || !(c.WorldH > 0):
		return fmt.Errorf("sim: world dimensions must be positive, got %vx%v", c.WorldW, c.WorldH)
	case c.FloorH < 0 || c.FloorH >= c.WorldH:
		return fmt.Errorf("sim: floor height %v must be within [0, world height)", c.FloorH)
	case !(c.GapHeight > 0):
		return fmt.Errorf("sim: gap height must be positive, got %v", c.GapHeight)
	case c.ShiftRange < 0:
		return fmt.Errorf("sim: shift range must be non-negative, got %v", c.ShiftRange)
	case c.ScrollSpeed < 0:
		return fmt.Errorf("sim: scroll speed must be non-negative, got %v", c.ScrollSpeed)
	case !(c.ActorW > 0) || !(c.ActorH > 0):
		return fmt.Errorf("sim: actor dimensions must be positive, got %vx%v", c.ActorW, c.ActorH)
	}

	playH := c.WorldH - c.FloorH
	if c.GapHeight+2*c.ShiftRange > playH {
		return fmt.Errorf("sim: gap height %v plus shift range ±%v exceeds play area height %v", c.GapHeight, c.ShiftRange, playH)
	}

	for i, b := range c.Bands {
		if b.Count < 1 {
			return fmt.Errorf("sim: band %d (%s) needs at least 1 element", i, b.Name)
		}
		if !(b.Spacing > 0) {
			return fmt.Errorf("sim: band %d (%s) spacing must be positive, got %v", i, b.Name, b.Spacing)
		}
		if b.Factor < 0 {
			return fmt.Errorf("sim: band %d (%s) parallax factor must be non-negative, got %v", i, b.Name, b.Factor)
		}
	}

	return nil
}

// floorY returns the altitude of the death boundary (ground top).
func (c Config) floorY() float64 {
	return c.WorldH - c.FloorH
}

// gapCenterBase returns the gap center altitude before the random shift.
func (c Config) gapCenterBase() float64 {
	return c.floorY() / 2
}
