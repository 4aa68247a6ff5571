// Package config provides YAML-based variant configuration loading for the
// Flappy Nerd platform.
package config

import (
	"github.com/gagank1/Flappy-Nerd/internal/sim"
)

// VariantConfig contains all tuning for one game variant.
type VariantConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Actor     ActorConfig     `yaml:"actor"`
	Clock     ClockConfig     `yaml:"clock"`
	Idle      IdleConfig      `yaml:"idle"`
	Scenery   []SceneryConfig `yaml:"scenery"`
	Quiz      QuizConfig      `yaml:"quiz"`
}

// WorldConfig defines the world dimensions in world units.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"`
}

// PhysicsConfig defines physics parameters, in world units per second.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// ObstaclesConfig defines obstacle ring parameters.
type ObstaclesConfig struct {
	PipeWidth     float64 `yaml:"pipe_width"`
	PipeSpacing   float64 `yaml:"pipe_spacing"`
	GapHeight     float64 `yaml:"gap_height"`
	ShiftRange    float64 `yaml:"shift_range"`
	FirstPipeX    float64 `yaml:"first_pipe_x"`
	RecycleMargin float64 `yaml:"recycle_margin"`
	RingSize      int     `yaml:"ring_size"`
}

// ActorConfig defines actor geometry.
type ActorConfig struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartY        float64 `yaml:"start_y"`
	CeilingMargin float64 `yaml:"ceiling_margin"`
}

// ClockConfig defines the fixed-step clock.
type ClockConfig struct {
	StepHz        float64 `yaml:"step_hz"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// IdleConfig defines the ready-screen bob animation.
type IdleConfig struct {
	BobSpeed  float64 `yaml:"bob_speed"`
	BobHeight float64 `yaml:"bob_height"`
}

// SceneryConfig defines one decorative parallax band.
type SceneryConfig struct {
	Name    string  `yaml:"name"`
	Factor  float64 `yaml:"factor"`
	Spacing float64 `yaml:"spacing"`
	Width   float64 `yaml:"width"`
	Count   int     `yaml:"count"`
	Margin  float64 `yaml:"margin"`
	StartX  float64 `yaml:"start_x"`
}

// QuizConfig defines quiz-variant parameters. Ignored by other variants.
type QuizConfig struct {
	ZoneWidth    float64 `yaml:"zone_width"`    // Width of each answer zone
	ZoneInterval int     `yaml:"zone_interval"` // Pipes between question pairs
}

// ToSim converts the loaded variant config into a simulation config.
// The seed is supplied by the caller; validation happens in sim.NewSession.
func (c VariantConfig) ToSim(seed int64) sim.Config {
	sc := sim.Config{
		WorldW: c.World.Width,
		WorldH: c.World.Height,
		FloorH: c.World.FloorHeight,

		ActorX:        c.Actor.X,
		ActorW:        c.Actor.Width,
		ActorH:        c.Actor.Height,
		StartY:        c.Actor.StartY,
		CeilingMargin: c.Actor.CeilingMargin,

		Gravity:     c.Physics.Gravity,
		FlapImpulse: c.Physics.FlapImpulse,
		ScrollSpeed: c.Physics.ScrollSpeed,

		PairWidth:     c.Obstacles.PipeWidth,
		PairSpacing:   c.Obstacles.PipeSpacing,
		GapHeight:     c.Obstacles.GapHeight,
		ShiftRange:    c.Obstacles.ShiftRange,
		FirstPairX:    c.Obstacles.FirstPipeX,
		RecycleMargin: c.Obstacles.RecycleMargin,
		RingSize:      c.Obstacles.RingSize,

		MaxFrameDelta: c.Clock.MaxFrameDelta,

		BobSpeed:  c.Idle.BobSpeed,
		BobHeight: c.Idle.BobHeight,

		Seed: seed,
	}
	if c.Clock.StepHz > 0 {
		sc.FixedStep = 1.0 / c.Clock.StepHz
	}
	for _, b := range c.Scenery {
		sc.Bands = append(sc.Bands, sim.BandConfig{
			Name:    b.Name,
			Factor:  b.Factor,
			Spacing: b.Spacing,
			Width:   b.Width,
			Count:   b.Count,
			Margin:  b.Margin,
			StartX:  b.StartX,
		})
	}
	return sc
}
