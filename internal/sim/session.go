package sim

import (
	"math"
	"math/rand"

	"github.com/gagank1/Flappy-Nerd/internal/core"
)

// State is the session state machine: Idle until the first flap, Playing
// while the world advances, Dead after a collision until the next flap
// resets the round.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DeathCause records what ended the round. The quiz variant distinguishes a
// wrong-answer zone hit from an ordinary pipe hit.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseFloor
	CausePipe
	CauseZone
)

// Session is one simulation instance: the single mutation entry point is
// Advance, the single read boundary is Snapshot. All state transitions
// happen synchronously within a tick, so a snapshot taken between Advance
// calls can never observe a torn state.
type Session struct {
	cfg   Config
	rng   *rand.Rand
	clock Clock
	actor Actor
	ring  *Ring
	bands []*ScenicBand

	state      State
	cause      DeathCause
	scroll     float64
	score      int
	best       int
	ticks      uint64
	idleTime   float64
	flapQueued bool
}

// NewSession validates the configuration and builds a session in the Idle
// state. Invalid configuration is rejected here, never clamped.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		clock: newClock(cfg.FixedStep, cfg.MaxFrameDelta),
	}
	s.ring = newRing(&s.cfg, s.rng)
	s.bands = make([]*ScenicBand, 0, len(cfg.Bands))
	for _, bc := range cfg.Bands {
		s.bands = append(s.bands, newScenicBand(bc))
	}
	s.resetRound()
	return s, nil
}

// Config returns a copy of the session's configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current derived score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the highest score reached since the session was created or
// last Reset. A flap-revive starts a new round but keeps the best.
func (s *Session) Best() int {
	return s.best
}

// Cause returns what ended the current round, or CauseNone while alive.
func (s *Session) Cause() DeathCause {
	return s.cause
}

// Ring exposes the obstacle ring for variant content hooks and tests.
func (s *Session) Ring() *Ring {
	return s.ring
}

// Flap is the single abstract input. Safe to call at any rate: repeats
// before the next impulse-consuming tick coalesce to one impulse. While
// Dead it performs the full round reset and re-enters Playing with an
// impulse applied, within this same call.
func (s *Session) Flap() {
	if s.state == StateDead {
		s.resetRound()
		s.state = StatePlaying
		s.actor.ApplyImpulse(s.cfg.FlapImpulse)
		return
	}
	s.flapQueued = true
}

// Advance consumes one wall-clock frame delta, running however many fixed
// steps are now due. Returns the number of steps executed.
func (s *Session) Advance(rawDt float64) int {
	return s.clock.Advance(rawDt, s.tick)
}

// Reset reseeds the RNG and restores the session to a fresh Idle round,
// clearing the best score. After Reset the session behaves exactly as a
// newly built one with the given seed.
func (s *Session) Reset(seed int64) {
	s.cfg.Seed = seed
	s.rng.Seed(seed)
	s.best = 0
	s.resetRound()
}

// resetRound restores every tracked entity to its initial state: actor pose,
// scroll distance, score, ring positions/shifts/content, band positions, and
// elapsed counters. The RNG stream continues, so successive rounds differ
// but the whole session remains a pure function of seed and input timing.
func (s *Session) resetRound() {
	s.state = StateIdle
	s.cause = CauseNone
	s.scroll = 0
	s.score = 0
	s.ticks = 0
	s.idleTime = 0
	s.flapQueued = false
	s.actor = Actor{X: s.cfg.ActorX, Y: s.cfg.StartY}
	s.ring.reset()
	for _, b := range s.bands {
		b.reset()
	}
	s.clock.reset()
}

// tick advances the simulation by exactly one fixed step.
func (s *Session) tick() {
	step := s.cfg.FixedStep
	flap := s.flapQueued
	s.flapQueued = false
	s.ticks++

	switch s.state {
	case StateIdle:
		s.idleTime += step
		s.actor.Y = s.cfg.StartY + math.Sin(s.idleTime*s.cfg.BobSpeed)*s.cfg.BobHeight
		if flap {
			s.state = StatePlaying
			s.actor.ApplyImpulse(s.cfg.FlapImpulse)
		}

	case StatePlaying:
		// Flapping too close to the top of the world is suppressed so the
		// actor cannot leave the play area.
		if flap && s.actor.Y > s.cfg.CeilingMargin {
			s.actor.ApplyImpulse(s.cfg.FlapImpulse)
		}
		s.actor.Integrate(s.cfg.Gravity, step)
		s.scroll += s.cfg.ScrollSpeed * step
		s.actor.X = s.cfg.ActorX + s.scroll

		s.ring.recycle(s.scroll)
		for _, b := range s.bands {
			b.advance(s.scroll)
		}
		s.markPassed()

		if cause := s.collide(); cause != CauseNone {
			s.state = StateDead
			s.cause = cause
			s.settleOnFloor()
			return
		}

		if n := DistanceScore(s.scroll, s.cfg.FirstPairX, s.cfg.PairSpacing); n != s.score {
			s.score = n
			if n > s.best {
				s.best = n
			}
			if s.cfg.OnScoreChange != nil {
				s.cfg.OnScoreChange(n)
			}
		}

	case StateDead:
		// The world is frozen; the actor keeps falling until it settles on
		// the floor. The reviving flap is handled synchronously in Flap.
		s.actor.Integrate(s.cfg.Gravity, step)
		s.settleOnFloor()
	}
}

// markPassed flags pairs whose trailing edge the actor has cleared.
func (s *Session) markPassed() {
	for i := 0; i < s.ring.Len(); i++ {
		p := s.ring.At(i)
		if !p.Passed && p.WorldX-s.scroll+s.cfg.PairWidth < s.cfg.ActorX {
			p.Passed = true
		}
	}
}

// actorRect returns the actor's bounding box in screen space.
func (s *Session) actorRect() core.RectF {
	return core.NewRectF(
		s.cfg.ActorX-s.cfg.ActorW/2,
		s.actor.Y-s.cfg.ActorH/2,
		s.cfg.ActorW,
		s.cfg.ActorH,
	)
}

// collide tests the actor against the death boundary and every solid
// rectangle of every live pair, returning the first cause found.
func (s *Session) collide() DeathCause {
	if s.actor.Y+s.cfg.ActorH/2 > s.cfg.floorY() {
		return CauseFloor
	}

	ar := s.actorRect()
	for i := 0; i < s.ring.Len(); i++ {
		p := s.ring.At(i)
		screenX := p.WorldX - s.scroll

		top := s.ring.TopRect(p)
		top.X = screenX
		bottom := s.ring.BottomRect(p)
		bottom.X = screenX
		if ar.Intersects(top) || ar.Intersects(bottom) {
			return CausePipe
		}

		for _, e := range p.Extra {
			zone := core.NewRectF(screenX+e.X, e.Y, e.W, e.H)
			if ar.Intersects(zone) {
				return CauseZone
			}
		}
	}
	return CauseNone
}

// settleOnFloor clamps the actor onto the ground and kills its velocity
// once it has fallen past the boundary, so a dead actor visually rests on
// the floor instead of integrating downward forever.
func (s *Session) settleOnFloor() {
	floorY := s.cfg.floorY()
	if s.actor.Y+s.cfg.ActorH/2 > floorY {
		s.actor.Y = floorY - s.cfg.ActorH/2
		s.actor.VelY = 0
	}
}
