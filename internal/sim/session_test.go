package sim

import (
	"math/rand"
	"reflect"
	"testing"
)

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// stepOnce advances the session by exactly one fixed step.
func stepOnce(t *testing.T, s *Session) {
	t.Helper()
	if n := s.Advance(s.Config().FixedStep); n != 1 {
		t.Fatalf("expected exactly 1 step, ran %d", n)
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, DefaultConfig())

	if s.State() != StateIdle {
		t.Fatalf("new session in state %v, expected idle", s.State())
	}

	// The world does not advance while idle; only the bob animates.
	for i := 0; i < 120; i++ {
		stepOnce(t, s)
	}
	snap := s.Snapshot()
	if snap.Scroll != 0 {
		t.Errorf("scroll advanced to %v while idle", snap.Scroll)
	}
	if snap.Score != 0 {
		t.Errorf("score %d while idle", snap.Score)
	}
	if snap.State != StateIdle {
		t.Errorf("state %v after idle ticks", snap.State)
	}
}

func TestSessionIdleBobAnimates(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	seen := make(map[float64]bool)
	for i := 0; i < 60; i++ {
		stepOnce(t, s)
		seen[s.Snapshot().ActorY] = true
	}
	if len(seen) < 2 {
		t.Error("idle bob should move the actor")
	}
	for y := range seen {
		if y < cfg.StartY-cfg.BobHeight-1e-9 || y > cfg.StartY+cfg.BobHeight+1e-9 {
			t.Errorf("bob altitude %v outside ±%v of %v", y, cfg.BobHeight, cfg.StartY)
		}
	}
}

func TestSessionFlapStartsPlaying(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	s.Flap()
	stepOnce(t, s)

	if s.State() != StatePlaying {
		t.Fatalf("state %v after starting flap, expected playing", s.State())
	}
	if got := s.Snapshot().ActorVelY; got != cfg.FlapImpulse {
		t.Errorf("velocity %v after starting flap, expected %v", got, cfg.FlapImpulse)
	}
}

func TestSessionOneStepArithmetic(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	// First flap transitions out of idle and applies the impulse; the next
	// tick runs one pure Euler step.
	s.Flap()
	stepOnce(t, s)
	y0 := s.Snapshot().ActorY

	stepOnce(t, s)
	snap := s.Snapshot()

	wantVel := cfg.FlapImpulse + cfg.Gravity*cfg.FixedStep
	wantY := y0 + wantVel*cfg.FixedStep
	if snap.ActorVelY != wantVel {
		t.Errorf("velocity = %v, expected exactly %v", snap.ActorVelY, wantVel)
	}
	if snap.ActorY != wantY {
		t.Errorf("position = %v, expected exactly %v", snap.ActorY, wantY)
	}
}

func TestSessionFlapCoalesced(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	s.Flap()
	stepOnce(t, s)

	// Repeated flaps before the next tick collapse to one impulse, and the
	// queued flag is consumed: the following tick integrates freely.
	s.Flap()
	s.Flap()
	s.Flap()
	stepOnce(t, s)
	vel1 := s.Snapshot().ActorVelY
	if want := cfg.FlapImpulse + cfg.Gravity*cfg.FixedStep; vel1 != want {
		t.Errorf("velocity after coalesced flaps = %v, expected %v", vel1, want)
	}

	stepOnce(t, s)
	vel2 := s.Snapshot().ActorVelY
	if want := vel1 + cfg.Gravity*cfg.FixedStep; vel2 != want {
		t.Errorf("velocity without flap = %v, expected %v", vel2, want)
	}
}

func TestSessionCeilingSuppressesFlap(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	s.Flap()
	stepOnce(t, s)

	// Park the actor above the ceiling margin; a flap there must not apply
	// an impulse.
	s.actor.Y = cfg.CeilingMargin - 1
	s.actor.VelY = 0
	s.Flap()
	stepOnce(t, s)

	if got := s.Snapshot().ActorVelY; got != cfg.Gravity*cfg.FixedStep {
		t.Errorf("suppressed flap should leave gravity-only velocity, got %v", got)
	}
}

func TestSessionFloorDeath(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	s.Flap()
	// Never flap again: the actor free-falls into the ground.
	for i := 0; i < 600 && s.State() != StateDead; i++ {
		stepOnce(t, s)
	}

	if s.State() != StateDead {
		t.Fatal("free fall never reached the death boundary")
	}
	if s.Cause() != CauseFloor {
		t.Errorf("death cause %v, expected floor", s.Cause())
	}

	// The dead actor settles exactly on the floor and stays there.
	for i := 0; i < 120; i++ {
		stepOnce(t, s)
	}
	snap := s.Snapshot()
	wantY := snap.FloorY - cfg.ActorH/2
	if snap.ActorY != wantY {
		t.Errorf("settled altitude %v, expected %v", snap.ActorY, wantY)
	}
	if snap.ActorVelY != 0 {
		t.Errorf("settled velocity %v, expected 0", snap.ActorVelY)
	}
}

func TestSessionPipeCollisionKillsAndFreezesWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShiftRange = 0
	s := newTestSession(t, cfg)

	s.Flap()
	stepOnce(t, s)

	// Move a pair onto the actor and put the actor inside its top pipe.
	p := s.ring.At(0)
	p.WorldX = s.scroll + cfg.ActorX
	s.actor.Y = 50
	s.actor.VelY = 0

	stepOnce(t, s)
	if s.State() != StateDead {
		t.Fatal("overlapping a pipe should kill on that tick")
	}
	if s.Cause() != CausePipe {
		t.Errorf("death cause %v, expected pipe", s.Cause())
	}

	// Obstacles freeze: scroll and pair positions stop moving while the
	// actor falls to the floor.
	frozen := s.Snapshot()
	for i := 0; i < 300; i++ {
		stepOnce(t, s)
	}
	after := s.Snapshot()
	if after.Scroll != frozen.Scroll {
		t.Errorf("scroll advanced from %v to %v after death", frozen.Scroll, after.Scroll)
	}
	for i := range frozen.Pairs {
		if after.Pairs[i].ScreenX != frozen.Pairs[i].ScreenX {
			t.Errorf("pair %d moved after death", i)
		}
	}
	if after.ActorY != after.FloorY-cfg.ActorH/2 {
		t.Errorf("dead actor at %v, expected to rest on the floor", after.ActorY)
	}
}

func TestSessionZoneCollision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShiftRange = 0
	s := newTestSession(t, cfg)

	s.Flap()
	stepOnce(t, s)

	// A deadly zone in the open air of the gap: intentional gameplay, not a
	// collision bug. The actor fits in the gap but dies on the zone.
	p := s.ring.At(0)
	p.WorldX = s.scroll + cfg.ActorX
	gapTop := s.ring.GapCenter(p) - cfg.GapHeight/2
	p.Extra = append(p.Extra, RectSpec{X: 0, Y: gapTop, W: cfg.PairWidth, H: cfg.GapHeight})
	s.actor.Y = s.ring.GapCenter(p)
	s.actor.VelY = 0

	stepOnce(t, s)
	if s.State() != StateDead {
		t.Fatal("zone inside the gap should kill")
	}
	if s.Cause() != CauseZone {
		t.Errorf("death cause %v, expected zone", s.Cause())
	}
}

func TestSessionFlapWhileDeadResetsSynchronously(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(t, cfg)

	s.Flap()
	for i := 0; i < 600 && s.State() != StateDead; i++ {
		stepOnce(t, s)
	}
	if s.State() != StateDead {
		t.Fatal("session never died")
	}
	if s.Snapshot().Scroll == 0 {
		t.Fatal("expected some scroll distance before death")
	}

	// The reviving flap resets everything and re-enters playing within the
	// same call, impulse already applied.
	s.Flap()
	if s.State() != StatePlaying {
		t.Fatalf("state %v immediately after reviving flap, expected playing", s.State())
	}

	snap := s.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score %d after reset, expected 0", snap.Score)
	}
	if snap.Scroll != 0 {
		t.Errorf("scroll %v after reset, expected 0", snap.Scroll)
	}
	if snap.Ticks != 0 {
		t.Errorf("tick counter %d after reset, expected 0", snap.Ticks)
	}
	if snap.ActorVelY != cfg.FlapImpulse {
		t.Errorf("velocity %v after reset, expected %v", snap.ActorVelY, cfg.FlapImpulse)
	}
	if front := snap.Pairs[0]; front.ScreenX != cfg.FirstPairX {
		t.Errorf("front pair at %v after reset, expected %v", front.ScreenX, cfg.FirstPairX)
	}
	for i := 1; i < len(snap.Pairs); i++ {
		want := cfg.FirstPairX + float64(i)*cfg.PairSpacing
		if snap.Pairs[i].ScreenX != want {
			t.Errorf("pair %d at %v after reset, expected %v", i, snap.Pairs[i].ScreenX, want)
		}
	}
}

func TestSessionScoreMonotonicWhilePlaying(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GapHeight = 440 // all but open sky: survival is guaranteed below
	cfg.ShiftRange = 0

	var notified []int
	cfg.OnScoreChange = func(score int) { notified = append(notified, score) }

	s := newTestSession(t, cfg)
	s.Flap()

	prev := 0
	for i := 0; i < 3000; i++ {
		// Bang-bang altitude hold around the start altitude keeps the
		// actor mid-gap indefinitely.
		if s.Snapshot().ActorY > cfg.StartY {
			s.Flap()
		}
		stepOnce(t, s)

		snap := s.Snapshot()
		if snap.State == StateDead {
			t.Fatalf("actor died at tick %d (altitude hold failed)", i)
		}
		if snap.Score < prev {
			t.Fatalf("score regressed from %d to %d at tick %d", prev, snap.Score, i)
		}
		prev = snap.Score
	}

	if prev < 10 {
		t.Errorf("expected a double-digit score after 3000 ticks, got %d", prev)
	}
	for i := 1; i < len(notified); i++ {
		if notified[i] <= notified[i-1] {
			t.Errorf("score notifications not increasing: %v", notified)
		}
	}
	if len(notified) != prev {
		t.Errorf("%d notifications for final score %d: changes must fire exactly once", len(notified), prev)
	}
}

func TestSessionDeterminismAcrossFrameSplits(t *testing.T) {
	// The same elapsed wall time split into arbitrary frame deltas yields a
	// bitwise-identical trajectory at equal tick counts.
	cfg := DefaultConfig()
	g1 := newTestSession(t, cfg)
	g2 := newTestSession(t, cfg)

	g1.Flap()
	g2.Flap()

	step := cfg.FixedStep
	for i := 0; i < 600; i++ {
		g1.Advance(step)
	}

	chunks := rand.New(rand.NewSource(99))
	for g2.Snapshot().Ticks < 600 {
		g2.Advance(chunks.Float64() * cfg.MaxFrameDelta)
	}
	// The last chunk may have overshot; bring g1 level.
	for g1.Snapshot().Ticks < g2.Snapshot().Ticks {
		g1.Advance(step)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("trajectories diverged at tick %d:\n  split A: %+v\n  split B: %+v", s1.Ticks, s1, s2)
	}
}

func TestSessionSnapshotIdempotent(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	s.Flap()
	for i := 0; i < 90; i++ {
		stepOnce(t, s)
	}

	s1 := s.Snapshot()
	s2 := s.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Error("two snapshots without an intervening advance differ")
	}
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fixed step", func(c *Config) { c.FixedStep = 0 }},
		{"negative fixed step", func(c *Config) { c.FixedStep = -0.01 }},
		{"zero pair spacing", func(c *Config) { c.PairSpacing = 0 }},
		{"negative pair spacing", func(c *Config) { c.PairSpacing = -10 }},
		{"zero pair width", func(c *Config) { c.PairWidth = 0 }},
		{"empty ring", func(c *Config) { c.RingSize = 0 }},
		{"clamp below step", func(c *Config) { c.MaxFrameDelta = c.FixedStep / 2 }},
		{"negative shift range", func(c *Config) { c.ShiftRange = -5 }},
		{"gap taller than play area", func(c *Config) { c.GapHeight = c.WorldH }},
		{"floor above world", func(c *Config) { c.FloorH = c.WorldH }},
		{"empty band", func(c *Config) { c.Bands = []BandConfig{{Name: "x", Spacing: 10, Count: 0}} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := NewSession(cfg); err == nil {
				t.Error("NewSession() accepted an invalid config")
			}
		})
	}
}

func TestSessionSameSeedSameRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12345

	run := func() Snapshot {
		s := newTestSession(t, cfg)
		s.Flap()
		for i := 0; i < 400; i++ {
			if i%20 == 0 {
				s.Flap()
			}
			stepOnce(t, s)
		}
		return s.Snapshot()
	}

	if s1, s2 := run(), run(); !reflect.DeepEqual(s1, s2) {
		t.Error("identical seed and inputs produced different states")
	}
}

func TestSessionBestScoreSurvivesRevive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GapHeight = 440
	cfg.ShiftRange = 0
	s := newTestSession(t, cfg)

	// Fly with the altitude hold until a few pairs are scored.
	s.Flap()
	for i := 0; s.Score() < 3; i++ {
		if i > 5000 {
			t.Fatal("never reached score 3")
		}
		if s.Snapshot().ActorY > cfg.StartY {
			s.Flap()
		}
		stepOnce(t, s)
	}
	// Stop flapping and fall to the floor. The score may still tick up
	// during the fall, so the peak is read at death.
	for i := 0; s.State() != StateDead; i++ {
		if i > 600 {
			t.Fatal("actor never died after flapping stopped")
		}
		stepOnce(t, s)
	}
	peak := s.Score()

	// The reviving flap starts a fresh round but keeps the best.
	s.Flap()
	if s.Score() != 0 {
		t.Errorf("score %d after revive, expected 0", s.Score())
	}
	if s.Best() != peak {
		t.Errorf("best %d after revive, expected %d", s.Best(), peak)
	}
	if got := s.Snapshot().Best; got != peak {
		t.Errorf("snapshot best %d, expected %d", got, peak)
	}

	// A full reset clears the best.
	s.Reset(cfg.Seed)
	if s.Best() != 0 {
		t.Errorf("best %d after reset, expected 0", s.Best())
	}
}

func TestSessionResetMatchesFreshSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	ref := newTestSession(t, cfg)

	other := cfg
	other.Seed = 3
	s := newTestSession(t, other)

	// Burn through some of the old seed's state first.
	s.Flap()
	for i := 0; i < 200; i++ {
		if i%15 == 0 {
			s.Flap()
		}
		stepOnce(t, s)
	}

	s.Reset(cfg.Seed)
	if s.State() != StateIdle {
		t.Fatalf("state %v after reset, expected idle", s.State())
	}

	// Identical inputs from here on must produce identical trajectories.
	drive := func(x *Session) {
		x.Flap()
		for i := 0; i < 300; i++ {
			if i%20 == 0 {
				x.Flap()
			}
			stepOnce(t, x)
		}
	}
	drive(ref)
	drive(s)

	if s1, s2 := ref.Snapshot(), s.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("reset session diverged from a fresh one:\n  fresh: %+v\n  reset: %+v", s1, s2)
	}
}
