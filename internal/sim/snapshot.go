package sim

import "github.com/gagank1/Flappy-Nerd/internal/core"

// PairView is the render-facing view of one obstacle pair, with all bounds
// already translated to screen space.
type PairView struct {
	Slot    int
	ScreenX float64
	Top     core.RectF
	Bottom  core.RectF
	Extra   []core.RectF
	Passed  bool
}

// BandView is the render-facing view of one decorative band.
type BandView struct {
	Name  string
	Width float64
	Xs    []float64
}

// Snapshot is the read-only render state, taken once per rendered frame and
// decoupled from the tick rate. Every slice is freshly allocated, so two
// snapshots without an intervening Advance are identical and neither
// aliases live simulation state.
type Snapshot struct {
	State State
	Cause DeathCause
	Ticks uint64

	Scroll float64
	Score  int
	Best   int

	ActorX     float64 // Viewport-fixed horizontal center
	ActorY     float64
	ActorVelY  float64
	ActorW     float64
	ActorH     float64
	Descending bool

	WorldW float64
	WorldH float64
	FloorY float64

	Pairs []PairView
	Bands []BandView
}

// Snapshot captures the current render state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State: s.state,
		Cause: s.cause,
		Ticks: s.ticks,

		Scroll: s.scroll,
		Score:  s.score,
		Best:   s.best,

		ActorX:     s.cfg.ActorX,
		ActorY:     s.actor.Y,
		ActorVelY:  s.actor.VelY,
		ActorW:     s.cfg.ActorW,
		ActorH:     s.cfg.ActorH,
		Descending: s.actor.Descending(),

		WorldW: s.cfg.WorldW,
		WorldH: s.cfg.WorldH,
		FloorY: s.cfg.floorY(),

		Pairs: make([]PairView, 0, s.ring.Len()),
		Bands: make([]BandView, 0, len(s.bands)),
	}

	for i := 0; i < s.ring.Len(); i++ {
		p := s.ring.At(i)
		screenX := p.WorldX - s.scroll

		top := s.ring.TopRect(p)
		top.X = screenX
		bottom := s.ring.BottomRect(p)
		bottom.X = screenX

		pv := PairView{
			Slot:    (s.ring.head + i) % s.ring.Len(),
			ScreenX: screenX,
			Top:     top,
			Bottom:  bottom,
			Passed:  p.Passed,
		}
		for _, e := range p.Extra {
			pv.Extra = append(pv.Extra, core.NewRectF(screenX+e.X, e.Y, e.W, e.H))
		}
		snap.Pairs = append(snap.Pairs, pv)
	}

	for _, b := range s.bands {
		snap.Bands = append(snap.Bands, BandView{
			Name:  b.Name(),
			Width: b.Width(),
			Xs:    b.screenXs(s.scroll, nil),
		})
	}

	return snap
}
