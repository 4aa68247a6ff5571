package sim

import (
	"math/rand"

	"github.com/gagank1/Flappy-Nerd/internal/core"
)

// Ring is the fixed-size recycling collection of obstacle pairs. The pairs
// live in a flat arena; head indexes the front-most (smallest WorldX) pair,
// so a recycle is a head rotation rather than a reallocation. Ring order is
// always ascending WorldX at exactly PairSpacing intervals.
type Ring struct {
	cfg   *Config
	rng   *rand.Rand
	pairs []ObstaclePair
	head  int
}

// newRing allocates and seeds the arena.
func newRing(cfg *Config, rng *rand.Rand) *Ring {
	r := &Ring{
		cfg:   cfg,
		rng:   rng,
		pairs: make([]ObstaclePair, cfg.RingSize),
	}
	r.reset()
	return r
}

// reset re-seeds every pair with sequential spacing from FirstPairX, fresh
// random shifts, and cleared transient state, then re-runs the content hook.
func (r *Ring) reset() {
	r.head = 0
	for i := range r.pairs {
		p := &r.pairs[i]
		p.WorldX = r.cfg.FirstPairX + float64(i)*r.cfg.PairSpacing
		p.Shift = r.randomShift()
		p.Passed = false
		p.Extra = p.Extra[:0]
		if r.cfg.OnRecycle != nil {
			r.cfg.OnRecycle(i, p, r.rng)
		}
	}
}

// Len returns the number of pairs in the ring.
func (r *Ring) Len() int {
	return len(r.pairs)
}

// At returns the i-th pair in scroll order: At(0) is the front-most
// (smallest WorldX), At(Len()-1) the tail.
func (r *Ring) At(i int) *ObstaclePair {
	return &r.pairs[(r.head+i)%len(r.pairs)]
}

// recycle relocates the front-most pair behind the tail once it has fully
// left the viewport plus the configured margin. At most one pair moves per
// call; the spacing guarantees no reachable scroll speed ever needs two.
// Returns the recycled pair's arena slot and whether a recycle happened.
func (r *Ring) recycle(scroll float64) (int, bool) {
	front := r.At(0)
	if front.WorldX-scroll+r.cfg.PairWidth >= -r.cfg.RecycleMargin {
		return 0, false
	}

	slot := r.head
	tail := r.At(len(r.pairs) - 1)
	front.WorldX = tail.WorldX + r.cfg.PairSpacing
	front.Shift = r.randomShift()
	front.Passed = false
	front.Extra = front.Extra[:0]
	if r.cfg.OnRecycle != nil {
		r.cfg.OnRecycle(slot, front, r.rng)
	}

	r.head = (r.head + 1) % len(r.pairs)
	return slot, true
}

// randomShift draws a gap-center shift uniformly from ±ShiftRange.
func (r *Ring) randomShift() float64 {
	if r.cfg.ShiftRange == 0 {
		return 0
	}
	return (r.rng.Float64()*2 - 1) * r.cfg.ShiftRange
}

// GapCenter returns the altitude of the pair's gap center.
func (r *Ring) GapCenter(p *ObstaclePair) float64 {
	return r.cfg.gapCenterBase() + p.Shift
}

// TopRect returns the solid bounds of the pair's upper pipe in world
// coordinates.
func (r *Ring) TopRect(p *ObstaclePair) core.RectF {
	gapTop := r.GapCenter(p) - r.cfg.GapHeight/2
	return core.NewRectF(p.WorldX, 0, r.cfg.PairWidth, gapTop)
}

// BottomRect returns the solid bounds of the pair's lower pipe in world
// coordinates, extending down to the ground.
func (r *Ring) BottomRect(p *ObstaclePair) core.RectF {
	gapBottom := r.GapCenter(p) + r.cfg.GapHeight/2
	return core.NewRectF(p.WorldX, gapBottom, r.cfg.PairWidth, r.cfg.floorY()-gapBottom)
}
