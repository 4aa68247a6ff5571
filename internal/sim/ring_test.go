package sim

import (
	"math"
	"math/rand"
	"testing"
)

func testRing(t *testing.T, cfg Config) *Ring {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
	return newRing(&cfg, rand.New(rand.NewSource(7)))
}

// checkSpacing asserts the ring invariant: exactly N pairs in strictly
// increasing WorldX order, spaced by the fixed constant.
func checkSpacing(t *testing.T, r *Ring, cfg Config) {
	t.Helper()
	if r.Len() != cfg.RingSize {
		t.Fatalf("ring holds %d pairs, expected %d", r.Len(), cfg.RingSize)
	}
	for i := 1; i < r.Len(); i++ {
		prev, cur := r.At(i-1), r.At(i)
		if cur.WorldX <= prev.WorldX {
			t.Fatalf("pair %d at %v not after pair %d at %v", i, cur.WorldX, i-1, prev.WorldX)
		}
		if gap := cur.WorldX - prev.WorldX; math.Abs(gap-cfg.PairSpacing) > 1e-9 {
			t.Fatalf("spacing between pairs %d and %d is %v, expected %v", i-1, i, gap, cfg.PairSpacing)
		}
	}
}

func TestRingInitialSeeding(t *testing.T) {
	cfg := DefaultConfig()
	r := testRing(t, cfg)

	checkSpacing(t, r, cfg)
	if front := r.At(0); front.WorldX != cfg.FirstPairX {
		t.Errorf("front pair at %v, expected %v", front.WorldX, cfg.FirstPairX)
	}
	for i := 0; i < r.Len(); i++ {
		if s := r.At(i).Shift; s < -cfg.ShiftRange || s > cfg.ShiftRange {
			t.Errorf("pair %d shift %v outside ±%v", i, s, cfg.ShiftRange)
		}
	}
}

func TestRingRecycleRotatesFrontToBack(t *testing.T) {
	cfg := DefaultConfig()
	r := testRing(t, cfg)

	// Not yet off screen: nothing recycles.
	if _, ok := r.recycle(0); ok {
		t.Fatal("recycled a pair that is still ahead of the viewport")
	}

	// Scroll until the front pair is past the rear margin.
	scroll := cfg.FirstPairX + cfg.PairWidth + cfg.RecycleMargin + 1
	oldTail := r.At(r.Len() - 1).WorldX

	slot, ok := r.recycle(scroll)
	if !ok {
		t.Fatal("expected a recycle")
	}
	if slot != 0 {
		t.Errorf("first recycle should rotate arena slot 0, got %d", slot)
	}

	checkSpacing(t, r, cfg)
	if tail := r.At(r.Len() - 1); tail.WorldX != oldTail+cfg.PairSpacing {
		t.Errorf("new tail at %v, expected %v", tail.WorldX, oldTail+cfg.PairSpacing)
	}

	// Only one recycle per tick, even at the same scroll position.
	if _, ok := r.recycle(scroll); ok {
		t.Error("a second pair recycled at the same scroll position")
	}
}

func TestRingInvariantOverLongScroll(t *testing.T) {
	cfg := DefaultConfig()
	r := testRing(t, cfg)

	recycles := 0
	for scroll := 0.0; scroll < 60000; scroll += cfg.ScrollSpeed * cfg.FixedStep {
		if _, ok := r.recycle(scroll); ok {
			recycles++
			checkSpacing(t, r, cfg)
		}
	}
	if recycles < 100 {
		t.Errorf("expected well over 100 recycles across 60000 units, got %d", recycles)
	}
}

func TestRingRecycleClearsTransientState(t *testing.T) {
	cfg := DefaultConfig()
	r := testRing(t, cfg)

	front := r.At(0)
	front.Passed = true
	front.Extra = append(front.Extra, RectSpec{X: 0, Y: 100, W: 50, H: 50})

	scroll := cfg.FirstPairX + cfg.PairWidth + cfg.RecycleMargin + 1
	if _, ok := r.recycle(scroll); !ok {
		t.Fatal("expected a recycle")
	}

	recycled := r.At(r.Len() - 1)
	if recycled.Passed {
		t.Error("recycle should clear the passed flag")
	}
	if len(recycled.Extra) != 0 {
		t.Error("recycle should clear extra rects")
	}
}

func TestRingRecycleRunsContentHook(t *testing.T) {
	cfg := DefaultConfig()
	var seeded []int
	cfg.OnRecycle = func(slot int, p *ObstaclePair, rng *rand.Rand) {
		seeded = append(seeded, slot)
		p.Extra = append(p.Extra, RectSpec{X: 0, Y: 0, W: 1, H: 1})
	}
	r := testRing(t, cfg)

	if len(seeded) != cfg.RingSize {
		t.Fatalf("hook ran %d times at seeding, expected %d", len(seeded), cfg.RingSize)
	}

	seeded = seeded[:0]
	scroll := cfg.FirstPairX + cfg.PairWidth + cfg.RecycleMargin + 1
	if _, ok := r.recycle(scroll); !ok {
		t.Fatal("expected a recycle")
	}
	if len(seeded) != 1 || seeded[0] != 0 {
		t.Errorf("hook calls after recycle = %v, expected [0]", seeded)
	}
	// The hook re-populated the cleared extra rects.
	if got := len(r.At(r.Len() - 1).Extra); got != 1 {
		t.Errorf("recycled pair has %d extra rects, expected 1", got)
	}
}

func TestRingPipeRects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShiftRange = 0 // deterministic gap center
	r := testRing(t, cfg)

	p := r.At(0)
	top := r.TopRect(p)
	bottom := r.BottomRect(p)

	gapCenter := (cfg.WorldH - cfg.FloorH) / 2
	if top.Y != 0 || top.Bottom() != gapCenter-cfg.GapHeight/2 {
		t.Errorf("top rect spans [%v, %v]", top.Y, top.Bottom())
	}
	if bottom.Y != gapCenter+cfg.GapHeight/2 {
		t.Errorf("bottom rect starts at %v", bottom.Y)
	}
	if bottom.Bottom() != cfg.WorldH-cfg.FloorH {
		t.Errorf("bottom rect should end at the ground, ends at %v", bottom.Bottom())
	}
	if top.W != cfg.PairWidth || bottom.W != cfg.PairWidth {
		t.Error("pipe rects should span the pair width")
	}

	// The gap itself is open air.
	if top.Intersects(bottom) {
		t.Error("top and bottom pipes overlap")
	}
}
