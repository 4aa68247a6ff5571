package mobile

import (
	"testing"

	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
)

const frameDt = 1.0 / 60.0

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(registry.Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 60, Seed: 7})
	return g
}

func TestAnyTapFlaps(t *testing.T) {
	for _, action := range []core.Action{core.ActionFlap, core.ActionRestart, core.ActionConfirm} {
		g := newTestGame(t)

		in := core.NewInputFrame()
		in.Set(action)
		g.Step(in, frameDt)

		if g.session.State().String() != "playing" {
			t.Errorf("%v should start the round like a tap", action)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := newTestGame(t)
		var state core.GameState
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Set(core.ActionFlap)
			}
			state = g.Step(in, frameDt).State
		}
		return state
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)

	screen := core.NewScreen(40, 30)
	g.Render(screen)

	hasContent := false
	for _, ch := range screen.String() {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("mobile") {
		t.Fatal("mobile variant is not registered")
	}
}
