// Package mobile implements the portrait Flappy Nerd variant: a narrower,
// taller world with touch-style input where any tap is a flap.
package mobile

import (
	"fmt"

	"github.com/gagank1/Flappy-Nerd/internal/config"
	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
	"github.com/gagank1/Flappy-Nerd/internal/sim"
)

const (
	actorChar  = '◉'
	pipeChar   = '█'
	groundChar = '▒'
	cloudChar  = '~'
)

// Game adapts a portrait simulation session to the platform game interface.
type Game struct {
	simCfg  sim.Config
	session *sim.Session
	rt      core.RuntimeConfig
}

// New creates a mobile game instance with its configuration resolved.
func New(opts registry.Options) (*Game, error) {
	vc, err := config.LoadVariant("mobile", opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	g := &Game{simCfg: vc.ToSim(0)}
	sess, err := sim.NewSession(g.simCfg)
	if err != nil {
		return nil, fmt.Errorf("mobile: %w", err)
	}
	g.session = sess
	return g, nil
}

func (g *Game) ID() string {
	return "mobile"
}

func (g *Game) Title() string {
	return "Flappy Nerd Mobile"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.session.Reset(cfg.Seed)
}

// Step consumes one render frame. There is no pause on mobile: every tap,
// whatever key produced it, is a flap.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionFlap) || in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		g.session.Flap()
	}
	steps := g.session.Advance(dt)
	return core.StepResult{State: g.State(), Steps: steps}
}

// State returns the current presentation state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		GameOver: g.session.State() == sim.StateDead,
	}
}

// Render draws the portrait world centered in the terminal, using only as
// many columns as the world's aspect ratio allows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	// Terminal cells are roughly twice as tall as wide; the 0.5 keeps the
	// portrait world from looking squashed.
	viewW := int(float64(dst.Height()) * snap.WorldW / snap.WorldH * 0.5)
	viewW = core.Clamp(viewW, 10, dst.Width())
	offX := (dst.Width() - viewW) / 2

	sx := float64(viewW) / snap.WorldW
	sy := float64(dst.Height()) / snap.WorldH
	cx := func(wx float64) int { return offX + int(wx*sx) }
	cy := func(wy float64) int { return int(wy * sy) }

	floorRow := core.Min(cy(snap.FloorY), dst.Height()-1)

	// Side gutters
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < offX; x++ {
			dst.SetCell(x, y, '·', core.ColorGray)
		}
		for x := offX + viewW; x < dst.Width(); x++ {
			dst.SetCell(x, y, '·', core.ColorGray)
		}
	}

	for _, band := range snap.Bands {
		if band.Name != "clouds" {
			continue
		}
		for _, wx := range band.Xs {
			dst.DrawHLine(cx(wx), 2, core.Max(int(band.Width*sx), 1), cloudChar, core.ColorWhite)
		}
	}

	for _, pair := range snap.Pairs {
		g.drawColumn(dst, pair.Top, cx, cy, floorRow)
		g.drawColumn(dst, pair.Bottom, cx, cy, floorRow)
		for _, zone := range pair.Extra {
			g.drawColumn(dst, zone, cx, cy, floorRow)
		}
	}

	for y := floorRow; y < dst.Height(); y++ {
		dst.DrawHLine(offX, y, viewW, groundChar, core.ColorYellow)
	}

	dst.SetCell(cx(snap.ActorX), cy(snap.ActorY), actorChar, core.ColorYellow)

	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score))
	switch snap.State {
	case sim.StateIdle:
		dst.DrawTextCentered(dst.Height()/2, "TAP TO START")
	case sim.StateDead:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("GAME OVER - %d (best %d)", snap.Score, snap.Best))
		dst.DrawTextCentered(dst.Height()/2+1, "tap to retry")
	}
}

func (g *Game) drawColumn(dst *core.Screen, r core.RectF, cx, cy func(float64) int, floorRow int) {
	x0, x1 := cx(r.X), cx(r.Right())
	y0, y1 := cy(r.Y), core.Min(cy(r.Bottom()), floorRow)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, pipeChar, core.ColorGreen)
		}
	}
}

// Register the variant with the registry
func init() {
	registry.Register("mobile", "Flappy Nerd Mobile", func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}
