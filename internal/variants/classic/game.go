// Package classic implements the desktop-sized Flappy Nerd variant: the
// original canvas tuning rendered onto the terminal cell grid.
package classic

import (
	"fmt"

	"github.com/gagank1/Flappy-Nerd/internal/config"
	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
	"github.com/gagank1/Flappy-Nerd/internal/sim"
)

// Visual characters for rendering
const (
	ActorChar     = '▶'
	ActorBody     = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	CloudChar     = '░'
	TreeChar      = '▲'
)

// Game adapts a simulation session to the platform game interface.
type Game struct {
	simCfg  sim.Config
	session *sim.Session
	rt      core.RuntimeConfig
	paused  bool
}

// New creates a classic game instance with its configuration resolved.
func New(opts registry.Options) (*Game, error) {
	vc, err := config.LoadVariant("classic", opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	g := &Game{simCfg: vc.ToSim(0)}
	sess, err := sim.NewSession(g.simCfg)
	if err != nil {
		return nil, fmt.Errorf("classic: %w", err)
	}
	g.session = sess
	return g, nil
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return "classic"
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return "Flappy Nerd"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.paused = false
	g.session.Reset(cfg.Seed)
}

// Step consumes one render frame: input actions plus the wall-clock delta.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() == sim.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFlap) || in.Has(core.ActionRestart) {
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
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()
	v := newViewport(snap, dst)

	for _, band := range snap.Bands {
		v.drawBand(band)
	}
	for _, pair := range snap.Pairs {
		v.drawPair(pair)
	}
	v.drawFloor()
	v.drawActor(snap)
	v.drawHUD(snap, g.paused)
}

// viewport maps world coordinates onto the terminal cell grid.
type viewport struct {
	dst    *core.Screen
	scaleX float64
	scaleY float64
	floorY int
}

func newViewport(snap sim.Snapshot, dst *core.Screen) viewport {
	v := viewport{
		dst:    dst,
		scaleX: float64(dst.Width()) / snap.WorldW,
		scaleY: float64(dst.Height()) / snap.WorldH,
	}
	v.floorY = v.cellY(snap.FloorY)
	if v.floorY >= dst.Height() {
		v.floorY = dst.Height() - 1
	}
	return v
}

func (v viewport) cellX(wx float64) int {
	return int(wx * v.scaleX)
}

func (v viewport) cellY(wy float64) int {
	return int(wy * v.scaleY)
}

// drawBand renders one decorative parallax layer.
func (v viewport) drawBand(band sim.BandView) {
	var ch rune
	var color core.Color
	var y int
	switch band.Name {
	case "clouds":
		ch, color, y = CloudChar, core.ColorWhite, 2
	case "trees":
		ch, color, y = TreeChar, core.ColorGreen, v.floorY-1
	case "ground":
		// The ground band is drawn as the floor itself.
		return
	default:
		ch, color, y = CloudChar, core.ColorGray, 3
	}

	w := core.Max(v.cellX(band.Width), 1)
	for _, wx := range band.Xs {
		v.dst.DrawHLine(v.cellX(wx), y, w, ch, color)
	}
}

// drawPair renders one obstacle pair: two pipe columns plus any extra
// solid rectangles attached to it.
func (v viewport) drawPair(pair sim.PairView) {
	v.drawColumn(pair.Top, PipeCapTop)
	v.drawColumn(pair.Bottom, PipeCapBottom)
	for _, zone := range pair.Extra {
		v.drawZone(zone)
	}
}

// drawColumn fills a solid pipe rectangle and marks its gap-facing edge.
func (v viewport) drawColumn(r core.RectF, capChar rune) {
	x0, x1 := v.cellX(r.X), v.cellX(r.Right())
	y0, y1 := v.cellY(r.Y), v.cellY(r.Bottom())
	if y1 > v.floorY {
		y1 = v.floorY
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.dst.SetCell(x, y, PipeChar, core.ColorGreen)
		}
	}
	// Cap row on the gap side
	capY := y1 - 1
	if capChar == PipeCapBottom {
		capY = y0
	}
	if y1 > y0 {
		v.dst.DrawHLine(x0, capY, core.Max(x1-x0, 1), capChar, core.ColorGreen)
	}
}

// drawZone renders an extra deadly rectangle.
func (v viewport) drawZone(r core.RectF) {
	x0, x1 := v.cellX(r.X), v.cellX(r.Right())
	y0, y1 := v.cellY(r.Y), v.cellY(r.Bottom())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.dst.SetCell(x, y, '▒', core.ColorRed)
		}
	}
}

// drawFloor renders the ground line and fill below it.
func (v viewport) drawFloor() {
	v.dst.DrawHLine(0, v.floorY, v.dst.Width(), GroundChar, core.ColorYellow)
	for y := v.floorY + 1; y < v.dst.Height(); y++ {
		v.dst.DrawHLine(0, y, v.dst.Width(), '░', core.ColorYellow)
	}
}

// drawActor renders the player at its screen-space position.
func (v viewport) drawActor(snap sim.Snapshot) {
	x := v.cellX(snap.ActorX - snap.ActorW/2)
	y := v.cellY(snap.ActorY - snap.ActorH/2)
	w := core.Max(v.cellX(snap.ActorW), 1)
	h := core.Max(v.cellY(snap.ActorH), 1)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := ActorBody
			if dx == w-1 && dy == 0 {
				ch = ActorChar
			}
			v.dst.SetCell(x+dx, y+dy, ch, core.ColorYellow)
		}
	}
}

// drawHUD renders the score line and any state overlay.
func (v viewport) drawHUD(snap sim.Snapshot, paused bool) {
	v.dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best), core.ColorWhite)

	switch {
	case paused:
		v.drawCenteredMessage("PAUSED", "Press P to resume")
	case snap.State == sim.StateIdle:
		v.drawCenteredMessage("FLAPPY NERD", "Press Space to start")
	case snap.State == sim.StateDead:
		v.drawCenteredMessage("GAME OVER", fmt.Sprintf("Score: %d  Best: %d  |  Space to retry", snap.Score, snap.Best))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (v viewport) drawCenteredMessage(title, subtitle string) {
	w := v.dst.Width()
	h := v.dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	v.dst.DrawRect(box, ' ', core.ColorDefault)
	v.dst.DrawBox(box)

	v.dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	v.dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the variant with the registry
func init() {
	registry.Register("classic", "Flappy Nerd", func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}
