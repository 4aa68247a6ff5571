// Package quizmode implements the quiz variant: every few pipes carry a
// question, with the correct answer on one half of the gap and a deadly
// zone over the wrong half. Flying through the wrong answer ends the round.
package quizmode

import (
	"fmt"
	"math/rand"

	"github.com/gagank1/Flappy-Nerd/internal/config"
	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/quiz"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
	"github.com/gagank1/Flappy-Nerd/internal/sim"
	"github.com/gagank1/Flappy-Nerd/internal/storage"
)

const (
	pipeChar   = '█'
	zoneChar   = '▒'
	groundChar = '═'
	actorChar  = '▶'
)

// slotContent tracks the question attached to one ring slot.
type slotContent struct {
	q          quiz.Question
	active     bool
	correctTop bool // Correct answer sits in the top half of the gap
	recorded   bool
}

// Game adapts a simulation session into a quiz run. Answer outcomes are
// written to the store when one is available.
type Game struct {
	simCfg   sim.Config
	zoneW    float64
	interval int
	bank     *quiz.Bank
	store    *storage.Store

	session *sim.Session
	rt      core.RuntimeConfig
	paused  bool

	slots   []slotContent
	counter int // Pairs populated since Reset, for question cadence

	correct  int
	wrong    int
	lastMiss *quiz.Question // Shown on the game-over screen
}

// New creates a quiz game instance. The question bank comes from the
// database when opts.DBPath is set and holds questions, otherwise from the
// embedded starter bank.
func New(opts registry.Options) (*Game, error) {
	vc, err := config.LoadVariant("quiz", opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		simCfg:   vc.ToSim(0),
		zoneW:    vc.Quiz.ZoneWidth,
		interval: vc.Quiz.ZoneInterval,
		bank:     quiz.DefaultBank(),
	}
	if g.zoneW <= 0 || g.zoneW > g.simCfg.PairWidth {
		g.zoneW = g.simCfg.PairWidth
	}
	if g.interval < 1 {
		g.interval = 1
	}

	if opts.DBPath != "" {
		store, err := storage.Open(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("quizmode: %w", err)
		}
		g.store = store
		if bank, err := store.LoadBank(); err == nil {
			g.bank = bank
		}
	}

	g.slots = make([]slotContent, g.simCfg.RingSize)
	g.simCfg.OnRecycle = g.populate
	sess, err := sim.NewSession(g.simCfg)
	if err != nil {
		return nil, fmt.Errorf("quizmode: %w", err)
	}
	g.session = sess
	return g, nil
}

func (g *Game) ID() string {
	return "quiz"
}

func (g *Game) Title() string {
	return "Flappy Nerd Quiz"
}

// Close releases the answer store, if any.
func (g *Game) Close() error {
	if g.store != nil {
		return g.store.Close()
	}
	return nil
}

// Reset initializes or restarts the game. The slot table must be cleared
// before the session reset, which re-runs the content hook for every pair.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.paused = false
	g.counter = 0
	g.correct = 0
	g.wrong = 0
	g.lastMiss = nil
	g.slots = make([]slotContent, g.simCfg.RingSize)

	g.session.Reset(cfg.Seed)
}

// populate is the ring content hook: every interval-th pair gets a question
// with a deadly zone over the wrong half of its gap.
func (g *Game) populate(slot int, p *sim.ObstaclePair, rng *rand.Rand) {
	g.slots[slot] = slotContent{}
	g.counter++
	if g.counter%g.interval != 0 {
		return
	}

	q := g.bank.Pick(rng)
	correctTop := rng.Intn(2) == 0

	floorY := g.simCfg.WorldH - g.simCfg.FloorH
	gapCenter := floorY/2 + p.Shift
	half := g.simCfg.GapHeight / 2

	// The zone covers the half that holds the wrong answer.
	zoneY := gapCenter
	if !correctTop {
		zoneY = gapCenter - half
	}

	p.Extra = append(p.Extra, sim.RectSpec{
		X: (g.simCfg.PairWidth - g.zoneW) / 2,
		Y: zoneY,
		W: g.zoneW,
		H: half,
	})
	g.slots[slot] = slotContent{q: q, active: true, correctTop: correctTop}
}

// Step consumes one render frame.
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
	if steps > 0 {
		g.collectResults()
	}
	return core.StepResult{State: g.State(), Steps: steps}
}

// collectResults turns pair passages and zone deaths into answer records.
func (g *Game) collectResults() {
	snap := g.session.Snapshot()

	for _, pv := range snap.Pairs {
		sc := &g.slots[pv.Slot]
		if !sc.active || sc.recorded {
			continue
		}
		switch {
		case pv.Passed:
			// Cleared alive, so the actor flew through the correct half.
			sc.recorded = true
			g.correct++
			g.record(sc.q, true)
		case snap.State == sim.StateDead && snap.Cause == sim.CauseZone && overlapsActor(pv, snap):
			sc.recorded = true
			g.wrong++
			miss := sc.q
			g.lastMiss = &miss
			g.record(sc.q, false)
		}
	}
}

// overlapsActor reports whether the pair column intersects the actor's
// horizontal extent.
func overlapsActor(pv sim.PairView, snap sim.Snapshot) bool {
	left := snap.ActorX - snap.ActorW/2
	right := snap.ActorX + snap.ActorW/2
	return pv.ScreenX < right && pv.ScreenX+pv.Top.W > left
}

func (g *Game) record(q quiz.Question, ok bool) {
	if g.store == nil {
		return
	}
	// Recording is best effort; a storage hiccup must not stop the round.
	_ = g.store.RecordAnswer(q, ok)
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

// Render draws the quiz world: pipes, answer zones with their answer texts,
// and the upcoming question in the banner row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	sx := float64(dst.Width()) / snap.WorldW
	sy := float64(dst.Height()) / snap.WorldH
	cx := func(wx float64) int { return int(wx * sx) }
	cy := func(wy float64) int { return int(wy * sy) }
	floorRow := core.Min(cy(snap.FloorY), dst.Height()-1)

	for _, pv := range snap.Pairs {
		g.drawSolid(dst, pv.Top, cx, cy, floorRow, pipeChar, core.ColorGreen)
		g.drawSolid(dst, pv.Bottom, cx, cy, floorRow, pipeChar, core.ColorGreen)
		for _, zone := range pv.Extra {
			g.drawSolid(dst, zone, cx, cy, floorRow, zoneChar, core.ColorRed)
		}
		g.drawAnswers(dst, pv, cx, cy)
	}

	dst.DrawHLine(0, floorRow, dst.Width(), groundChar, core.ColorYellow)
	dst.SetCell(cx(snap.ActorX), cy(snap.ActorY), actorChar, core.ColorYellow)

	g.drawHUD(dst, snap)
}

func (g *Game) drawSolid(dst *core.Screen, r core.RectF, cx, cy func(float64) int, floorRow int, ch rune, color core.Color) {
	x0, x1 := cx(r.X), cx(r.Right())
	y0, y1 := cy(r.Y), core.Min(cy(r.Bottom()), floorRow)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, ch, color)
		}
	}
}

// drawAnswers writes the two answer texts onto the gap halves of a
// question pair.
func (g *Game) drawAnswers(dst *core.Screen, pv sim.PairView, cx, cy func(float64) int) {
	sc := g.slots[pv.Slot]
	if !sc.active {
		return
	}

	topText, bottomText := sc.q.Wrong, sc.q.Correct
	if sc.correctTop {
		topText, bottomText = sc.q.Correct, sc.q.Wrong
	}

	gapTop := pv.Top.Bottom()
	gapBottom := pv.Bottom.Y
	center := (gapTop + gapBottom) / 2
	colX := cx(pv.ScreenX)

	dst.DrawTextColored(colX, cy((gapTop+center)/2), topText, core.ColorWhite)
	dst.DrawTextColored(colX, cy((center+gapBottom)/2), bottomText, core.ColorWhite)
}

// drawHUD renders the banner row and state overlays.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d  Best: %d  ✓%d ✗%d ", snap.Score, snap.Best, g.correct, g.wrong), core.ColorWhite)

	if q, ok := g.nextQuestion(snap); ok {
		dst.DrawTextCentered(1, fmt.Sprintf("[ %s ]", q.Prompt))
	}

	switch {
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case snap.State == sim.StateIdle:
		dst.DrawTextCentered(dst.Height()/2, "FLAPPY NERD QUIZ")
		dst.DrawTextCentered(dst.Height()/2+1, "fly through the right answer - Space to start")
	case snap.State == sim.StateDead:
		if g.lastMiss != nil && snap.Cause == sim.CauseZone {
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("WRONG! %s = %s", g.lastMiss.Prompt, g.lastMiss.Correct))
		} else {
			dst.DrawTextCentered(dst.Height()/2, "GAME OVER")
		}
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("score %d - Space to retry", snap.Score))
	}
}

// nextQuestion returns the question on the nearest unanswered pair ahead of
// the actor.
func (g *Game) nextQuestion(snap sim.Snapshot) (quiz.Question, bool) {
	best := -1
	for i, pv := range snap.Pairs {
		sc := g.slots[pv.Slot]
		if !sc.active || sc.recorded || pv.Passed {
			continue
		}
		if best == -1 || pv.ScreenX < snap.Pairs[best].ScreenX {
			best = i
		}
	}
	if best == -1 {
		return quiz.Question{}, false
	}
	return g.slots[snap.Pairs[best].Slot].q, true
}

// Register the variant with the registry
func init() {
	registry.Register("quiz", "Flappy Nerd Quiz", func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}
