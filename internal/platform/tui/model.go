package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
)

// Model is the Bubble Tea model for running one variant. It collects input
// between frames and feeds each frame's measured wall-clock delta to the
// variant, which converts it into fixed simulation steps.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastFrame  time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given variant.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// A tap anywhere is a flap.
		if msg.Action == tea.MouseActionPress {
			m.inputFrame.Set(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps running; only
// the cell buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs one render frame: measure the elapsed wall time, hand it
// with the collected input to the variant, and schedule the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// closeGame releases any resources a variant holds open, such as the quiz
// variant's answer store. Variants without resources are left untouched.
func closeGame(game registry.Game) {
	if c, ok := game.(io.Closer); ok {
		_ = c.Close()
	}
}

// Run starts the Bubble Tea program with the given model. The variant is
// closed when the run ends, whatever way it ends.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	defer closeGame(game)

	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps count as flaps
	)

	_, err := p.Run()
	return err
}
