// Package tui provides the Bubble Tea integration for Flappy Nerd.
// It handles the terminal UI loop, input mapping, frame timing, and
// variant orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame. The wall-clock time it carries
// is what the frame delta is measured from; the simulation itself steps at
// its own fixed rate inside the variant.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
