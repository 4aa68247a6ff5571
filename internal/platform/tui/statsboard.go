package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gagank1/Flappy-Nerd/internal/storage"
)

const maxStatsRows = 200 // Max questions to show

// StatsKeyMap defines the key bindings for the quiz stats board.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the quiz stats screen: per-question
// answer history, worst accuracy first.
type StatsModel struct {
	store     *storage.Store
	stats     []storage.QuestionStats
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a new stats model.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadStats()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	promptW := m.width - 46
	if promptW < 16 {
		promptW = 16
	}
	columns := []table.Column{
		{Title: "Question", Width: promptW},
		{Title: "Topic", Width: 10},
		{Title: "Asked", Width: 7},
		{Title: "Correct", Width: 8},
		{Title: "Accuracy", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadStats loads the answer history from the store.
func (m *StatsModel) loadStats() {
	if m.store == nil {
		m.stats = nil
		m.updateTableRows()
		return
	}

	stats, err := m.store.Stats()
	if err != nil {
		m.stats = nil
	} else {
		if len(stats) > maxStatsRows {
			stats = stats[:maxStatsRows]
		}
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current stats.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.stats))
	for i, st := range m.stats {
		rows[i] = table.Row{
			st.Prompt,
			st.Topic,
			fmt.Sprintf("%d", st.Asked),
			fmt.Sprintf("%d", st.Correct),
			fmt.Sprintf("%.0f%%", st.Accuracy*100),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats board.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats board.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("QUIZ STATS - worst first", m.width)))
	b.WriteString("\n\n")

	if len(m.stats) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No answers recorded yet.\nPlay the quiz variant to build a history!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the stats screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
