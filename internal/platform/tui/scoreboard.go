package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossy/internal/storage"
)

// Scoreboard layout constants
const (
	maxStreaks = 100 // Max streaks to load
)

// ScoreboardKeyMap defines the key bindings for the streak board.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
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

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10")).
				MarginBottom(1)

	scoreboardStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				MarginTop(1)

	scoreboardBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// ScoreboardModel is the Bubble Tea model for the streak history screen.
type ScoreboardModel struct {
	store     *storage.Store
	streaks   []storage.StreakEntry
	stats     *storage.StreakStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadStreaks()

	return m
}

// createTable creates the streak table with appropriate dimensions.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Streak", Width: 10},
		{Title: "Date", Width: 18},
	}

	tableHeight := m.height - 8 // Title, stats, help, borders
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("14"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("10"))
	t.SetStyles(styles)

	return t
}

// loadStreaks populates the table from storage.
func (m *ScoreboardModel) loadStreaks() {
	if m.store == nil {
		return
	}

	streaks, err := m.store.TopStreaks(maxStreaks)
	if err != nil {
		return
	}
	m.streaks = streaks

	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}

	rows := make([]table.Row, 0, len(streaks))
	for i, e := range streaks {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Streak),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadStreaks()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("Crossy - Best Streaks")

	var body string
	if len(m.streaks) == 0 {
		body = "No streaks recorded yet.\n\nPlay 'crossy play' to set the first one!"
	} else {
		body = scoreboardBorderStyle.Render(m.table.View())
	}

	var statsLine string
	if m.stats != nil && m.stats.Count > 0 {
		statsLine = scoreboardStatsStyle.Render(fmt.Sprintf(
			"runs: %d   best: %d   avg: %.1f   crossings: %d",
			m.stats.Count, m.stats.Best, m.stats.AvgStreak, m.stats.TotalWins,
		))
	}

	helpView := m.help.View(m.keys)

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, statsLine, helpView)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// RunScoreboard shows the streak history screen.
// Returns true if the user pressed back (rather than quit).
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(ScoreboardModel); ok {
		return m.goingBack, nil
	}
	return false, nil
}
