package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiltmaze/internal/registry"
	"github.com/vovakirdan/tiltmaze/internal/storage"
)

// Scoreboard layout constants
const (
	recentRuns       = 5 // Runs listed under the table for the selected level
	scoreboardChrome = 9 // Rows used by title, borders and help
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
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
			key.WithHelp("up/k", "prev level"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next level"),
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

// ScoreboardRow is the summary shown for one level.
type ScoreboardRow struct {
	Key   string
	Title string
	Stats storage.LevelStats
}

// ScoreboardModel is the Bubble Tea model for the best-times screen.
type ScoreboardModel struct {
	env       Env
	rows      []ScoreboardRow
	recent    []storage.Run
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	err       error
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(env Env) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		env:    env,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  env.Runtime.ScreenW,
		height: env.Runtime.ScreenH,
	}
	m.rows, m.err = LoadScoreboard(env.Store)
	m.table = m.createTable()
	m.updateTableRows()
	m.loadRecent()
	return m
}

// LoadScoreboard returns one row per registered level followed by stored
// levels that are no longer registered. A nil store yields empty stats.
func LoadScoreboard(store *storage.Store) ([]ScoreboardRow, error) {
	stats := map[string]*storage.LevelStats{}
	if store != nil {
		var err error
		if stats, err = store.AllLevelStats(); err != nil {
			return nil, err
		}
	}

	var rows []ScoreboardRow
	seen := make(map[string]bool)
	for _, e := range registry.List() {
		row := ScoreboardRow{Key: e.Key, Title: e.Title, Stats: storage.LevelStats{LevelKey: e.Key}}
		if st, ok := stats[e.Key]; ok {
			row.Stats = *st
		}
		rows = append(rows, row)
		seen[e.Key] = true
	}

	var orphans []string
	for k := range stats {
		if !seen[k] {
			orphans = append(orphans, k)
		}
	}
	slices.Sort(orphans)
	for _, k := range orphans {
		rows = append(rows, ScoreboardRow{Key: k, Title: k, Stats: *stats[k]})
	}
	return rows, nil
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 18},
		{Title: "Best", Width: 9},
		{Title: "Attempts", Width: 8},
		{Title: "Wins", Width: 6},
		{Title: "Last played", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome-recentRuns, 3)),
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

// updateTableRows updates the table with the current level stats.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		best := "--.--"
		if r.Stats.HasBest {
			best = formatMillis(r.Stats.BestTimeMS)
		}
		last := "-"
		if !r.Stats.LastPlayed.IsZero() {
			last = r.Stats.LastPlayed.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			r.Title,
			best,
			strconv.Itoa(r.Stats.Attempts),
			strconv.Itoa(r.Stats.Wins),
			last,
		}
	}
	m.table.SetRows(rows)
}

// loadRecent loads the latest runs of the selected level.
func (m *ScoreboardModel) loadRecent() {
	m.recent = nil
	i := m.table.Cursor()
	if m.env.Store == nil || i < 0 || i >= len(m.rows) {
		return
	}
	runs, err := m.env.Store.RecentRuns(m.rows[i].Key, recentRuns)
	if err != nil {
		m.env.logger().Warn("cannot load recent runs", "level", m.rows[i].Key, "error", err)
		return
	}
	m.recent = runs
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.loadRecent()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("BEST TIMES", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	b.WriteString(m.renderRecent())

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot load scores:\n" + m.err.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("No levels registered.")
	}
	return m.table.View()
}

// renderRecent lists the latest runs of the selected level.
func (m ScoreboardModel) renderRecent() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if len(m.recent) == 0 {
		return dim.Render(" No runs recorded yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(" Recent runs:\n")
	for _, r := range m.recent {
		fmt.Fprintf(&b, "   %-5s %9s  %s\n", r.Outcome, formatMillis(r.ElapsedMS), r.CreatedAt.Local().Format("Jan 02 15:04"))
	}
	return dim.Render(b.String())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(env Env) error {
	p := tea.NewProgram(
		NewScoreboardModel(env),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
