package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiltmaze/internal/registry"
)

// LevelItem is one row of the level picker.
type LevelItem struct {
	Entry   registry.Entry
	BestMS  int64
	HasBest bool
}

// LevelSelectModel lists every registered level with its best time.
type LevelSelectModel struct {
	items     []LevelItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
	selected  *registry.Entry
}

// NewLevelSelectModel creates the picker for the levels currently registered.
func NewLevelSelectModel(env Env) LevelSelectModel {
	entries := registry.List()
	items := make([]LevelItem, len(entries))
	for i, e := range entries {
		items[i].Entry = e
		items[i].BestMS, items[i].HasBest = env.bestTime(e.Key)
	}
	return LevelSelectModel{
		items:     items,
		width:     env.Runtime.ScreenW,
		height:    env.Runtime.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.goingBack = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				e := m.items[m.cursor].Entry
				m.selected = &e
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the picker.
func (m LevelSelectModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(title.Render(centerText("SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No levels registered.", m.width))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		best := "--.--"
		if it.HasBest {
			best = formatMillis(it.BestMS)
		}
		name := it.Entry.Title
		if it.Entry.Custom {
			name += " *"
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-24s %8s", cursor, name, best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(centerText("Enter: Play  |  Esc: Back  |  * custom level", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen level, or nil.
func (m LevelSelectModel) Selected() *registry.Entry {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelSelectModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}
