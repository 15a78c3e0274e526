package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiltmaze/internal/storage"
	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// SensitivityStep is the change per left/right press.
const SensitivityStep = 0.1

const (
	rowSensitivity = iota
	rowVibration
	rowSound
	rowBack
	settingsRows
)

// SettingsModel edits the persisted player settings. Every change is
// written through immediately.
type SettingsModel struct {
	env       Env
	settings  storage.Settings
	cursor    int
	width     int
	keyMapper *KeyMapper
	err       error
	quitting  bool
	goingBack bool
}

// NewSettingsModel loads the current settings.
func NewSettingsModel(env Env) SettingsModel {
	return SettingsModel{
		env:       env,
		settings:  env.settings(),
		width:     env.Runtime.ScreenW,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < settingsRows-1 {
				m.cursor++
			}
		case MenuActionLeft:
			m.adjust(-1)
		case MenuActionRight:
			m.adjust(1)
		case MenuActionSelect:
			if m.cursor == rowBack {
				m.goingBack = true
				return m, tea.Quit
			}
			m.adjust(1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// adjust changes the setting under the cursor; dir is -1 or +1.
func (m *SettingsModel) adjust(dir int) {
	m.err = nil
	switch m.cursor {
	case rowSensitivity:
		v := math.Round((m.settings.Sensitivity+float64(dir)*SensitivityStep)*10) / 10
		m.settings.Sensitivity = tilt.ClampSensitivity(v)
		if m.env.Store != nil {
			m.settings.Sensitivity, m.err = m.env.Store.UpdateSensitivity(v)
		}
	case rowVibration:
		m.settings.Vibration = !m.settings.Vibration
		if m.env.Store != nil {
			m.err = m.env.Store.SetVibration(m.settings.Vibration)
		}
	case rowSound:
		m.settings.Sound = !m.settings.Sound
		if m.env.Store != nil {
			m.err = m.env.Store.SetSound(m.settings.Sound)
		}
	}
	if m.err != nil {
		m.env.logger().Warn("cannot save settings", "error", m.err)
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	rows := []string{
		fmt.Sprintf("Sensitivity   < %.1f >", m.settings.Sensitivity),
		fmt.Sprintf("Vibration     %s", onOff(m.settings.Vibration)),
		fmt.Sprintf("Sound         %s", onOff(m.settings.Sound)),
		"Back",
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")
	for i, r := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-22s", cursor, r), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(centerText("Error: "+m.err.Error(), m.width)))
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(centerText("Left/Right: Change  |  Esc: Back", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Settings returns the values currently shown.
func (m SettingsModel) Settings() storage.Settings {
	return m.settings
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SettingsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
