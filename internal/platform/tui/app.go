package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiltmaze/internal/registry"
)

type screenID int

const (
	screenMenu screenID = iota
	screenLevels
	screenGame
	screenScores
	screenSettings
)

// SessionModel manages the full flow of one terminal:
// menu -> level select -> game -> menu, plus best times and settings.
// It is the top-level model for local and SSH sessions.
type SessionModel struct {
	env      Env
	current  screenID
	menu     MenuModel
	levels   LevelSelectModel
	game     *GameModel
	scores   ScoreboardModel
	settings SettingsModel
	direct   bool // Started on a level; leaving it ends the program
	quitting bool
}

// NewSessionModel creates a session starting at the main menu.
func NewSessionModel(env Env) SessionModel {
	return SessionModel{
		env:  env,
		menu: NewMenuModel(env.Runtime.ScreenW, env.Runtime.ScreenH),
	}
}

// NewSessionModelAt creates a session that starts playing entry.
func NewSessionModelAt(env Env, entry registry.Entry) SessionModel {
	m := SessionModel{env: env, direct: true}
	m.startGame(entry)
	return m
}

// Init starts the frame clock. A single tick chain serves every screen so
// switching levels never doubles it.
func (m SessionModel) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.env.Runtime.ScreenW = wsm.Width
		m.env.Runtime.ScreenH = wsm.Height
	}

	if _, ok := msg.(TickMsg); ok {
		if m.current == screenGame && m.game != nil {
			newModel, _ := m.game.Update(msg)
			if gm, ok := newModel.(GameModel); ok {
				m.game = &gm
			}
		}
		return m, tickCmd(m.env.Runtime.TickRate)
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.current = screenLevels
		m.levels = NewLevelSelectModel(m.env)
		return m, nil
	case ChoiceBestTimes:
		m.current = screenScores
		m.scores = NewScoreboardModel(m.env)
		return m, nil
	case ChoiceSettings:
		m.current = screenSettings
		m.settings = NewSettingsModel(m.env)
		return m, nil
	}
	return m, cmd
}

// updateLevels handles updates on the level picker.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.levels.Update(msg)
	if lm, ok := newModel.(LevelSelectModel); ok {
		m.levels = lm
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.IsGoingBack():
		return m.backToMenu(), nil
	case m.levels.Selected() != nil:
		m.startGame(*m.levels.Selected())
		return m, nil
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.Next() != nil:
		m.startGame(*m.game.Next())
		return m, nil

	case m.game.BackToMenu():
		m.game = nil
		if m.direct {
			m.quitting = true
			return m, tea.Quit
		}
		m.current = screenLevels
		m.levels = NewLevelSelectModel(m.env)
		return m, nil
	}
	return m, cmd
}

// updateScores handles updates on the best-times screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu(), nil
	}
	return m, cmd
}

// updateSettings handles updates on the settings screen.
func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if sm, ok := newModel.(SettingsModel); ok {
		m.settings = sm
	}

	switch {
	case m.settings.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.settings.IsGoingBack():
		return m.backToMenu(), nil
	}
	return m, cmd
}

func (m *SessionModel) startGame(entry registry.Entry) {
	if m.game != nil {
		m.game.Close()
	}
	gm := NewGameModel(entry, m.env)
	m.game = &gm
	m.current = screenGame
}

func (m SessionModel) backToMenu() SessionModel {
	m.current = screenMenu
	m.menu = NewMenuModel(m.env.Runtime.ScreenW, m.env.Runtime.ScreenH)
	return m
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenLevels:
		return m.levels.View()
	case screenScores:
		return m.scores.View()
	case screenSettings:
		return m.settings.View()
	}
	return m.menu.View()
}

// Close releases the active attempt, if any.
func (m SessionModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// Current reports which screen is shown, for tests and logging.
func (m SessionModel) Current() string {
	switch m.current {
	case screenLevels:
		return "levels"
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	case screenSettings:
		return "settings"
	default:
		return "menu"
	}
}

// RunApp runs the full menu-driven session in the local terminal.
func RunApp(env Env) error {
	p := tea.NewProgram(
		NewSessionModel(env),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Close()
	}
	return err
}
