package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiltmaze/internal/core"
	"github.com/vovakirdan/tiltmaze/internal/loop"
	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/registry"
	"github.com/vovakirdan/tiltmaze/internal/replay"
)

// ReplayModel plays a recording back at its original pace.
type ReplayModel struct {
	env      Env
	entry    registry.Entry
	rec      *replay.Recording
	player   *replay.Player
	timer    *loop.DeltaTimer
	screen   *core.Screen
	clock    float64 // Wall time owed to playback, seconds
	paused   bool
	quitting bool
}

// NewReplayModel prepares playback of rec on entry's geometry.
func NewReplayModel(rec *replay.Recording, entry registry.Entry, env Env) ReplayModel {
	return ReplayModel{
		env:    env,
		entry:  entry,
		rec:    rec,
		player: replay.NewPlayer(rec, entry.Build()),
		timer:  loop.NewDeltaTimer(env.Config.Loop.MaxDT),
		screen: core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
	}
}

// Init starts the frame loop.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate)
}

// Update handles messages for playback.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "b":
			m.quitting = true
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			m.timer.Reset()
		case "r":
			m.player = replay.NewPlayer(m.rec, m.entry.Build())
			m.clock = 0
			m.timer.Reset()
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		dt := m.timer.Tick(time.Time(msg))
		if !m.paused {
			m.Advance(dt)
		}
		return m, tickCmd(m.env.Runtime.TickRate)
	}
	return m, nil
}

// Advance plays frames until the replay catches up with dt more seconds
// of wall time. It reports whether frames remain.
func (m *ReplayModel) Advance(dt float64) bool {
	m.clock += dt
	for m.player.State().Elapsed < m.clock {
		if _, ok := m.player.Next(); !ok {
			return false
		}
	}
	played, total := m.player.Progress()
	return played < total
}

// State returns the current playback state.
func (m ReplayModel) State() physics.GameState {
	return m.player.State()
}

// View renders the current playback frame.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	played, total := m.player.Progress()
	v := View{
		State:   m.player.State(),
		Title:   fmt.Sprintf("%s [replay %d/%d]", m.entry.Title, played, total),
		BestMS:  m.rec.ElapsedMS,
		HasBest: m.rec.Outcome == physics.Won,
		Source:  "replay",
		Paused:  m.paused,
	}
	DrawGame(m.screen, v, m.env.Config.Render.CellAspect, m.env.Config.Render.ShowHUD)
	return RenderScreen(m.screen)
}

// RunReplay shows rec in the terminal.
func RunReplay(rec *replay.Recording, entry registry.Entry, env Env) error {
	p := tea.NewProgram(
		NewReplayModel(rec, entry, env),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
