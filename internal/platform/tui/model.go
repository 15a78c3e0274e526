package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiltmaze/internal/config"
	"github.com/vovakirdan/tiltmaze/internal/core"
	"github.com/vovakirdan/tiltmaze/internal/loop"
	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/registry"
	"github.com/vovakirdan/tiltmaze/internal/replay"
	"github.com/vovakirdan/tiltmaze/internal/session"
	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// GameModel is the Bubble Tea model for one level attempt.
type GameModel struct {
	env     Env
	entry   registry.Entry
	session *session.Session
	keys    *tilt.KeySource
	tracker *tilt.Tracker
	timer   *loop.DeltaTimer
	screen  *core.Screen

	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	bestMS     int64
	hasBest    bool
	newBest    bool
	paused     bool
	quitting   bool
	backToMenu bool
	next       *registry.Entry // Set when the player moves on to the next level
}

// NewGameModel creates a model playing entry.
func NewGameModel(entry registry.Entry, env Env) GameModel {
	cfg := env.Config
	keys := tilt.NewKeySource(cfg.Tilt.KeyStep, cfg.Tilt.KeyLimit)
	src := tilt.Select(cfg.Tilt.Source, keys, env.Sensor)
	settings := env.settings()

	sess := session.New(session.Options{
		Key:      entry.Key,
		LevelID:  entry.LevelID,
		Level:    entry.Build(),
		World:    replay.World{Width: cfg.World.Width, Height: cfg.World.Height},
		Recorder: env.recorder(),
		Logger:   env.logger(),
	})
	if env.Sessions != nil {
		env.Sessions.Track(env.Owner, sess)
	}

	m := GameModel{
		env:        env,
		entry:      entry,
		session:    sess,
		keys:       keys,
		tracker:    tilt.NewTracker(src, cfg.Tilt.Alpha, cfg.Tilt.MaxTilt, settings.Sensitivity),
		timer:      loop.NewDeltaTimer(cfg.Loop.MaxDT),
		screen:     core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.bestMS, m.hasBest = env.bestTime(entry.Key)
	return m
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.env.Runtime.ScreenW = msg.Width
		m.env.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		if isQuit {
			m.quitting = true
			m.Close()
			return m, tea.Quit
		}
	case core.ActionBack:
		m.backToMenu = true
		m.Close()
		return m, nil
	case core.ActionPause:
		if !m.session.State().Outcome.Terminal() {
			m.paused = !m.paused
			m.timer.Reset()
		}
		return m, nil
	case core.ActionConfirm:
		if m.session.State().Outcome == physics.Won {
			if next, err := registry.Get(registry.Next(m.entry.Key)); err == nil {
				m.next = &next
				m.Close()
			}
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick applies the frame's input and advances the simulation.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu || m.next != nil {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.env.Runtime.TickRate)
	}

	for action, n := range m.inputFrame.Actions {
		if dir, ok := TiltDirection(action); ok {
			for range n {
				m.keys.Nudge(dir)
			}
		}
	}
	if m.inputFrame.Has(core.ActionLevel) {
		m.keys.Level()
	}
	m.inputFrame.Clear()

	dt := m.timer.Tick(now)
	if m.paused || m.session.State().Outcome.Terminal() {
		return m, tickCmd(m.env.Runtime.TickRate)
	}

	st := m.session.Advance(dt, m.tracker.Update())
	if st.Outcome.Terminal() {
		if res := m.session.Result(); res != nil && res.NewBest {
			m.bestMS, m.hasBest, m.newBest = res.ElapsedMS, true, true
		}
	}
	return m, tickCmd(m.env.Runtime.TickRate)
}

// restart begins a fresh attempt on the same level.
func (m *GameModel) restart() {
	m.session.Restart()
	m.keys.Level()
	m.tracker.Reset()
	m.timer.Reset()
	m.paused = false
	m.newBest = false
}

// Close stops tracking the attempt. Safe to call multiple times.
func (m GameModel) Close() {
	if m.env.Sessions != nil {
		if s, ok := m.env.Sessions.Get(m.env.Owner); ok && s == m.session {
			m.env.Sessions.Untrack(m.env.Owner)
		}
	}
	m.session.Close()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(config.UserDataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.env.logger().Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level_%s_%s.txt", m.entry.Key, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.logger().Warn("cannot save screenshot", "error", err)
	}
}

// frameView collects what DrawGame needs.
func (m GameModel) frameView() View {
	src := "sensor"
	if _, ok := m.tracker.Source().(*tilt.KeySource); ok {
		src = "kbd"
	}
	return View{
		State:   m.session.State(),
		Title:   m.entry.Title,
		BestMS:  m.bestMS,
		HasBest: m.hasBest,
		NewBest: m.newBest,
		Source:  src,
		Paused:  m.paused,
		HasNext: registry.Next(m.entry.Key) != "",
	}
}

func (m GameModel) draw() {
	DrawGame(m.screen, m.frameView(), m.env.Config.Render.CellAspect, m.env.Config.Render.ShowHUD)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// State returns the current simulation state.
func (m GameModel) State() physics.GameState {
	return m.session.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Next returns the level the player chose to continue with, if any.
func (m GameModel) Next() *registry.Entry {
	return m.next
}

// Run plays a single level in the terminal until the player quits or
// goes back.
func Run(entry registry.Entry, env Env) error {
	p := tea.NewProgram(
		NewSessionModelAt(env, entry),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Close()
	}
	return err
}
