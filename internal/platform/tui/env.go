package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltmaze/internal/config"
	"github.com/vovakirdan/tiltmaze/internal/core"
	"github.com/vovakirdan/tiltmaze/internal/session"
	"github.com/vovakirdan/tiltmaze/internal/storage"
	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// Env carries the dependencies shared by every screen of one terminal.
type Env struct {
	Store    *storage.Store // nil disables persistence
	Config   config.Config
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Sensor   tilt.Source       // Optional accelerometer
	Sessions *session.Registry // Optional; tracks live attempts by owner
	Owner    string
}

// logger returns the configured logger or the package default.
func (e Env) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

// recorder returns the store as a session.Recorder, or nil without a store.
func (e Env) recorder() session.Recorder {
	if e.Store == nil {
		return nil
	}
	return e.Store
}

// settings returns persisted settings, falling back to defaults.
func (e Env) settings() storage.Settings {
	if e.Store == nil {
		return storage.DefaultSettings()
	}
	st, err := e.Store.Settings()
	if err != nil {
		e.logger().Warn("cannot read settings", "error", err)
		return storage.DefaultSettings()
	}
	return st
}

// bestTime returns the stored best for key.
func (e Env) bestTime(key string) (int64, bool) {
	if e.Store == nil {
		return 0, false
	}
	ms, err := e.Store.BestTime(key)
	if err != nil {
		return 0, false
	}
	return ms, true
}
