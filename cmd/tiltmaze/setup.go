package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tiltmaze/internal/config"
	"github.com/vovakirdan/tiltmaze/internal/core"
	"github.com/vovakirdan/tiltmaze/internal/level"
	"github.com/vovakirdan/tiltmaze/internal/platform/tui"
	"github.com/vovakirdan/tiltmaze/internal/registry"
	"github.com/vovakirdan/tiltmaze/internal/storage"
	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// sensorDelay is the accelerometer sampling period.
const sensorDelay = 16 * time.Millisecond

var (
	cfg    config.Config
	logger *log.Logger
)

// setup loads the configuration and registers custom levels.
// It runs before every command.
func setup() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiltmaze",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}

	dir := cfg.Levels.Dir
	if flagLevelsDir != "" {
		dir = flagLevelsDir
	}
	loaded, skipped, err := level.NewLoader(dir).RegisterAll()
	if err != nil {
		logger.Warn("cannot load custom levels", "dir", dir, "error", err)
		return
	}
	for _, s := range skipped {
		logger.Warn("skipped level file", "path", s.Path, "error", s.Err)
	}
	if len(loaded) > 0 {
		logger.Debug("loaded custom levels", "dir", dir, "count", len(loaded))
	}
}

// openStore opens the database, or returns nil with a warning so play can
// continue without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// resolveLevel returns the registered level for key or exits.
func resolveLevel(key string) registry.Entry {
	entry, err := registry.Get(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", key)
		fmt.Fprintln(os.Stderr, "Run 'tiltmaze list' to see available levels.")
		os.Exit(1)
	}
	return entry
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// startSensor enables the accelerometer when the config allows it.
// It returns nil when no sensor can be used.
func startSensor() *tilt.SensorSource {
	if cfg.Tilt.Source == tilt.ModeKeyboard {
		return nil
	}
	src := tilt.NewSensorSource()
	if err := src.Start(sensorDelay); err != nil {
		logger.Debug("accelerometer unavailable, using keyboard", "error", err)
		return nil
	}
	return src
}

// localEnv builds the front-end environment for this terminal.
func localEnv(store *storage.Store, sensor *tilt.SensorSource) tui.Env {
	width, height := terminalSize()
	env := tui.Env{
		Store:  store,
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Loop.TickRate,
		},
		Logger: logger,
	}
	if sensor != nil {
		env.Sensor = sensor
	}
	return env
}
