// Package config provides YAML-based configuration loading for tiltmaze.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// Config contains all runtime configuration.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Loop   LoopConfig   `yaml:"loop"`
	Tilt   TiltConfig   `yaml:"tilt"`
	Levels LevelsConfig `yaml:"levels"`
	Render RenderConfig `yaml:"render"`
}

// WorldConfig is the design world used as physics bounds.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoopConfig controls frame timing.
type LoopConfig struct {
	TickRate int     `yaml:"tick_rate"` // Frames per second
	MaxDT    float64 `yaml:"max_dt"`    // Longest step handed to the engine, seconds
}

// TiltConfig controls tilt filtering and the keyboard board.
type TiltConfig struct {
	Alpha    float64   `yaml:"alpha"`     // Low-pass smoothing factor
	MaxTilt  float64   `yaml:"max_tilt"`  // Raw reading that maps to full tilt
	KeyStep  float64   `yaml:"key_step"`  // Raw change per key press
	KeyLimit float64   `yaml:"key_limit"` // Largest raw keyboard reading
	Source   tilt.Mode `yaml:"source"`    // auto, keyboard or sensor
}

// LevelsConfig locates custom level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// RenderConfig controls the terminal projection.
type RenderConfig struct {
	CellAspect float64 `yaml:"cell_aspect"` // Cell height / cell width
	ShowHUD    bool    `yaml:"show_hud"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Loop.MaxDT <= 0 {
		errs = append(errs, fmt.Errorf("loop.max_dt must be positive, got %v", c.Loop.MaxDT))
	}
	if c.Tilt.Alpha <= 0 || c.Tilt.Alpha > 1 {
		errs = append(errs, fmt.Errorf("tilt.alpha must be in (0, 1], got %v", c.Tilt.Alpha))
	}
	if c.Tilt.MaxTilt <= 0 {
		errs = append(errs, fmt.Errorf("tilt.max_tilt must be positive, got %v", c.Tilt.MaxTilt))
	}
	switch c.Tilt.Source {
	case tilt.ModeAuto, tilt.ModeKeyboard, tilt.ModeSensor:
	default:
		errs = append(errs, fmt.Errorf("tilt.source must be auto, keyboard or sensor, got %q", c.Tilt.Source))
	}
	if c.Render.CellAspect <= 0 {
		errs = append(errs, fmt.Errorf("render.cell_aspect must be positive, got %v", c.Render.CellAspect))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
