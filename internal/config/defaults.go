package config

import (
	_ "embed"

	"github.com/vovakirdan/tiltmaze/internal/level"
	"github.com/vovakirdan/tiltmaze/internal/loop"
	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

//go:embed defaults/tiltmaze.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  level.WorldWidth,
			Height: level.WorldHeight,
		},
		Loop: LoopConfig{
			TickRate: 60,
			MaxDT:    loop.MaxFrameDT,
		},
		Tilt: TiltConfig{
			Alpha:    tilt.DefaultAlpha,
			MaxTilt:  tilt.DefaultMaxTilt,
			KeyStep:  2.5,
			KeyLimit: 9.81,
			Source:   tilt.ModeAuto,
		},
		Levels: LevelsConfig{
			Dir: "~/.tiltmaze/levels",
		},
		Render: RenderConfig{
			CellAspect: 2.0,
			ShowHUD:    true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
