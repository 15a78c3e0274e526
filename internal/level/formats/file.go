// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// ErrInvalidLevel is returned when a parsed file fails validation.
var ErrInvalidLevel = errors.New("formats: invalid level")

// File is a parsed custom level, independent of its on-disk format.
// Rectangles are [left, top, right, bottom] in world units.
type File struct {
	ID         string       `yaml:"id" toml:"id"`
	Name       string       `yaml:"name" toml:"name"`
	Difficulty int          `yaml:"difficulty" toml:"difficulty"`
	Walls      [][4]float64 `yaml:"walls" toml:"walls"`
	Traps      [][4]float64 `yaml:"traps" toml:"traps"`
	Goal       [4]float64   `yaml:"goal" toml:"goal"`
}

// Validate checks the file for a usable id, difficulty and geometry.
func (f File) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if f.Difficulty < 1 || f.Difficulty > 5 {
		return fmt.Errorf("%w: %s: difficulty %d outside 1..5", ErrInvalidLevel, f.ID, f.Difficulty)
	}
	if goal := toRect(f.Goal); !goal.Valid() || goal.Empty() {
		return fmt.Errorf("%w: %s: goal must have positive area", ErrInvalidLevel, f.ID)
	}
	for i, w := range f.Walls {
		if !toRect(w).Valid() {
			return fmt.Errorf("%w: %s: wall %d has inverted edges", ErrInvalidLevel, f.ID, i)
		}
	}
	for i, t := range f.Traps {
		if !toRect(t).Valid() {
			return fmt.Errorf("%w: %s: trap %d has inverted edges", ErrInvalidLevel, f.ID, i)
		}
	}
	return nil
}

// Level converts the file into engine geometry.
func (f File) Level() physics.Level {
	return physics.Level{
		Walls: toRects(f.Walls),
		Traps: toRects(f.Traps),
		Goal:  toRect(f.Goal),
	}
}

// Title returns the display name, falling back to the id.
func (f File) Title() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

func toRect(v [4]float64) physics.Rect {
	return physics.R(v[0], v[1], v[2], v[3])
}

func toRects(vs [][4]float64) []physics.Rect {
	out := make([]physics.Rect, len(vs))
	for i, v := range vs {
		out[i] = toRect(v)
	}
	return out
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse routes data to the parser for ext and validates the result.
func Parse(data []byte, ext string) (File, error) {
	var (
		f   File
		err error
	)
	switch ext {
	case ".yaml", ".yml":
		f, err = ParseYAML(data)
	case ".toml":
		f, err = ParseTOML(data)
	default:
		return File{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return File{}, err
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}
