package tilt

import (
	"sync"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// Source provides raw tilt samples.
type Source interface {
	// Sample returns the most recent raw reading.
	Sample() physics.Vec2

	// Available reports whether the source can produce readings.
	Available() bool
}

// Mode selects which source drives play.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeKeyboard Mode = "keyboard"
	ModeSensor   Mode = "sensor"
)

// Direction is a keyboard nudge direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// KeySource is a virtual board tilted from the keyboard.
// Each nudge moves the raw reading by Step, limited to ±Limit per axis.
type KeySource struct {
	Step  float64
	Limit float64

	mu  sync.Mutex
	raw physics.Vec2
}

// NewKeySource creates a keyboard source.
func NewKeySource(step, limit float64) *KeySource {
	return &KeySource{Step: step, Limit: limit}
}

// Nudge tilts the board so the ball rolls toward d.
func (k *KeySource) Nudge(d Direction) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch d {
	case Left:
		k.raw[0] += k.Step
	case Right:
		k.raw[0] -= k.Step
	case Up:
		k.raw[1] -= k.Step
	case Down:
		k.raw[1] += k.Step
	}
	k.raw[0] = clampAbs(k.raw[0], k.Limit)
	k.raw[1] = clampAbs(k.raw[1], k.Limit)
}

// Level returns the board to flat.
func (k *KeySource) Level() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.raw = physics.Vec2{}
}

// Sample implements Source.
func (k *KeySource) Sample() physics.Vec2 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.raw
}

// Available implements Source. A keyboard is always present.
func (k *KeySource) Available() bool {
	return true
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// Select picks the source for mode. In auto mode the sensor wins when it
// is available; otherwise play falls back to the keyboard.
func Select(mode Mode, keys *KeySource, sensor Source) Source {
	switch mode {
	case ModeKeyboard:
		return keys
	case ModeSensor:
		if sensor != nil {
			return sensor
		}
		return keys
	default:
		if sensor != nil && sensor.Available() {
			return sensor
		}
		return keys
	}
}
