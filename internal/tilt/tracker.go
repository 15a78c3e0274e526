package tilt

import "github.com/vovakirdan/tiltmaze/internal/physics"

// Sensitivity bounds shared with the settings screen.
const (
	MinSensitivity     = 0.4
	MaxSensitivity     = 2.5
	DefaultSensitivity = 1.0
)

// Tracker ties a source, a low-pass filter and the player's sensitivity
// together. It is owned by the driving loop.
type Tracker struct {
	source      Source
	filter      Filter
	maxTilt     float64
	sensitivity float64
	tilt        physics.Vec2
}

// NewTracker creates a tracker reading from src.
func NewTracker(src Source, alpha, maxTilt, sensitivity float64) *Tracker {
	t := &Tracker{
		source:  src,
		filter:  Filter{Alpha: alpha},
		maxTilt: maxTilt,
	}
	t.SetSensitivity(sensitivity)
	return t
}

// Update samples the source and returns the new normalized tilt.
func (t *Tracker) Update() physics.Vec2 {
	filtered := t.filter.Apply(t.source.Sample())
	t.tilt = Normalize(filtered, t.maxTilt, t.sensitivity)
	return t.tilt
}

// Tilt returns the last normalized tilt.
func (t *Tracker) Tilt() physics.Vec2 {
	return t.tilt
}

// Sensitivity returns the current multiplier.
func (t *Tracker) Sensitivity() float64 {
	return t.sensitivity
}

// SetSensitivity changes the multiplier, clamped to the allowed range.
func (t *Tracker) SetSensitivity(v float64) {
	t.sensitivity = ClampSensitivity(v)
}

// Source returns the active source.
func (t *Tracker) Source() Source {
	return t.source
}

// Reset levels the filter, e.g. on restart.
func (t *Tracker) Reset() {
	t.filter.Reset()
	t.tilt = physics.Vec2{}
}

// ClampSensitivity restricts v to [MinSensitivity, MaxSensitivity].
func ClampSensitivity(v float64) float64 {
	if v < MinSensitivity {
		return MinSensitivity
	}
	if v > MaxSensitivity {
		return MaxSensitivity
	}
	return v
}
