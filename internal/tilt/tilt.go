// Package tilt turns raw board-tilt samples into the acceleration the
// physics engine consumes.
//
// Raw samples follow the device accelerometer convention: x grows when the
// board's right edge rises, y grows when its bottom edge rises, both in
// m/s² with gravity at about 9.81.
package tilt

import (
	"math"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// Defaults for the filter and normalization.
const (
	DefaultAlpha   = 0.1
	DefaultMaxTilt = 10.0
)

// Filter is an exponential low-pass filter over raw samples.
// The zero value with Alpha set starts from a level board.
type Filter struct {
	Alpha float64
	value physics.Vec2
}

// NewFilter creates a filter with the given smoothing factor.
func NewFilter(alpha float64) *Filter {
	return &Filter{Alpha: alpha}
}

// Apply folds raw into the filtered value and returns it.
func (f *Filter) Apply(raw physics.Vec2) physics.Vec2 {
	f.value = raw.Mul(f.Alpha).Add(f.value.Mul(1 - f.Alpha))
	return f.value
}

// Value returns the current filtered value.
func (f *Filter) Value() physics.Vec2 {
	return f.value
}

// Reset returns the filter to a level board.
func (f *Filter) Reset() {
	f.value = physics.Vec2{}
}

// Normalize scales a filtered sample by maxTilt and sensitivity and clamps
// each axis to [-1, 1].
func Normalize(filtered physics.Vec2, maxTilt, sensitivity float64) physics.Vec2 {
	if maxTilt <= 0 {
		return physics.Vec2{}
	}
	return physics.Vec2{
		clampUnit(filtered[0] / maxTilt * sensitivity),
		clampUnit(filtered[1] / maxTilt * sensitivity),
	}
}

// Acceleration converts a normalized tilt into engine acceleration for a
// level. The x axis is inverted so raising the right edge rolls the ball left.
func Acceleration(t physics.Vec2, levelID int) physics.Vec2 {
	af := physics.AccelFactor(levelID)
	return physics.Vec2{-t[0] * af, t[1] * af}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
