// Package physics implements the per-frame ball simulation for tilt mazes.
// It is a pure numeric transform: no I/O, no goroutines, no globals, and no
// dependency on the terminal front end or on persistence.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector in world units (position, velocity or acceleration).
type Vec2 = mgl64.Vec2

// V builds a Vec2 from its components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// lenSq returns the squared length of v.
func lenSq(v Vec2) float64 {
	return v.Dot(v)
}

// finite reports whether every component of v is a finite number.
func finite(v Vec2) bool {
	return isFinite(v[0]) && isFinite(v[1])
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// clampAxes clamps each component of v independently to [-limit, limit].
// This is deliberately not a magnitude clamp.
func clampAxes(v Vec2, limit float64) Vec2 {
	return Vec2{clamp(v[0], -limit, limit), clamp(v[1], -limit, limit)}
}
