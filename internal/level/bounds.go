package level

import "github.com/vovakirdan/tiltmaze/internal/physics"

// BoundsPadding is the margin added around the level content.
const BoundsPadding = 40.0

// Bounds returns the smallest rectangle enclosing the walls, traps, goal
// and the ball's footprint, padded by BoundsPadding. It is used for display
// scaling only.
func Bounds(lvl physics.Level, ball physics.Ball) physics.Rect {
	r := ball.Radius
	box := physics.R(ball.Position.X()-r, ball.Position.Y()-r, ball.Position.X()+r, ball.Position.Y()+r)
	box = box.Union(lvl.Goal)
	for _, w := range lvl.Walls {
		box = box.Union(w)
	}
	for _, t := range lvl.Traps {
		box = box.Union(t)
	}
	return box.Expand(BoundsPadding)
}
