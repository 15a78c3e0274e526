package physics

import "math"

// corners returns the rounded-corner centers in TL, TR, BL, BR order.
func corners(w, h float64) [4]Vec2 {
	return [4]Vec2{
		{CornerRadius, CornerRadius},
		{w - CornerRadius, CornerRadius},
		{CornerRadius, h - CornerRadius},
		{w - CornerRadius, h - CornerRadius},
	}
}

// collideBounds keeps the ball inside a w×h play field with rounded corners.
// Every edge and corner is checked once, in a fixed order, against the
// already-corrected position.
func collideBounds(pos, vel Vec2, radius, w, h float64) (Vec2, Vec2) {
	if pos[0]-radius < 0 {
		pos, vel = resolve(pos, vel, Vec2{1, 0}, radius-pos[0])
	}
	if pos[0]+radius > w {
		pos, vel = resolve(pos, vel, Vec2{-1, 0}, pos[0]+radius-w)
	}
	if pos[1]-radius < 0 {
		pos, vel = resolve(pos, vel, Vec2{0, 1}, radius-pos[1])
	}
	if pos[1]+radius > h {
		pos, vel = resolve(pos, vel, Vec2{0, -1}, pos[1]+radius-h)
	}

	reach := CornerRadius - radius
	if reach <= 0 {
		return pos, vel
	}
	for _, c := range corners(w, h) {
		d := pos.Sub(c)
		distSq := lenSq(d)
		if distSq >= reach*reach {
			continue
		}
		dist := math.Sqrt(distSq)
		if dist == 0 {
			continue
		}
		n := Vec2{d[0] / dist, d[1] / dist}
		pos, vel = resolve(pos, vel, n, reach-dist)
	}
	return pos, vel
}
