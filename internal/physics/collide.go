package physics

import "math"

// resolve pushes pos out along the unit normal n by depth and, when the
// velocity points into the surface, reflects its normal component with
// restitution. A zero normal leaves both values untouched.
func resolve(pos, vel, n Vec2, depth float64) (Vec2, Vec2) {
	pos = pos.Add(n.Mul(depth))
	if dot := vel.Dot(n); dot < 0 {
		vel = vel.Sub(n.Mul((1 + Restitution) * dot))
	}
	return pos, vel
}

// collideRect resolves one circle-vs-rectangle contact. It reports whether
// the circle was penetrating the rectangle.
func collideRect(pos, vel Vec2, radius float64, r Rect) (Vec2, Vec2, bool) {
	closest := r.ClosestPoint(pos)
	d := pos.Sub(closest)
	distSq := lenSq(d)
	if distSq >= radius*radius {
		return pos, vel, false
	}

	dist := math.Sqrt(distSq)
	var n Vec2
	if dist != 0 {
		n = Vec2{d[0] / dist, d[1] / dist}
	} else {
		n = surfaceNormal(pos, r)
	}
	pos, vel = resolve(pos, vel, n, radius-dist)
	return pos, vel, true
}

// surfaceNormal returns the outward normal of the face p lies exactly on.
// A center strictly inside r, or any point of a zero-area r, has no
// defined direction and yields the zero vector.
func surfaceNormal(p Vec2, r Rect) Vec2 {
	if r.Empty() {
		return Vec2{}
	}
	switch {
	case p[0] == r.Left:
		return Vec2{-1, 0}
	case p[0] == r.Right:
		return Vec2{1, 0}
	case p[1] == r.Top:
		return Vec2{0, -1}
	case p[1] == r.Bottom:
		return Vec2{0, 1}
	}
	return Vec2{}
}
