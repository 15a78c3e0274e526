package physics

// Rect is an axis-aligned rectangle in world units.
// Walls, traps and the goal are all plain rectangles; only their role differs.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R creates a rectangle from its edges.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2}
}

// Valid reports whether the edges are finite and ordered.
func (r Rect) Valid() bool {
	if !isFinite(r.Left) || !isFinite(r.Top) || !isFinite(r.Right) || !isFinite(r.Bottom) {
		return false
	}
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p[0] >= r.Left && p[0] <= r.Right && p[1] >= r.Top && p[1] <= r.Bottom
}

// ClosestPoint returns the point of r nearest to p.
// Points inside the rectangle map to themselves.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{clamp(p[0], r.Left, r.Right), clamp(p[1], r.Top, r.Bottom)}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{Left: r.Left - pad, Top: r.Top - pad, Right: r.Right + pad, Bottom: r.Bottom + pad}
}

// CircleIntersectsRect reports whether a circle touches or overlaps r.
// Touching counts as an intersection.
func CircleIntersectsRect(center Vec2, radius float64, r Rect) bool {
	return lenSq(center.Sub(r.ClosestPoint(center))) <= radius*radius
}
