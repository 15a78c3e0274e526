package core

import "math"

// Viewport maps world coordinates onto a character grid.
// Terminal cells are taller than wide, so one row covers Aspect times the
// world distance of one column.
type Viewport struct {
	OriginX, OriginY float64 // World point drawn at the grid's top-left
	Scale            float64 // World units per column
	Aspect           float64 // Cell height / cell width
	Width, Height    int     // Grid size in cells
}

// FitViewport returns the largest projection that shows the world box
// (left, top, right, bottom) inside a width×height grid, centered.
func FitViewport(left, top, right, bottom float64, width, height int, aspect float64) Viewport {
	if aspect <= 0 {
		aspect = 2
	}
	v := Viewport{Aspect: aspect, Width: width, Height: height}
	worldW, worldH := right-left, bottom-top
	if width <= 0 || height <= 0 || worldW <= 0 || worldH <= 0 {
		v.Scale = 1
		v.OriginX, v.OriginY = left, top
		return v
	}

	v.Scale = math.Max(worldW/float64(width), worldH/(float64(height)*aspect))

	// Center the unused space.
	usedW := worldW / v.Scale
	usedH := worldH / (v.Scale * aspect)
	v.OriginX = left - (float64(width)-usedW)/2*v.Scale
	v.OriginY = top - (float64(height)-usedH)/2*v.Scale*aspect
	return v
}

// Point returns the cell containing the world point (x, y).
func (v Viewport) Point(x, y float64) (int, int) {
	cx := int(math.Floor((x - v.OriginX) / v.Scale))
	cy := int(math.Floor((y - v.OriginY) / (v.Scale * v.Aspect)))
	return cx, cy
}

// Rect returns the cells covered by a world rectangle. Any non-empty world
// rectangle covers at least one cell.
func (v Viewport) Rect(left, top, right, bottom float64) Rect {
	x0, y0 := v.Point(left, top)
	x1 := int(math.Ceil((right - v.OriginX) / v.Scale))
	y1 := int(math.Ceil((bottom - v.OriginY) / (v.Scale * v.Aspect)))
	w, h := max(x1-x0, 1), max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}
