package draftbench

// ViewTransform is the pan/zoom mapping between screen and world space.
// Screen = world*Scale + offset. Scale must be positive; the zero value is
// not usable (use Scale: 1 for identity).
type ViewTransform struct {
	X, Y  float64 // pan offset in screen pixels
	Scale float64 // zoom factor (1 = 100%)
}

// ScreenToWorld converts a canvas-local screen point to world space.
func (v ViewTransform) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx - v.X) / v.Scale, (sy - v.Y) / v.Scale
}

// WorldToScreen converts a world point to canvas-local screen space.
func (v ViewTransform) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx*v.Scale + v.X, wy*v.Scale + v.Y
}

// WorldRectToScreen converts a world-space rectangle to screen space.
func (v ViewTransform) WorldRectToScreen(r Rect) Rect {
	x, y := v.WorldToScreen(r.X, r.Y)
	return Rect{X: x, Y: y, Width: r.Width * v.Scale, Height: r.Height * v.Scale}
}
