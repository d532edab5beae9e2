package draftbench

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API. Whether a value is in screen or world space is stated at each use site.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// RectFromCorners returns the normalized rectangle spanned by two opposite
// corners, regardless of drag direction.
func RectFromCorners(a, b Vec2) Rect {
	x, y := a.X, a.Y
	if b.X < x {
		x = b.X
	}
	if b.Y < y {
		y = b.Y
	}
	w := a.X - b.X
	if w < 0 {
		w = -w
	}
	h := a.Y - b.Y
	if h < 0 {
		h = -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys. The bit values are part
// of the engine protocol: every session update carries this mask verbatim.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// ModifierMask builds the engine modifier bitmask from raw modifier booleans.
func ModifierMask(shift, ctrl, alt, meta bool) KeyModifiers {
	var m KeyModifiers
	if shift {
		m |= ModShift
	}
	if ctrl {
		m |= ModCtrl
	}
	if alt {
		m |= ModAlt
	}
	if meta {
		m |= ModMeta
	}
	return m
}

// Has reports whether every bit in mask is set.
func (m KeyModifiers) Has(mask KeyModifiers) bool {
	return m&mask == mask
}

// HasAny reports whether any bit in mask is set.
func (m KeyModifiers) HasAny(mask KeyModifiers) bool {
	return m&mask != 0
}

// Tool identifies a top-level editing tool. SetActiveTool maps each value to
// a freshly constructed handler.
type Tool string

const (
	ToolSelect   Tool = "select"
	ToolPan      Tool = "pan"
	ToolLine     Tool = "line"
	ToolRect     Tool = "rect"
	ToolCircle   Tool = "circle"
	ToolArrow    Tool = "arrow"
	ToolPolygon  Tool = "polygon"
	ToolPolyline Tool = "polyline"
	ToolText     Tool = "text"
)

// isShapeTool reports whether the tool drafts a new shape through the engine
// draft session.
func isShapeTool(t Tool) bool {
	switch t {
	case ToolLine, ToolRect, ToolCircle, ToolArrow, ToolPolygon, ToolPolyline:
		return true
	}
	return false
}

// Cursor names the native cursor the rendering layer should show.
// CursorNone means "hide the native cursor": a custom cursor glyph is being
// drawn in the overlay and must be the only cursor visible.
type Cursor string

const (
	CursorDefault   Cursor = ""
	CursorNone      Cursor = "none"
	CursorGrab      Cursor = "grab"
	CursorGrabbing  Cursor = "grabbing"
	CursorCrosshair Cursor = "crosshair"
	CursorText      Cursor = "text"
)

// Key identifies the non-text keys the interaction core reacts to. Printable
// input reaches the text tool through Core.HandleTextInput instead.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyDelete
	KeyBackspace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyZ
	KeyY
	KeyCtrl // modifier edge, used for cycle invalidation on release
)

// Drag detection thresholds, in screen pixels.
const (
	// dragThresholdPx is the click-versus-drag decision boundary: strictly
	// below it a gesture is a click, at or above it a drag.
	dragThresholdPx = 5.0

	// minDraftDeltaSq is the squared world-space distance under which two
	// draft points are considered the same point. Guards degenerate commits
	// and duplicate polyline clicks.
	minDraftDeltaSq = 1e-6
)

// exceedsDragThreshold reports whether the screen-space movement from a to b
// is at or beyond the click-versus-drag boundary (Euclidean).
func exceedsDragThreshold(a, b Vec2) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx+dy*dy >= dragThresholdPx*dragThresholdPx
}
