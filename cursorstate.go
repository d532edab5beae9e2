package draftbench

// CursorGlyphKind identifies which custom cursor glyph the overlay draws.
// The glyphs are mutually exclusive; while one shows, the native cursor is
// reported as CursorNone so only the drawn cursor is visible.
type CursorGlyphKind uint8

const (
	GlyphNone CursorGlyphKind = iota
	GlyphMove
	GlyphResize
	GlyphRotate
)

// cursorState is the "which custom cursor is showing" slice of selection
// behavior. It is reset on every pointer move before being possibly re-armed
// from the hover pick result.
type cursorState struct {
	glyph    CursorGlyphKind
	screen   Vec2
	angleDeg float64 // rotation/resize direction; unused for move
}

func (c *cursorState) reset() {
	*c = cursorState{}
}

func (c *cursorState) arm(glyph CursorGlyphKind, screen Vec2, angleDeg float64) {
	c.glyph = glyph
	c.screen = screen
	c.angleDeg = angleDeg
}

// active reports whether a custom glyph is showing.
func (c *cursorState) active() bool { return c.glyph != GlyphNone }

// armFromPick arms the cursor from a hover pick result: rotation and resize
// handles get a directional glyph whose angle combines the handle's base
// direction with the entity's current rotation; draggable vertices and edges
// get the move glyph; anything else leaves the cursor reset.
func (c *cursorState) armFromPick(e Engine, res PickResult, screen Vec2, contourEnabled bool) {
	switch res.SubTarget {
	case SubTargetRotateHandle:
		c.arm(GlyphRotate, screen, handleCursorAngle(e, res))
	case SubTargetResizeHandle:
		c.arm(GlyphResize, screen, handleCursorAngle(e, res))
	case SubTargetVertex, SubTargetEdge:
		if contourEnabled && contourDraggable(res.Kind) {
			c.arm(GlyphMove, screen, 0)
		}
	}
}

// handleCursorAngle combines a handle's base direction with the entity's
// rotation.
func handleCursorAngle(e Engine, res PickResult) float64 {
	angle := cursorBaseAngleDeg(res.SubIndex)
	if info, ok := e.EntityInfo(res.ID); ok {
		angle += info.RotationDeg
	}
	return angle
}

// contourDraggable reports whether vertex/edge grips apply to this kind.
func contourDraggable(kind EntityKind) bool {
	switch kind {
	case KindPolygon, KindPolyline, KindLine, KindArrow:
		return true
	}
	return false
}
