package draftbench

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay is the transient feedback the active handler publishes each
// frame: marquee box, custom cursor glyph, rotation readout, polygon
// side-count modal, and text caret/selection. Hosts that render their own
// chrome can read the fields directly; Draw renders a stock presentation.
type Overlay struct {
	MarqueeVisible  bool
	Marquee         Rect // world space
	MarqueeCrossing bool

	CursorGlyph    CursorGlyphKind
	CursorScreen   Vec2
	CursorAngleDeg float64

	RotationVisible  bool
	RotationDeltaDeg float64
	RotationPivot    Vec2 // world space

	PolygonModalVisible bool
	PolygonModalAnchor  Vec2 // screen space
	PolygonModalSides   int

	CaretVisible  bool
	CaretWorld    Vec2
	CaretHeight   float64
	CaretAngleDeg float64
	TextSelection []Rect // world space
}

// reset clears the overlay for the next frame, keeping slice capacity.
func (o *Overlay) reset() {
	sel := o.TextSelection[:0]
	*o = Overlay{}
	o.TextSelection = sel
}

var (
	overlayAccent     = color.RGBA{R: 0x2b, G: 0x7c, B: 0xd9, A: 0xff}
	overlayAccentFill = color.RGBA{R: 0x2b, G: 0x7c, B: 0xd9, A: 0x30}
	overlayCrossFill  = color.RGBA{R: 0x3f, G: 0xa8, B: 0x5e, A: 0x30}
	overlayCross      = color.RGBA{R: 0x3f, G: 0xa8, B: 0x5e, A: 0xff}
	overlayCaret      = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	overlayTextSel    = color.RGBA{R: 0x2b, G: 0x7c, B: 0xd9, A: 0x50}
)

// Draw renders the overlay onto dst. World-space geometry is projected
// through view; glyphs and the modal anchor are already in screen space.
func (o *Overlay) Draw(dst *ebiten.Image, view ViewTransform) {
	if o.MarqueeVisible {
		o.drawMarquee(dst, view)
	}
	for _, r := range o.TextSelection {
		sr := view.WorldRectToScreen(r)
		vector.DrawFilledRect(dst, float32(sr.X), float32(sr.Y), float32(sr.Width), float32(sr.Height), overlayTextSel, true)
	}
	if o.CaretVisible {
		o.drawCaret(dst, view)
	}
	if o.CursorGlyph != GlyphNone {
		o.drawGlyph(dst)
	}
}

func (o *Overlay) drawMarquee(dst *ebiten.Image, view ViewTransform) {
	sr := view.WorldRectToScreen(o.Marquee)
	fill, stroke := overlayAccentFill, overlayAccent
	if o.MarqueeCrossing {
		fill, stroke = overlayCrossFill, overlayCross
	}
	vector.DrawFilledRect(dst, float32(sr.X), float32(sr.Y), float32(sr.Width), float32(sr.Height), fill, true)
	vector.StrokeRect(dst, float32(sr.X), float32(sr.Y), float32(sr.Width), float32(sr.Height), 1, stroke, true)
}

func (o *Overlay) drawCaret(dst *ebiten.Image, view ViewTransform) {
	tx, ty := view.WorldToScreen(o.CaretWorld.X, o.CaretWorld.Y)
	h := o.CaretHeight * view.Scale
	rad := o.CaretAngleDeg * math.Pi / 180
	// The caret hangs downward from its top point, rotated with the entity.
	bx := tx - math.Sin(rad)*h
	by := ty + math.Cos(rad)*h
	vector.StrokeLine(dst, float32(tx), float32(ty), float32(bx), float32(by), 1.5, overlayCaret, true)
}

// drawGlyph renders the custom transform cursor at the pointer position.
// The OS cursor is hidden while a glyph is active.
func (o *Overlay) drawGlyph(dst *ebiten.Image) {
	x, y := o.CursorScreen.X, o.CursorScreen.Y
	switch o.CursorGlyph {
	case GlyphMove:
		drawArrowBar(dst, x, y, 0)
		drawArrowBar(dst, x, y, 90)
	case GlyphResize:
		drawArrowBar(dst, x, y, o.CursorAngleDeg)
	case GlyphRotate:
		vector.StrokeCircle(dst, float32(x), float32(y), 7, 1.5, overlayAccent, true)
		drawArrowBar(dst, x, y, o.CursorAngleDeg)
	}
}

// drawArrowBar draws a short double-headed bar through (x, y) at angleDeg.
func drawArrowBar(dst *ebiten.Image, x, y, angleDeg float64) {
	const half = 9.0
	rad := angleDeg * math.Pi / 180
	dx, dy := math.Cos(rad)*half, math.Sin(rad)*half
	vector.StrokeLine(dst, float32(x-dx), float32(y-dy), float32(x+dx), float32(y+dy), 2, overlayAccent, true)
}
