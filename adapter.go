package draftbench

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AdapterConfig configures an Adapter.
type AdapterConfig struct {
	Core    *Core
	PanZoom *PanZoom

	// Double-click detection: a second press within Interval and Radius of
	// the first becomes a double-click. Zero values take the defaults below.
	DoubleClickInterval time.Duration
	DoubleClickRadius   float64

	// Clock override for tests; nil means time.Now.
	Clock func() time.Time
}

const (
	defaultDoubleClickInterval = 300 * time.Millisecond
	defaultDoubleClickRadius   = 5.0
)

// Adapter polls ebiten input once per frame and feeds the interaction core:
// pointer events with the modifier mask, key edges, typed characters, focus
// loss, and the pan/zoom shortcuts that work regardless of the active tool
// (wheel zoom, middle-button drag, Alt-drag). Call Update from the game's
// Update and Draw from its Draw.
type Adapter struct {
	core *Core
	pz   *PanZoom
	cfg  AdapterConfig

	focused      bool
	lastCursor   Vec2
	lastClickAt  time.Time
	lastClickPos Vec2
	panDragging  bool
	runes        []rune
	cursorShape  ebiten.CursorShapeType
	cursorHidden bool
}

// NewAdapter wires a core and a pan/zoom controller to ebiten input.
func NewAdapter(cfg AdapterConfig) *Adapter {
	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = defaultDoubleClickInterval
	}
	if cfg.DoubleClickRadius <= 0 {
		cfg.DoubleClickRadius = defaultDoubleClickRadius
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Adapter{
		core:    cfg.Core,
		pz:      cfg.PanZoom,
		cfg:     cfg,
		focused: true,
	}
}

// readModifiers samples the modifier keys into the engine bitmask.
func readModifiers() KeyModifiers {
	return ModifierMask(
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight),
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight),
		ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight),
	)
}

// keyTable maps the ebiten keys the core reacts to. Printable input goes
// through AppendInputChars instead.
var keyTable = [...]struct {
	src ebiten.Key
	dst Key
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyArrowLeft, KeyArrowLeft},
	{ebiten.KeyArrowRight, KeyArrowRight},
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
	{ebiten.KeyZ, KeyZ},
	{ebiten.KeyY, KeyY},
}

// Update polls input and drives the core for one frame. The error return is
// always nil; it exists so the method slots into ebiten's Update signature.
func (a *Adapter) Update() error {
	f := ebiten.IsFocused()
	if a.focused && !f {
		a.core.HandleBlur()
	}
	a.focused = f

	cx, cy := ebiten.CursorPosition()
	cursor := Vec2{X: float64(cx), Y: float64(cy)}
	mods := readModifiers()

	if _, wy := ebiten.Wheel(); wy != 0 {
		a.pz.WheelZoom(cursor, wy)
	}

	a.updatePanDrag(cursor, mods)
	a.updatePointer(cursor, mods)
	a.updateKeys(mods)

	a.runes = ebiten.AppendInputChars(a.runes[:0])
	if len(a.runes) > 0 {
		a.core.HandleTextInput(string(a.runes))
	}

	a.pz.Tick(1.0 / float32(ebiten.TPS()))
	a.core.SetView(a.pz.View())
	a.core.Tick()
	a.core.FlushUpdate()
	a.lastCursor = cursor
	return nil
}

// updatePanDrag handles the always-available pan gestures: middle-button
// drag, Alt-drag, and left-drag while the pan tool is active.
func (a *Adapter) updatePanDrag(cursor Vec2, mods KeyModifiers) {
	wantsPan := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
			(mods.Has(ModAlt) || a.core.ActiveTool() == ToolPan))

	switch {
	case wantsPan && !a.panDragging:
		a.panDragging = true
		a.pz.BeginPan(cursor)
	case wantsPan:
		a.pz.UpdatePan(cursor)
	case a.panDragging:
		a.panDragging = false
		a.pz.EndPan()
	}
}

// updatePointer forwards press/move/release edges to the core. Pan drags
// bypass the core entirely; the handlers never see them.
func (a *Adapter) updatePointer(cursor Vec2, mods KeyModifiers) {
	if a.panDragging {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		now := a.cfg.Clock()
		isDouble := now.Sub(a.lastClickAt) <= a.cfg.DoubleClickInterval &&
			!exceedsRadius(a.lastClickPos, cursor, a.cfg.DoubleClickRadius)
		if isDouble {
			a.lastClickAt = time.Time{}
			a.core.HandleDoubleClick(cursor.X, cursor.Y, MouseButtonLeft, mods)
		} else {
			a.lastClickAt = now
			a.lastClickPos = cursor
			a.core.HandlePointerDown(cursor.X, cursor.Y, MouseButtonLeft, mods)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		a.core.HandlePointerDown(cursor.X, cursor.Y, MouseButtonRight, mods)
	}
	if cursor != a.lastCursor {
		a.core.HandlePointerMove(cursor.X, cursor.Y, MouseButtonLeft, mods)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.core.HandlePointerUp(cursor.X, cursor.Y, MouseButtonLeft, mods)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		a.core.HandlePointerUp(cursor.X, cursor.Y, MouseButtonRight, mods)
	}
}

func (a *Adapter) updateKeys(mods KeyModifiers) {
	for _, e := range keyTable {
		if inpututil.IsKeyJustPressed(e.src) {
			a.core.HandleKeyDown(e.dst, mods)
		}
		if inpututil.IsKeyJustReleased(e.src) {
			a.core.HandleKeyUp(e.dst, mods)
		}
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyControlLeft) ||
		inpututil.IsKeyJustReleased(ebiten.KeyControlRight) {
		a.core.HandleKeyUp(KeyCtrl, mods)
	}
}

// Draw renders the overlay and applies the cursor the active handler wants.
func (a *Adapter) Draw(dst *ebiten.Image) {
	a.core.Overlay().Draw(dst, a.core.View())
	a.applyCursor()
}

func (a *Adapter) applyCursor() {
	c := a.core.Cursor()
	if a.panDragging {
		c = CursorGrabbing
	}

	hidden := c == CursorNone
	if hidden != a.cursorHidden {
		a.cursorHidden = hidden
		if hidden {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	if hidden {
		return
	}

	shape := cursorShapeFor(c)
	if shape != a.cursorShape {
		a.cursorShape = shape
		ebiten.SetCursorShape(shape)
	}
}

// cursorShapeFor maps the handler cursor names to the shapes ebiten offers.
// Grab and grabbing both render as the move shape.
func cursorShapeFor(c Cursor) ebiten.CursorShapeType {
	switch c {
	case CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case CursorText:
		return ebiten.CursorShapeText
	case CursorGrab, CursorGrabbing:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

func exceedsRadius(a, b Vec2, r float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx+dy*dy > r*r
}
