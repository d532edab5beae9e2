package draftbench

// selPhase is the selection handler's tagged interaction state. Exactly one
// is active at a time; transitions are pointer-driven:
//
//	none -> pending -> transform -> none   (click on a body, drag to move)
//	none -> marquee -> none                (click on empty space)
type selPhase uint8

const (
	selNone selPhase = iota
	// selPending: pointer is down on a body hit, drag-vs-click undecided.
	selPending
	// selMarquee: box select in progress.
	selMarquee
	// selTransform: an engine-side transform session is active.
	selTransform
)

// SelectionHandler implements the select tool: click selection, Ctrl-click
// cycling, marquee box select, and handle-driven transform sessions.
type SelectionHandler struct {
	core     *Core
	onUpdate func()
	phase    selPhase

	// pending state: the hit recorded at pointer-down and the selection
	// decision to apply if the gesture turns out to be a click.
	pendingStartScreen Vec2
	pendingID          uint32
	pendingWasSelected bool
	pendingApplied     bool // selection already applied at down (Ctrl path)
	pendingMods        KeyModifiers

	// marquee state: world-space corners plus the screen-space anchor for
	// the drag threshold and sweep direction.
	marqueeStartScreen Vec2
	marqueeStartWorld  Vec2
	marqueeCurrent     Vec2
	marqueeMoved       bool

	cycle     cycleState
	cursor    cursorState
	hover     hoverThrottle
	transform transformController

	// hover plumbing captured from the last move for the trailing tick.
	// The context itself is never retained.
	hoverFn    HoverPickFunc
	eng        Engine
	lastScreen Vec2
}

func newSelectionHandler(core *Core) *SelectionHandler {
	return &SelectionHandler{
		core:  core,
		hover: newHoverThrottle(core.cfg.HoverThrottleEnabled, core.cfg.HoverThrottleInterval, core.cfg.Clock),
	}
}

// Name implements Handler.
func (h *SelectionHandler) Name() string { return "select" }

// SetOnUpdate implements UpdateSink.
func (h *SelectionHandler) SetOnUpdate(fn func()) { h.onUpdate = fn }

func (h *SelectionHandler) notify() {
	if h.onUpdate != nil {
		h.onUpdate()
	}
}

// OnPointerDown runs the hit priority ladder: explicit selection handles
// first, then polygon contour grips, then entity bodies, and finally empty
// space, which anchors a marquee.
func (h *SelectionHandler) OnPointerDown(ctx *InputContext) Handler {
	if ctx.Button != MouseButtonLeft {
		return nil
	}
	h.cursor.reset()
	res := ctx.Engine.PickEx(ctx.World.X, ctx.World.Y, PickTolerancePx, ctx.View.Scale, PickMaskAll)

	switch {
	case res.SubTarget == SubTargetResizeHandle:
		mode := TransformResize
		if res.SubIndex >= sideHandleBase {
			mode = TransformSideResize
		}
		h.beginHandleTransform(ctx, res, mode)

	case res.SubTarget == SubTargetRotateHandle:
		h.beginHandleTransform(ctx, res, TransformRotate)

	case (res.SubTarget == SubTargetVertex || res.SubTarget == SubTargetEdge) &&
		h.core.cfg.PolygonContour && contourDraggable(res.Kind):
		mode := TransformVertexDrag
		if res.SubTarget == SubTargetEdge {
			mode = TransformEdgeDrag
		}
		h.transform.begin(ctx, []uint32{res.ID}, mode, res.ID, res.SubIndex)
		h.phase = selTransform

	case res.Hit():
		h.beginPending(ctx, res)

	default:
		h.cycle.reset()
		h.phase = selMarquee
		h.marqueeStartScreen = ctx.Screen
		h.marqueeStartWorld = ctx.World
		h.marqueeCurrent = ctx.World
		h.marqueeMoved = false
	}
	return nil
}

// beginHandleTransform starts a transform session from a handle hit. The
// handle index rides in the vertexIndex slot of the session protocol.
func (h *SelectionHandler) beginHandleTransform(ctx *InputContext, res PickResult, mode TransformMode) {
	ids := ctx.Engine.SelectedIDs()
	if len(ids) == 0 {
		ids = []uint32{res.ID}
	}
	h.transform.begin(ctx, ids, mode, res.ID, res.SubIndex)
	h.phase = selTransform
}

// beginPending records a body hit and enters the drag-vs-click limbo. With
// Ctrl held the selection change happens immediately (cycling among stacked
// candidates); otherwise the decision is deferred to pointer-up so a drag
// can move the existing selection without first destroying it.
func (h *SelectionHandler) beginPending(ctx *InputContext, res PickResult) {
	h.phase = selPending
	h.pendingStartScreen = ctx.Screen
	h.pendingID = res.ID
	h.pendingMods = ctx.Modifiers
	h.pendingWasSelected = containsID(ctx.Engine.SelectedIDs(), res.ID)
	h.pendingApplied = false

	if ctx.Modifiers.HasAny(ModCtrl | ModMeta) {
		candidates := bodyCandidates(ctx)
		if len(candidates) >= 2 {
			h.cycle.step(ctx.Engine, candidates, ctx.Modifiers.Has(ModShift))
		} else {
			h.cycle.reset()
			ctx.Engine.SetSelection([]uint32{res.ID}, SelectToggle)
		}
		h.pendingApplied = true
	}
}

// bodyCandidates returns the unique ids of body-level candidates under the
// pointer, in engine candidate order, excluding handle hits.
func bodyCandidates(ctx *InputContext) []uint32 {
	all := ctx.Engine.PickAll(ctx.World.X, ctx.World.Y, PickTolerancePx, ctx.View.Scale, PickMaskAll)
	var ids []uint32
	for _, c := range all {
		switch c.SubTarget {
		case SubTargetResizeHandle, SubTargetRotateHandle:
			continue
		}
		if !containsID(ids, c.ID) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// OnPointerMove advances the per-phase machine: hover cursor feedback in
// none, drag promotion in pending, box tracking in marquee, and live session
// updates in transform.
func (h *SelectionHandler) OnPointerMove(ctx *InputContext) {
	h.eng = ctx.Engine
	h.lastScreen = ctx.Screen

	switch h.phase {
	case selNone:
		h.hoverFn = ctx.HoverPick
		if res, ok := h.hover.pick(ctx.HoverPick, ctx.World.X, ctx.World.Y); ok {
			h.cursor.reset()
			h.cursor.armFromPick(ctx.Engine, res, ctx.Screen, h.core.cfg.PolygonContour)
		}

	case selPending:
		if exceedsDragThreshold(h.pendingStartScreen, ctx.Screen) {
			h.promoteToTransform(ctx)
		}

	case selMarquee:
		h.marqueeCurrent = ctx.World
		if !h.marqueeMoved && exceedsDragThreshold(h.marqueeStartScreen, ctx.Screen) {
			h.marqueeMoved = true
		}

	case selTransform:
		h.transform.update(ctx)
	}
}

// promoteToTransform turns a pending click into a move session once the drag
// threshold is crossed. A drag starting on an unselected entity first makes
// it the selection (replace, or add with Shift) so the move applies to it.
func (h *SelectionHandler) promoteToTransform(ctx *InputContext) {
	if !h.pendingApplied && !h.pendingWasSelected {
		mode := SelectReplace
		if h.pendingMods.Has(ModShift) {
			mode = SelectAdd
		}
		ctx.Engine.SetSelection([]uint32{h.pendingID}, mode)
	}
	ids := ctx.Engine.SelectedIDs()
	h.transform.begin(ctx, ids, TransformMove, 0, -1)
	h.phase = selTransform
}

// OnPointerUp resolves the gesture: commit a transform, apply the deferred
// click-selection decision, or commit/clear a marquee.
func (h *SelectionHandler) OnPointerUp(ctx *InputContext) Handler {
	switch h.phase {
	case selTransform:
		h.transform.commit(ctx.Engine)

	case selPending:
		if !h.pendingApplied {
			h.applyClickSelection(ctx)
		}

	case selMarquee:
		if h.marqueeMoved {
			mode := marqueeModeFor(h.marqueeStartScreen.X, ctx.Screen.X)
			commitMarquee(ctx.Engine, h.marqueeStartWorld, ctx.World, mode, marqueeCombine(ctx.Modifiers))
		} else if ctx.Modifiers == 0 {
			// A plain click on empty space deselects everything.
			ctx.Engine.ClearSelection()
		}
	}
	h.phase = selNone
	return nil
}

// applyClickSelection applies the selection-mode decision computed at
// pointer-down for a click that never became a drag. A plain click on an
// already-selected entity leaves the selection unchanged rather than
// collapsing it to a singleton.
func (h *SelectionHandler) applyClickSelection(ctx *InputContext) {
	if h.pendingMods.Has(ModShift) {
		ctx.Engine.SetSelection([]uint32{h.pendingID}, SelectToggle)
		return
	}
	if !h.pendingWasSelected {
		ctx.Engine.SetSelection([]uint32{h.pendingID}, SelectReplace)
	}
}

// OnDoubleClick hands text entities off to the text tool for in-place
// editing at the clicked position.
func (h *SelectionHandler) OnDoubleClick(ctx *InputContext) {
	res := ctx.Engine.PickEx(ctx.World.X, ctx.World.Y, PickTolerancePx, ctx.View.Scale, MaskFor(KindText))
	if !res.Hit() || res.Kind != KindText {
		return
	}
	next := h.core.switchTool(ToolText)
	if th, ok := next.(*TextHandler); ok {
		th.beginEditFromPick(ctx, res)
	}
}

// OnKeyDown handles Escape (cancel transform, else clear selection) and
// Delete/Backspace (batch delete of the selection).
func (h *SelectionHandler) OnKeyDown(ctx *KeyContext) {
	switch ctx.Key {
	case KeyEscape:
		if h.transform.active {
			h.transform.cancel(ctx.Engine)
			h.phase = selNone
			return
		}
		if h.phase == selMarquee {
			h.phase = selNone
			return
		}
		ctx.Engine.ClearSelection()

	case KeyDelete, KeyBackspace:
		ids := ctx.Engine.SelectedIDs()
		if len(ids) == 0 {
			return
		}
		ctx.Engine.DeleteEntities(ids)
		ctx.Engine.ClearSelection()
	}
}

// OnKeyUp invalidates the Ctrl-click cycle when the modifier chord ends.
func (h *SelectionHandler) OnKeyUp(ctx *KeyContext) {
	if ctx.Key == KeyCtrl {
		h.cycle.reset()
	}
}

// OnCancel mirrors Escape for host-initiated cancels.
func (h *SelectionHandler) OnCancel() {
	if h.transform.active && h.core.engine != nil {
		h.transform.cancel(h.core.engine)
	}
	h.phase = selNone
	h.cursor.reset()
}

// OnBlur abandons modifier-dependent state when the window loses focus.
func (h *SelectionHandler) OnBlur() {
	h.cycle.reset()
	h.hover.reset()
	h.cursor.reset()
	if h.transform.active && h.core.engine != nil {
		h.transform.cancel(h.core.engine)
	}
	h.phase = selNone
}

// OnLeave cancels any live session before the handler is discarded.
func (h *SelectionHandler) OnLeave() {
	if h.transform.active && h.core.engine != nil {
		h.transform.cancel(h.core.engine)
	}
	h.hover.reset()
}

// Tick fires the hover throttle's trailing edge.
func (h *SelectionHandler) Tick() {
	if h.phase != selNone || h.hoverFn == nil {
		return
	}
	if res, ok := h.hover.tick(h.hoverFn); ok {
		h.cursor.reset()
		if h.eng != nil {
			h.cursor.armFromPick(h.eng, res, h.lastScreen, h.core.cfg.PolygonContour)
		}
		h.notify()
	}
}

// Cursor implements the cursor contract: native cursor hidden whenever a
// custom glyph is being drawn.
func (h *SelectionHandler) Cursor() Cursor {
	if h.cursor.active() {
		return CursorNone
	}
	return CursorDefault
}

// AppendOverlay contributes the marquee box, the custom cursor glyph, and
// the rotation readout of a live rotate session.
func (h *SelectionHandler) AppendOverlay(o *Overlay) {
	if h.phase == selMarquee && h.marqueeMoved {
		o.MarqueeVisible = true
		o.Marquee = RectFromCorners(h.marqueeStartWorld, h.marqueeCurrent)
		o.MarqueeCrossing = marqueeModeFor(h.marqueeStartScreen.X, h.lastScreen.X) == MarqueeCrossing
	}
	if h.cursor.active() {
		o.CursorGlyph = h.cursor.glyph
		o.CursorScreen = h.cursor.screen
		o.CursorAngleDeg = h.cursor.angleDeg
	}
	if h.transform.active && h.transform.mode == TransformRotate && h.core.engine != nil {
		ts := h.core.engine.TransformState()
		if ts.Active {
			o.RotationVisible = true
			o.RotationDeltaDeg = ts.RotationDeltaDeg
			o.RotationPivot = Vec2{X: ts.PivotX, Y: ts.PivotY}
		}
	}
}
