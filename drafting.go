package draftbench

// draftPhase is the drafting handler's lifecycle state. All shape families
// share the same machine shape: idle -> begin (pointer down) -> update
// (pointer move, repeated) -> commit|cancel -> idle. The extra phases carry
// the click-click flows.
type draftPhase uint8

const (
	draftIdle draftPhase = iota
	// draftDragging: pointer is down, click-vs-drag undecided.
	draftDragging
	// draftPinned: click-click flow for line/arrow. The first endpoint is
	// pinned; moves drag the free endpoint; a further click commits.
	draftPinned
	// draftPoly: polyline accumulation. Each click appends a point.
	draftPoly
)

// Default geometry for click-to-create shortcuts, in world units.
const (
	defaultShapeSizeWorld     = 100.0
	defaultPolygonRadiusWorld = 50.0
)

// DraftingHandler implements the shape tools. Each instance is parameterized
// with one tool id and a style snapshot taken at construction, and mirrors
// the engine's draft session just closely enough to decide click-vs-drag and
// to know when to append, commit, or cancel. The engine remains the source
// of truth for draft geometry.
type DraftingHandler struct {
	core     *Core
	settings SettingsStore
	tool     Tool
	kind     DraftKind
	style    DraftStyle
	onUpdate func()

	phase       draftPhase
	startScreen Vec2
	startWorld  Vec2
	current     Vec2
	moved       bool
	points      []Vec2 // polyline points appended so far
	modal       polygonModal
}

func newDraftingHandler(core *Core, tool Tool, settings SettingsStore) *DraftingHandler {
	return &DraftingHandler{
		core:     core,
		settings: settings,
		tool:     tool,
		kind:     draftKindForTool(tool),
		style:    BuildDraftStyle(settings.ToolDefaults()),
	}
}

func draftKindForTool(tool Tool) DraftKind {
	switch tool {
	case ToolLine:
		return DraftLine
	case ToolRect:
		return DraftRect
	case ToolCircle:
		return DraftCircle
	case ToolArrow:
		return DraftArrow
	case ToolPolygon:
		return DraftPolygon
	case ToolPolyline:
		return DraftPolyline
	}
	return DraftNone
}

// Name implements Handler.
func (h *DraftingHandler) Name() string { return string(h.tool) }

// SetOnUpdate implements UpdateSink.
func (h *DraftingHandler) SetOnUpdate(fn func()) { h.onUpdate = fn }

func (h *DraftingHandler) notify() {
	if h.onUpdate != nil {
		h.onUpdate()
	}
}

// payload builds the BeginDraft payload for a session starting at (x, y).
func (h *DraftingHandler) payload(x, y float64) BeginDraftPayload {
	p := BeginDraftPayload{Kind: h.kind, X: x, Y: y, Style: h.style}
	if h.kind == DraftPolygon {
		p.Sides = clampSides(h.settings.ToolDefaults().PolygonSides, polygonSidesMaxWidget)
	}
	if h.kind == DraftArrow {
		p.HeadSizePx = ArrowHeadSize(h.style.StrokeWidthPx)
	}
	return p
}

// OnPointerDown begins or extends the draft. While the polygon side-count
// modal is open all other drafting input is suppressed.
func (h *DraftingHandler) OnPointerDown(ctx *InputContext) Handler {
	if h.modal.open {
		return nil
	}
	if ctx.Button == MouseButtonRight {
		// Right-click commits an in-progress click-click draft.
		if h.phase == draftPinned || h.phase == draftPoly {
			h.finish(ctx.Engine)
		}
		return nil
	}
	if ctx.Button != MouseButtonLeft {
		return nil
	}

	switch h.phase {
	case draftIdle:
		ctx.Engine.BeginDraft(h.payload(ctx.Snapped.X, ctx.Snapped.Y))
		h.phase = draftDragging
		h.startScreen = ctx.Screen
		h.startWorld = ctx.Snapped
		h.current = ctx.Snapped
		h.moved = false

	case draftPinned:
		// The free endpoint lands here; commit the segment.
		ctx.Engine.UpdateDraft(ctx.Snapped.X, ctx.Snapped.Y, ctx.Modifiers)
		h.current = ctx.Snapped
		h.finish(ctx.Engine)

	case draftPoly:
		h.appendPolyPoint(ctx)
	}
	return nil
}

// appendPolyPoint appends a polyline point unless it (nearly) repeats the
// last one; duplicate clicks must not create zero-length segments.
func (h *DraftingHandler) appendPolyPoint(ctx *InputContext) {
	last := h.points[len(h.points)-1]
	if sqDist(last, ctx.Snapped) <= minDraftDeltaSq {
		return
	}
	ctx.Engine.AppendDraftPoint(ctx.Snapped.X, ctx.Snapped.Y, ctx.Modifiers)
	h.points = append(h.points, ctx.Snapped)
	h.current = ctx.Snapped
}

// OnPointerMove forwards the moving corner or free endpoint to the engine
// draft.
func (h *DraftingHandler) OnPointerMove(ctx *InputContext) {
	if h.modal.open || h.phase == draftIdle {
		return
	}
	h.current = ctx.Snapped
	ctx.Engine.UpdateDraft(ctx.Snapped.X, ctx.Snapped.Y, ctx.Modifiers)
	if h.phase == draftDragging && !h.moved && exceedsDragThreshold(h.startScreen, ctx.Screen) {
		h.moved = true
	}
}

// OnPointerUp resolves the click-vs-drag duality. A drag is the conventional
// press-drag-release creation; a click takes the per-tool shortcut path.
func (h *DraftingHandler) OnPointerUp(ctx *InputContext) Handler {
	if h.modal.open || h.phase != draftDragging || ctx.Button != MouseButtonLeft {
		return nil
	}
	if h.moved {
		h.finish(ctx.Engine)
		return nil
	}

	// No drag occurred: the tiny draft started on pointer-down is not worth
	// keeping as-is.
	switch h.kind {
	case DraftRect, DraftCircle:
		// Click creates a default-sized shape centered on the click.
		ctx.Engine.CancelDraft()
		h.phase = draftIdle
		half := defaultShapeSizeWorld / 2
		ctx.Engine.BeginDraft(h.payload(h.startWorld.X-half, h.startWorld.Y-half))
		ctx.Engine.UpdateDraft(h.startWorld.X+half, h.startWorld.Y+half, ctx.Modifiers)
		ctx.Engine.CommitDraft()

	case DraftPolygon:
		// Click opens the side-count input instead.
		ctx.Engine.CancelDraft()
		h.phase = draftIdle
		h.modal.openAt(h.startWorld, ctx.Screen, h.settings.ToolDefaults().PolygonSides)
		h.notify()

	case DraftLine, DraftArrow:
		// Click-click flow: pin the first endpoint, keep the draft alive.
		h.phase = draftPinned

	case DraftPolyline:
		h.phase = draftPoly
		h.points = append(h.points[:0], h.startWorld)
	}
	return nil
}

// OnDoubleClick commits click-click drafts.
func (h *DraftingHandler) OnDoubleClick(ctx *InputContext) {
	if h.phase == draftPinned || h.phase == draftPoly {
		h.finish(ctx.Engine)
	}
}

// OnKeyDown handles Escape (cancel modal or draft) and Enter (commit an
// in-progress polyline).
func (h *DraftingHandler) OnKeyDown(ctx *KeyContext) {
	switch ctx.Key {
	case KeyEscape:
		if h.modal.open {
			h.CancelPolygonModal()
			return
		}
		if h.phase != draftIdle {
			ctx.Engine.CancelDraft()
			h.reset()
		}
	case KeyEnter:
		if h.phase == draftPoly {
			h.finish(ctx.Engine)
		}
	}
}

// OnCancel mirrors Escape.
func (h *DraftingHandler) OnCancel() {
	if h.modal.open {
		h.CancelPolygonModal()
		return
	}
	if h.phase != draftIdle && h.core.engine != nil {
		h.core.engine.CancelDraft()
	}
	h.reset()
}

// OnBlur commits an accumulated polyline (leaving the canvas commits it) and
// drops any other in-progress draft.
func (h *DraftingHandler) OnBlur() {
	h.endOfLife()
}

// OnLeave commits an in-progress polyline, so accumulated points are never
// silently discarded, but cancels any other in-progress shape.
func (h *DraftingHandler) OnLeave() {
	h.endOfLife()
}

func (h *DraftingHandler) endOfLife() {
	e := h.core.engine
	if e == nil {
		return
	}
	if h.phase == draftPoly {
		h.finish(e)
		return
	}
	if h.phase != draftIdle {
		e.CancelDraft()
	}
	h.reset()
}

// finish commits the draft when it has real extent and cancels it otherwise;
// no zero-size entity is ever created.
func (h *DraftingHandler) finish(e Engine) {
	if h.hasDraftDelta() {
		e.CommitDraft()
	} else {
		e.CancelDraft()
	}
	h.reset()
}

// hasDraftDelta reports whether the draft has non-degenerate extent: at
// least two distinct polyline points, or a corner moved away from the start.
func (h *DraftingHandler) hasDraftDelta() bool {
	if h.phase == draftPoly {
		return len(h.points) >= 2
	}
	return sqDist(h.startWorld, h.current) > minDraftDeltaSq
}

func (h *DraftingHandler) reset() {
	h.phase = draftIdle
	h.moved = false
	h.points = h.points[:0]
}

// --- Polygon side-count modal ---

// PolygonModalOpen reports whether the side-count input is showing.
func (h *DraftingHandler) PolygonModalOpen() bool { return h.modal.open }

// PolygonModalAnchor returns the screen point the input is anchored at.
func (h *DraftingHandler) PolygonModalAnchor() Vec2 { return h.modal.anchor }

// PolygonModalSides returns the pending side count.
func (h *DraftingHandler) PolygonModalSides() int { return h.modal.sides }

// TypePolygonModalSides sets the pending side count from typed input,
// clamped to the typing range.
func (h *DraftingHandler) TypePolygonModalSides(n int) {
	if !h.modal.open {
		return
	}
	h.modal.sides = clampSides(n, polygonSidesMaxTyping)
	h.notify()
}

// SetPolygonModalSides sets the pending side count from the input widget,
// which enforces the wider widget range.
func (h *DraftingHandler) SetPolygonModalSides(n int) {
	if !h.modal.open {
		return
	}
	h.modal.sides = clampSides(n, polygonSidesMaxWidget)
	h.notify()
}

// ConfirmPolygonModal creates a regular polygon of the pending side count
// centered at the original click and persists the count as the new tool
// default.
func (h *DraftingHandler) ConfirmPolygonModal() {
	if !h.modal.open || h.core.engine == nil {
		return
	}
	e := h.core.engine
	center := h.modal.center
	sides := h.modal.sides

	p := h.payload(center.X, center.Y)
	p.Sides = sides
	e.BeginDraft(p)
	e.UpdateDraft(center.X+defaultPolygonRadiusWorld, center.Y, 0)
	e.CommitDraft()

	h.settings.SetPolygonSides(sides)
	h.modal.close()
	h.notify()
}

// CancelPolygonModal discards the pending center and position.
func (h *DraftingHandler) CancelPolygonModal() {
	if !h.modal.open {
		return
	}
	h.modal.close()
	h.notify()
}

// Cursor implements CursorProvider.
func (h *DraftingHandler) Cursor() Cursor { return CursorCrosshair }

// AppendOverlay publishes the modal so the host can render the numeric
// input at its anchor.
func (h *DraftingHandler) AppendOverlay(o *Overlay) {
	if h.modal.open {
		o.PolygonModalVisible = true
		o.PolygonModalAnchor = h.modal.anchor
		o.PolygonModalSides = h.modal.sides
	}
}

func sqDist(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
