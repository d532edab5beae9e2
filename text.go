package draftbench

// CaretInfo is the caret geometry a text tool reports through its listener.
// Coordinates are local to the text's anchor, which sits at the top-left in
// a Y-up convention; RotationDeg is the entity's rotation.
type CaretInfo struct {
	LocalX, LocalY   float64
	Height           float64
	RotationDeg      float64
	AnchorX, AnchorY float64
}

// TextTool is the per-document text engine façade the Text handler bridges
// to. It owns caret movement, composition, and its own editing history; the
// handler only routes pointer/keyboard input and republishes caret geometry.
type TextTool interface {
	// Active reports whether an edit session is open.
	Active() bool
	// ActiveEntity returns the id of the entity being edited, 0 if none.
	ActiveEntity() uint32

	// BeginEdit opens an edit session on an existing text entity at a local
	// position (anchor-relative, Y-up).
	BeginEdit(id uint32, localX, localY, rotationDeg float64, boxMode bool)
	// PointerDown forwards a pointer press within the active edit session.
	PointerDown(localX, localY float64)
	// BeginNew creates a new text entity at a world point and opens an edit
	// session on it, returning the new id.
	BeginNew(x, y float64) uint32

	// Commit ends the session keeping the text; Cancel discards the edit.
	Commit()
	Cancel()

	// HandleKey processes a non-text key (arrows, Home/End, Delete...).
	// Returns true if the key was consumed.
	HandleKey(key Key, mods KeyModifiers) bool
	// InsertText inserts typed or composed text at the caret.
	InsertText(s string)
	// ResetHistory collapses the tool's own editing history. Text
	// composition has its own undo granularity distinct from document-level
	// undo, so Ctrl+Z/Y are routed here while editing.
	ResetHistory()

	// Listeners for caret and selection geometry. Pass nil to detach.
	SetCaretListener(fn func(CaretInfo))
	SetSelectionListener(fn func(rects []Rect))
}

// TextHandler bridges pointer and keyboard events to the text tool and
// publishes a caret/selection overlay. Only one text entity may be in edit
// mode at a time.
type TextHandler struct {
	tool     TextTool
	settings SettingsStore
	onUpdate func()

	caretVisible  bool
	caretWorld    Vec2
	caretHeight   float64
	caretAngleDeg float64
	selRects      []Rect
}

func newTextHandler(tool TextTool, settings SettingsStore) *TextHandler {
	return &TextHandler{tool: tool, settings: settings}
}

// Name implements Handler.
func (h *TextHandler) Name() string { return "text" }

// SetOnUpdate implements UpdateSink.
func (h *TextHandler) SetOnUpdate(fn func()) { h.onUpdate = fn }

func (h *TextHandler) notify() {
	if h.onUpdate != nil {
		h.onUpdate()
	}
}

// OnEnter attaches the caret/selection listeners.
func (h *TextHandler) OnEnter() {
	if h.tool == nil {
		return
	}
	h.tool.SetCaretListener(h.onCaret)
	h.tool.SetSelectionListener(h.onSelection)
}

// OnPointerDown routes a press to the edit session, opens one on a text
// hit, or starts a brand-new text entity on empty space.
func (h *TextHandler) OnPointerDown(ctx *InputContext) Handler {
	if h.tool == nil || ctx.Button != MouseButtonLeft {
		return nil
	}
	res := ctx.Engine.PickEx(ctx.World.X, ctx.World.Y, PickTolerancePx, ctx.View.Scale, MaskFor(KindText))

	if res.Hit() {
		// Only one entity may be in edit mode: commit any other edit first.
		if h.tool.Active() && h.tool.ActiveEntity() != res.ID {
			h.tool.Commit()
			h.clearCaret()
		}
		info, ok := ctx.Engine.EntityInfo(res.ID)
		if !ok {
			return nil
		}
		lx, ly := worldToTextLocal(ctx.World, info)
		if h.tool.Active() && h.tool.ActiveEntity() == res.ID {
			h.tool.PointerDown(lx, ly)
		} else {
			h.tool.BeginEdit(res.ID, lx, ly, info.RotationDeg, info.TextBoxMode)
		}
		return nil
	}

	if h.tool.Active() {
		// Clicking away ends the edit; typed text is kept.
		h.tool.Commit()
		h.clearCaret()
		return nil
	}

	h.beginNewEntity(ctx)
	return nil
}

// beginNewEntity creates a text entity at the click point and pushes the
// text defaults as style overrides. A nil default is the ByLayer sentinel:
// no override is sent and the entity inherits the layer style.
func (h *TextHandler) beginNewEntity(ctx *InputContext) {
	id := h.tool.BeginNew(ctx.World.X, ctx.World.Y)
	if id == 0 {
		return
	}
	d := h.settings.ToolDefaults().Text
	var o TextStyleOverride
	o.TextColor = d.Color
	if d.BackgroundColor != nil {
		o.BackgroundColor = d.BackgroundColor
		enabled := d.BackgroundEnabled
		o.BackgroundEnabled = &enabled
	}
	if o.TextColor != nil || o.BackgroundColor != nil {
		ctx.Engine.ApplyTextStyle(id, o)
	}
}

// OnKeyDown intercepts the editing-history chords and Escape; everything
// else goes to the tool.
func (h *TextHandler) OnKeyDown(ctx *KeyContext) {
	if h.tool == nil {
		return
	}
	if ctx.Modifiers.HasAny(ModCtrl|ModMeta) && (ctx.Key == KeyZ || ctx.Key == KeyY) {
		h.tool.ResetHistory()
		return
	}
	if ctx.Key == KeyEscape {
		if h.tool.Active() {
			h.tool.Cancel()
			h.clearCaret()
		}
		return
	}
	h.tool.HandleKey(ctx.Key, ctx.Modifiers)
}

// InsertText forwards printable input to the tool.
func (h *TextHandler) InsertText(s string) {
	if h.tool == nil || !h.tool.Active() {
		return
	}
	h.tool.InsertText(s)
}

// OnCancel cancels the edit session.
func (h *TextHandler) OnCancel() {
	if h.tool != nil && h.tool.Active() {
		h.tool.Cancel()
	}
	h.clearCaret()
}

// OnLeave commits an active edit and detaches the listeners. Typed text is
// never discarded on a tool switch.
func (h *TextHandler) OnLeave() {
	if h.tool == nil {
		return
	}
	if h.tool.Active() {
		h.tool.Commit()
	}
	h.tool.SetCaretListener(nil)
	h.tool.SetSelectionListener(nil)
	h.clearCaret()
}

// beginEditFromPick is the double-click hand-off from the selection tool:
// begin editing the clicked entity at the clicked sub-position.
func (h *TextHandler) beginEditFromPick(ctx *InputContext, res PickResult) {
	if h.tool == nil {
		return
	}
	info, ok := ctx.Engine.EntityInfo(res.ID)
	if !ok {
		return
	}
	lx, ly := worldToTextLocal(ctx.World, info)
	h.tool.BeginEdit(res.ID, lx, ly, info.RotationDeg, info.TextBoxMode)
}

// onCaret republishes caret geometry in world space: the local offset is
// rotated by the entity's rotation around its anchor.
func (h *TextHandler) onCaret(ci CaretInfo) {
	wx, wy := textLocalToWorld(ci.LocalX, ci.LocalY, ci.AnchorX, ci.AnchorY, ci.RotationDeg)
	h.caretVisible = true
	h.caretWorld = Vec2{X: wx, Y: wy}
	h.caretHeight = ci.Height
	h.caretAngleDeg = ci.RotationDeg
	h.notify()
}

// onSelection republishes the selection rectangles.
func (h *TextHandler) onSelection(rects []Rect) {
	h.selRects = append(h.selRects[:0], rects...)
	h.notify()
}

func (h *TextHandler) clearCaret() {
	h.caretVisible = false
	h.selRects = h.selRects[:0]
	h.notify()
}

// Cursor implements CursorProvider.
func (h *TextHandler) Cursor() Cursor { return CursorText }

// AppendOverlay contributes the caret and selection rectangles.
func (h *TextHandler) AppendOverlay(o *Overlay) {
	if h.caretVisible {
		o.CaretVisible = true
		o.CaretWorld = h.caretWorld
		o.CaretHeight = h.caretHeight
		o.CaretAngleDeg = h.caretAngleDeg
	}
	o.TextSelection = append(o.TextSelection, h.selRects...)
}

// worldToTextLocal converts a world point to text-local coordinates:
// relative to the entity's anchor (top-left), Y increasing upward, with the
// entity's rotation removed.
func worldToTextLocal(world Vec2, info EntityInfo) (lx, ly float64) {
	ux, uy := rotatePoint(world.X, world.Y, info.X, info.Y, -info.RotationDeg)
	return ux - info.X, info.Y - uy
}

// textLocalToWorld is the inverse mapping used for caret republication.
func textLocalToWorld(lx, ly, anchorX, anchorY, rotationDeg float64) (wx, wy float64) {
	return rotatePoint(anchorX+lx, anchorY-ly, anchorX, anchorY, rotationDeg)
}
