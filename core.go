package draftbench

import (
	"log"
	"time"
)

// CoreConfig configures a Core. Zero values are usable: settings default to
// an in-memory store and the hover throttle stays disabled.
type CoreConfig struct {
	// Settings is the tool-default store handlers read from.
	Settings SettingsStore

	// TextTool is the per-document text engine façade the Text handler
	// drives. Leaving it nil makes the text tool inert.
	TextTool TextTool

	// OnUpdate is the change notification, fired at most once per frame
	// from FlushUpdate regardless of how many state changes occurred.
	OnUpdate func()

	// OnToolChange fires when the core itself switches tools (double-click
	// text hand-off), so the host's tool UI can follow.
	OnToolChange func(Tool)

	// HoverThrottleEnabled bounds hover picking to one engine query per
	// HoverThrottleInterval with leading+trailing semantics. Disabled, every
	// pointer move picks.
	HoverThrottleEnabled  bool
	HoverThrottleInterval time.Duration

	// PolygonContour enables vertex/edge grip dragging on polygon contours.
	PolygonContour bool

	// Clock overrides the monotonic clock used by the hover throttle.
	// Tests inject a fake; nil means time.Now.
	Clock func() time.Time
}

// Core is the interaction dispatcher. It owns the single active handler,
// translates raw events into context objects, performs handler transitions,
// and aggregates the UI-visible outputs (cursor, overlay, handler name).
//
// Core is single-goroutine: all methods must be called from the game loop.
type Core struct {
	cfg      CoreConfig
	engine   Engine
	view     ViewTransform
	canvasW  float64
	canvasH  float64
	active   Handler
	tool     Tool
	ctx      InputContext // reused per event, written in place
	keyCtx   KeyContext
	overlay  Overlay // reused per read
	pending  bool    // at most one outstanding update notification
	textFocd bool    // focus is inside a text input; suppress keys except Escape
	debug    bool
}

// NewCore creates a dispatcher with an Idle handler active.
func NewCore(cfg CoreConfig) *Core {
	if cfg.Settings == nil {
		cfg.Settings = NewMemorySettings()
	}
	if cfg.HoverThrottleInterval <= 0 {
		cfg.HoverThrottleInterval = 16 * time.Millisecond
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	c := &Core{cfg: cfg, view: ViewTransform{Scale: 1}}
	c.active = newIdleHandler()
	return c
}

// AttachEngine attaches the engine handle. Until this is called the UI is
// inert: context building fails and every event is dropped silently.
func (c *Core) AttachEngine(e Engine) {
	c.engine = e
	c.requestUpdate()
}

// Engine returns the attached engine handle, or nil before AttachEngine.
func (c *Core) Engine() Engine { return c.engine }

// SetView updates the view transform snapshot used for context building.
func (c *Core) SetView(v ViewTransform) {
	if v.Scale <= 0 {
		v.Scale = 1
	}
	c.view = v
}

// View returns the current view transform snapshot.
func (c *Core) View() ViewTransform { return c.view }

// SetCanvasSize records the canvas pixel dimensions passed to the engine on
// session calls.
func (c *Core) SetCanvasSize(w, h float64) {
	c.canvasW = w
	c.canvasH = h
}

// SetTextInputFocused tells the core that keyboard focus sits inside a text
// input, textarea, or equivalent. While set, keyboard events are suppressed.
// Escape is the exception: it always reaches the handler so a modal or edit
// session can be cancelled.
func (c *Core) SetTextInputFocused(focused bool) {
	c.textFocd = focused
}

// SetDebugMode logs handler transitions to stderr when enabled.
func (c *Core) SetDebugMode(enabled bool) { c.debug = enabled }

// --- Tool switching ---

// SetActiveTool maps a tool to a freshly constructed handler and transitions
// to it. Constructing a new handler on every switch guarantees no residual
// state leaks between tools.
func (c *Core) SetActiveTool(tool Tool) {
	c.tool = tool
	c.transition(c.newHandlerForTool(tool))
}

// ActiveTool returns the tool most recently set.
func (c *Core) ActiveTool() Tool { return c.tool }

func (c *Core) newHandlerForTool(tool Tool) Handler {
	switch {
	case tool == ToolSelect:
		return newSelectionHandler(c)
	case tool == ToolPan:
		return newPanHandler()
	case tool == ToolText:
		return newTextHandler(c.cfg.TextTool, c.cfg.Settings)
	case isShapeTool(tool):
		return newDraftingHandler(c, tool, c.cfg.Settings)
	}
	return newIdleHandler()
}

// switchTool is the internal entry used by handlers that hand off to another
// tool (selection double-click → text). It transitions and notifies the host.
func (c *Core) switchTool(tool Tool) Handler {
	c.tool = tool
	next := c.newHandlerForTool(tool)
	c.transition(next)
	if c.cfg.OnToolChange != nil {
		c.cfg.OnToolChange(tool)
	}
	return next
}

// transition swaps the active handler. Strictly serialized: OnLeave of the
// outgoing handler completes before SetOnUpdate and OnEnter of the incoming
// one, and the update notification is requested only after both.
func (c *Core) transition(next Handler) {
	if next == nil || next == c.active {
		return
	}
	if old, ok := c.active.(LeaveHandler); ok {
		old.OnLeave()
	}
	if c.debug {
		from := "none"
		if c.active != nil {
			from = c.active.Name()
		}
		log.Printf("draftbench: handler %s -> %s", from, next.Name())
	}
	c.active = next
	if sink, ok := next.(UpdateSink); ok {
		sink.SetOnUpdate(c.requestUpdate)
	}
	if enter, ok := next.(EnterHandler); ok {
		enter.OnEnter()
	}
	c.requestUpdate()
}

// --- Event entry points ---

// buildContext writes the per-event context in place. Returns nil when no
// engine is attached; the caller drops the event.
func (c *Core) buildContext(screenX, screenY float64, button MouseButton, mods KeyModifiers) *InputContext {
	if c.engine == nil {
		return nil
	}
	ctx := &c.ctx
	ctx.Screen.X, ctx.Screen.Y = screenX, screenY
	ctx.World.X, ctx.World.Y = c.view.ScreenToWorld(screenX, screenY)
	// Snap resolution is delegated to the engine during sessions; the
	// snapped point equals the raw world point here.
	ctx.Snapped = ctx.World
	ctx.Engine = c.engine
	ctx.HoverPick = c.hoverPick
	ctx.View = c.view
	ctx.CanvasW, ctx.CanvasH = c.canvasW, c.canvasH
	ctx.Button = button
	ctx.Modifiers = mods
	return ctx
}

// hoverPick is the HoverPickFunc handed to handlers: a full-mask pick at the
// standard tolerance under the current view.
func (c *Core) hoverPick(x, y float64) PickResult {
	if c.engine == nil {
		return PickResult{}
	}
	return c.engine.PickEx(x, y, PickTolerancePx, c.view.Scale, PickMaskAll)
}

// HandlePointerDown routes a pointer press to the active handler.
func (c *Core) HandlePointerDown(screenX, screenY float64, button MouseButton, mods KeyModifiers) {
	ctx := c.buildContext(screenX, screenY, button, mods)
	if ctx == nil {
		return
	}
	if h, ok := c.active.(PointerDownHandler); ok {
		c.transition(h.OnPointerDown(ctx))
	}
	c.requestUpdate()
}

// HandlePointerMove routes a pointer move to the active handler.
func (c *Core) HandlePointerMove(screenX, screenY float64, button MouseButton, mods KeyModifiers) {
	ctx := c.buildContext(screenX, screenY, button, mods)
	if ctx == nil {
		return
	}
	if h, ok := c.active.(PointerMoveHandler); ok {
		h.OnPointerMove(ctx)
	}
	c.requestUpdate()
}

// HandlePointerUp routes a pointer release to the active handler.
func (c *Core) HandlePointerUp(screenX, screenY float64, button MouseButton, mods KeyModifiers) {
	ctx := c.buildContext(screenX, screenY, button, mods)
	if ctx == nil {
		return
	}
	if h, ok := c.active.(PointerUpHandler); ok {
		c.transition(h.OnPointerUp(ctx))
	}
	c.requestUpdate()
}

// HandleDoubleClick routes a double-click to the active handler.
func (c *Core) HandleDoubleClick(screenX, screenY float64, button MouseButton, mods KeyModifiers) {
	ctx := c.buildContext(screenX, screenY, button, mods)
	if ctx == nil {
		return
	}
	if h, ok := c.active.(DoubleClickHandler); ok {
		h.OnDoubleClick(ctx)
	}
	c.requestUpdate()
}

// HandleCancel forwards the universal cancel signal.
func (c *Core) HandleCancel() {
	if c.engine == nil {
		return
	}
	if h, ok := c.active.(CancelHandler); ok {
		h.OnCancel()
	}
	c.requestUpdate()
}

// HandleKeyDown routes a key press. Keys are suppressed while a text input
// has focus, except Escape.
func (c *Core) HandleKeyDown(key Key, mods KeyModifiers) {
	if c.engine == nil {
		return
	}
	if c.textFocd && key != KeyEscape {
		return
	}
	if h, ok := c.active.(KeyDownHandler); ok {
		c.keyCtx = KeyContext{Key: key, Modifiers: mods, Engine: c.engine, View: c.view}
		h.OnKeyDown(&c.keyCtx)
	}
	c.requestUpdate()
}

// HandleKeyUp routes a key release under the same suppression rule.
func (c *Core) HandleKeyUp(key Key, mods KeyModifiers) {
	if c.engine == nil {
		return
	}
	if c.textFocd && key != KeyEscape {
		return
	}
	if h, ok := c.active.(KeyUpHandler); ok {
		c.keyCtx = KeyContext{Key: key, Modifiers: mods, Engine: c.engine, View: c.view}
		h.OnKeyUp(&c.keyCtx)
	}
	c.requestUpdate()
}

// HandleBlur tells the active handler the window lost focus.
func (c *Core) HandleBlur() {
	if h, ok := c.active.(BlurHandler); ok {
		h.OnBlur()
	}
	c.requestUpdate()
}

// HandleTextInput forwards printable input to the active handler when it is
// the text handler; other handlers ignore typed characters.
func (c *Core) HandleTextInput(s string) {
	if s == "" || c.engine == nil {
		return
	}
	if th, ok := c.active.(*TextHandler); ok {
		th.InsertText(s)
		c.requestUpdate()
	}
}

// SetSnapOptions forwards snap configuration to the engine's snap solver.
// Snapping itself is resolved engine-side during sessions.
func (c *Core) SetSnapOptions(o SnapOptions) {
	if c.engine == nil {
		return
	}
	c.engine.SetSnapOptions(o)
}

// Tick runs per-frame handler work (hover throttle trailing edge).
func (c *Core) Tick() {
	if t, ok := c.active.(Ticker); ok {
		t.Tick()
	}
}

// --- Change notification ---

// requestUpdate arms the single pending notification token. Setting state
// while a token is outstanding is a no-op until FlushUpdate clears it, which
// coalesces every change within one frame into one notification.
func (c *Core) requestUpdate() {
	c.pending = true
}

// FlushUpdate fires the coalesced notification if one is pending. The
// adapter calls this once per frame.
func (c *Core) FlushUpdate() {
	if !c.pending {
		return
	}
	c.pending = false
	if c.cfg.OnUpdate != nil {
		c.cfg.OnUpdate()
	}
}

// --- Read accessors (never mutate state) ---

// Overlay rebuilds and returns the overlay for the current frame. The
// returned value is owned by the core and valid until the next call.
func (c *Core) Overlay() *Overlay {
	c.overlay.reset()
	if p, ok := c.active.(OverlayProvider); ok {
		p.AppendOverlay(&c.overlay)
	}
	return &c.overlay
}

// Cursor returns the native cursor requested by the active handler.
func (c *Core) Cursor() Cursor {
	if p, ok := c.active.(CursorProvider); ok {
		return p.Cursor()
	}
	return CursorDefault
}

// ActiveHandlerName returns the active handler's name.
func (c *Core) ActiveHandlerName() string {
	return c.active.Name()
}
