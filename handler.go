package draftbench

// Handler is the uniform contract every interaction handler implements.
// Everything beyond the name is optional: the core probes for the capability
// interfaces below and calls each hook only if the active handler provides
// it. This keeps the optional-callback ergonomics of the handler set without
// inheritance.
type Handler interface {
	// Name identifies the handler for UI display ("select", "pan", ...).
	Name() string
}

// PointerDownHandler receives pointer-down events. Returning a non-nil
// handler requests a transition to it; returning nil means "stay".
type PointerDownHandler interface {
	OnPointerDown(ctx *InputContext) Handler
}

// PointerMoveHandler receives pointer-move events (hover and drag alike).
type PointerMoveHandler interface {
	OnPointerMove(ctx *InputContext)
}

// PointerUpHandler receives pointer-up events. Returning a non-nil handler
// requests a transition, as with OnPointerDown.
type PointerUpHandler interface {
	OnPointerUp(ctx *InputContext) Handler
}

// DoubleClickHandler receives double-click events.
type DoubleClickHandler interface {
	OnDoubleClick(ctx *InputContext)
}

// CancelHandler receives the universal cancel signal (Escape at the core
// level, or a host-initiated cancel).
type CancelHandler interface {
	OnCancel()
}

// KeyDownHandler receives key presses that survive the core's text-input
// suppression.
type KeyDownHandler interface {
	OnKeyDown(ctx *KeyContext)
}

// KeyUpHandler receives key releases.
type KeyUpHandler interface {
	OnKeyUp(ctx *KeyContext)
}

// BlurHandler is notified when the window loses focus, so modifier-dependent
// state can be abandoned.
type BlurHandler interface {
	OnBlur()
}

// EnterHandler runs after a handler becomes active, after SetOnUpdate.
type EnterHandler interface {
	OnEnter()
}

// LeaveHandler runs before a handler is replaced. Cleanup that must not lose
// user work (committing an in-progress polyline or text edit) happens here;
// the handler's state is discarded entirely afterwards.
type LeaveHandler interface {
	OnLeave()
}

// CursorProvider reports the native cursor the handler wants.
type CursorProvider interface {
	Cursor() Cursor
}

// OverlayProvider contributes to the overlay rebuilt on each read.
type OverlayProvider interface {
	AppendOverlay(o *Overlay)
}

// UpdateSink receives the core's change-notification callback during a
// transition, before OnEnter. Handlers call it whenever UI-visible state
// changed outside a pointer hook (throttled hover results, text callbacks).
type UpdateSink interface {
	SetOnUpdate(fn func())
}

// Ticker is polled once per frame by the adapter, letting handlers run
// trailing-edge work (hover throttle flush) without their own timers.
type Ticker interface {
	Tick()
}
