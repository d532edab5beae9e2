package draftbench

// HoverPickFunc hit-tests at a world point for hover feedback. The core
// builds it from the engine and the current view so handlers never need to
// carry pick plumbing of their own.
type HoverPickFunc func(x, y float64) PickResult

// InputContext is the per-event context the core hands to the active
// handler. It is ephemeral: the core owns a single instance per Core and
// rewrites it in place for every event, so handlers must never retain a
// reference past the hook call.
type InputContext struct {
	// Screen is the canvas-local pointer position in pixels.
	Screen Vec2
	// World is Screen mapped through the view transform.
	World Vec2
	// Snapped is the world point after snap resolution. Snapping during
	// sessions is resolved engine-side, so this currently equals World; the
	// field keeps the contract explicit.
	Snapped Vec2

	Engine    Engine
	HoverPick HoverPickFunc
	View      ViewTransform
	CanvasW   float64
	CanvasH   float64

	Button    MouseButton
	Modifiers KeyModifiers
}

// KeyContext is the per-event context for keyboard hooks.
type KeyContext struct {
	Key       Key
	Modifiers KeyModifiers
	Engine    Engine
	View      ViewTransform
}
