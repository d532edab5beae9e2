package draftbench

// PanHandler is the handler active while the pan tool is selected. It only
// reports the grab cursor: the actual drag mechanics live in PanZoom, which
// the input adapter drives directly so panning stays reachable from every
// tool via middle-button or Alt-drag.
type PanHandler struct {
	dragging bool
}

func newPanHandler() *PanHandler { return &PanHandler{} }

// Name implements Handler.
func (h *PanHandler) Name() string { return "pan" }

// OnPointerDown marks the grab as active for cursor feedback.
func (h *PanHandler) OnPointerDown(ctx *InputContext) Handler {
	h.dragging = true
	return nil
}

// OnPointerUp releases the grab.
func (h *PanHandler) OnPointerUp(ctx *InputContext) Handler {
	h.dragging = false
	return nil
}

// OnBlur abandons the grab when the window loses focus.
func (h *PanHandler) OnBlur() { h.dragging = false }

// Cursor implements CursorProvider.
func (h *PanHandler) Cursor() Cursor {
	if h.dragging {
		return CursorGrabbing
	}
	return CursorGrab
}
