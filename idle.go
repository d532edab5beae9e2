package draftbench

// IdleHandler is the default no-op state before a tool is chosen or while
// the engine is still loading.
type IdleHandler struct{}

func newIdleHandler() *IdleHandler { return &IdleHandler{} }

// Name implements Handler.
func (h *IdleHandler) Name() string { return "idle" }
