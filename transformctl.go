package draftbench

// transformController wraps the engine transform session for the selection
// handler: it remembers the mode and the screen point where the session
// started, and guards against double begin/commit.
type transformController struct {
	active      bool
	mode        TransformMode
	startScreen Vec2
}

// begin starts an engine transform session over ids. specificID and
// vertexIndex narrow vertex/edge drags; pass 0 and -1 otherwise.
func (t *transformController) begin(ctx *InputContext, ids []uint32, mode TransformMode, specificID uint32, vertexIndex int32) {
	if t.active || len(ids) == 0 {
		return
	}
	t.active = true
	t.mode = mode
	t.startScreen = ctx.Screen
	ctx.Engine.BeginTransform(ids, mode, specificID, vertexIndex,
		ctx.Screen.X, ctx.Screen.Y, ctx.View, ctx.CanvasW, ctx.CanvasH, ctx.Modifiers)
}

// update forwards the current screen coordinates plus the modifier mask to
// the live session. Called on every pointer move while transforming.
func (t *transformController) update(ctx *InputContext) {
	if !t.active {
		return
	}
	ctx.Engine.UpdateTransform(ctx.Screen.X, ctx.Screen.Y, ctx.View, ctx.CanvasW, ctx.CanvasH, ctx.Modifiers)
}

// commit ends the session, keeping the result.
func (t *transformController) commit(e Engine) {
	if !t.active {
		return
	}
	t.active = false
	e.CommitTransform()
}

// cancel ends the session, reverting the result.
func (t *transformController) cancel(e Engine) {
	if !t.active {
		return
	}
	t.active = false
	e.CancelTransform()
}
