// Package draftbench is the interaction front-end of a 2D CAD canvas for
// [Ebitengine].
//
// The geometric core (picking, transform math, snapping, rendering buffers)
// lives in a separately built engine that the host application exposes through
// the [Engine] interface. Draftbench owns everything between raw pointer and
// keyboard input and that engine: it decides which editing operation is in
// progress (selecting, marquee-dragging, resizing, rotating, drafting a new
// shape, editing text) and drives the engine through its small imperative
// session protocol while keeping cursors and overlays consistent with engine
// state across frames.
//
// # Quick start
//
// Construct a [Core] with your engine and settings store, wrap it in an
// [Adapter], and call the adapter from your game loop:
//
//	core := draftbench.NewCore(draftbench.CoreConfig{
//		Settings: draftbench.NewMemorySettings(),
//	})
//	core.AttachEngine(engine)
//	core.SetActiveTool(draftbench.ToolSelect)
//
//	pz := draftbench.NewPanZoom(draftbench.ViewTransform{Scale: 1}, nil)
//	adapter := draftbench.NewAdapter(draftbench.AdapterConfig{Core: core, PanZoom: pz})
//
//	type Game struct{ adapter *draftbench.Adapter }
//
//	func (g *Game) Update() error        { return g.adapter.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.adapter.Draw(s) }
//
// # Handlers
//
// Exactly one interaction handler is active at a time: Idle, Pan, Drafting,
// Selection, or Text. [Core.SetActiveTool] constructs a fresh handler for the
// chosen tool so no state leaks between tools. Handlers implement the optional
// capability interfaces in handler.go; the core calls each hook only if the
// active handler provides it, and a handler returned from a pointer hook
// becomes the new active handler.
//
// # Engine sessions
//
// All geometry mutation goes through engine sessions: a draft session for new
// shapes (begin, update, append, commit, cancel) and a transform session for
// move/resize/rotate/vertex-drag (begin, update, commit, cancel). The local
// state handlers keep alongside a session exists only to answer UI questions
// such as click-versus-drag; the engine is the sole source of truth for
// geometry.
//
// [Ebitengine]: https://ebitengine.org
package draftbench
