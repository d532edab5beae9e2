package draftbench

import "testing"

func newSelectCore(e *fakeEngine) *Core {
	c := NewCore(CoreConfig{PolygonContour: true})
	c.AttachEngine(e)
	c.SetCanvasSize(1280, 800)
	c.SetActiveTool(ToolSelect)
	return c
}

func bodyPick(id uint32) PickResult {
	return PickResult{ID: id, Kind: KindRect, SubTarget: SubTargetBody}
}

func TestClickSelectsUnselectedEntity(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerUp(101, 100, MouseButtonLeft, 0)

	if len(e.selections) != 1 {
		t.Fatalf("selection calls = %d, want 1", len(e.selections))
	}
	got := e.selections[0]
	if got.mode != SelectReplace || !equalIDs(got.ids, []uint32{7}) {
		t.Errorf("selection = %+v, want Replace [7]", got)
	}
}

func TestClickOnSelectedEntityKeepsSelection(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	e.selected = []uint32{7, 9}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerUp(100, 100, MouseButtonLeft, 0)

	// A plain click on an already-selected entity must not collapse a
	// multi-selection to a singleton.
	if len(e.selections) != 0 {
		t.Errorf("selection calls = %+v, want none", e.selections)
	}
	if !equalIDs(e.selected, []uint32{7, 9}) {
		t.Errorf("selection = %v, want unchanged [7 9]", e.selected)
	}
}

func TestShiftClickTogglesIntoSelection(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(3)
	e.selected = []uint32{7}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, ModShift)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModShift)

	if !equalIDs(e.selected, []uint32{7, 3}) {
		t.Errorf("selection = %v, want [7 3]", e.selected)
	}

	// Shift-clicking the same entity again toggles it back out.
	c.HandlePointerDown(100, 100, MouseButtonLeft, ModShift)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModShift)
	if !equalIDs(e.selected, []uint32{7}) {
		t.Errorf("selection after second toggle = %v, want [7]", e.selected)
	}
}

func TestClickEmptySpaceClearsSelection(t *testing.T) {
	e := newFakeEngine()
	e.selected = []uint32{7}
	c := newSelectCore(e)

	c.HandlePointerDown(500, 500, MouseButtonLeft, 0)
	c.HandlePointerUp(501, 500, MouseButtonLeft, 0)

	if len(e.selected) != 0 {
		t.Errorf("selection = %v, want cleared", e.selected)
	}
}

func TestShiftClickEmptySpaceKeepsSelection(t *testing.T) {
	e := newFakeEngine()
	e.selected = []uint32{7}
	c := newSelectCore(e)

	c.HandlePointerDown(500, 500, MouseButtonLeft, ModShift)
	c.HandlePointerUp(500, 500, MouseButtonLeft, ModShift)

	if !equalIDs(e.selected, []uint32{7}) {
		t.Errorf("selection = %v, want unchanged [7]", e.selected)
	}
}

func TestMarqueeWindowSweep(t *testing.T) {
	e := newFakeEngine()
	e.marqueeIDs = []uint32{1, 2}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(300, 250, MouseButtonLeft, 0)
	c.HandlePointerUp(300, 250, MouseButtonLeft, 0)

	if e.lastMarqueeMode != MarqueeWindow {
		t.Errorf("marquee mode = %v, want window for a left-to-right sweep", e.lastMarqueeMode)
	}
	want := Rect{X: 100, Y: 100, Width: 200, Height: 150}
	if e.lastMarquee != want {
		t.Errorf("marquee rect = %+v, want %+v", e.lastMarquee, want)
	}
	if len(e.selections) != 1 || e.selections[0].mode != SelectReplace {
		t.Fatalf("selection calls = %+v, want one Replace", e.selections)
	}
	if !equalIDs(e.selected, []uint32{1, 2}) {
		t.Errorf("selection = %v, want [1 2]", e.selected)
	}
}

func TestMarqueeCrossingSweepWithCtrlToggles(t *testing.T) {
	e := newFakeEngine()
	e.marqueeIDs = []uint32{2}
	e.selected = []uint32{2, 5}
	c := newSelectCore(e)

	// Right-to-left sweep.
	c.HandlePointerDown(300, 100, MouseButtonLeft, ModCtrl)
	c.HandlePointerMove(100, 250, MouseButtonLeft, ModCtrl)
	c.HandlePointerUp(100, 250, MouseButtonLeft, ModCtrl)

	if e.lastMarqueeMode != MarqueeCrossing {
		t.Errorf("marquee mode = %v, want crossing for a right-to-left sweep", e.lastMarqueeMode)
	}
	if !equalIDs(e.selected, []uint32{5}) {
		t.Errorf("selection = %v, want [5] after toggling 2 out", e.selected)
	}
}

func TestMarqueeBelowThresholdIsAClick(t *testing.T) {
	e := newFakeEngine()
	e.selected = []uint32{9}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(102, 101, MouseButtonLeft, 0)
	c.HandlePointerUp(102, 101, MouseButtonLeft, 0)

	for _, call := range e.calls {
		if call == "QueryMarquee" {
			t.Fatal("marquee query ran for a sub-threshold drag")
		}
	}
	if len(e.selected) != 0 {
		t.Errorf("selection = %v, want cleared by the plain click", e.selected)
	}
}

func TestDragMovesSelection(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(120, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(140, 100, MouseButtonLeft, 0)
	c.HandlePointerUp(140, 100, MouseButtonLeft, 0)

	// The unselected entity becomes the selection first, then moves.
	if len(e.selections) != 1 || e.selections[0].mode != SelectReplace {
		t.Fatalf("selection calls = %+v, want one Replace before the move", e.selections)
	}
	if len(e.transforms) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(e.transforms))
	}
	tr := e.transforms[0]
	if tr.mode != TransformMove || !equalIDs(tr.ids, []uint32{7}) {
		t.Errorf("transform = %+v, want Move over [7]", tr)
	}
	if last := e.calls[len(e.calls)-1]; last != "CommitTransform" {
		t.Errorf("last engine call = %s, want CommitTransform", last)
	}
}

func TestDragSelectedEntityMovesWholeSelection(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	e.selected = []uint32{7, 9}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(130, 100, MouseButtonLeft, 0)
	c.HandlePointerUp(130, 100, MouseButtonLeft, 0)

	if len(e.selections) != 0 {
		t.Errorf("selection calls = %+v, want none when dragging a selected entity", e.selections)
	}
	if len(e.transforms) != 1 || !equalIDs(e.transforms[0].ids, []uint32{7, 9}) {
		t.Errorf("transforms = %+v, want one Move over [7 9]", e.transforms)
	}
}

func TestResizeHandleStartsResizeSession(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = PickResult{ID: 7, Kind: KindRect, SubTarget: SubTargetResizeHandle, SubIndex: CornerTopRight}
	e.selected = []uint32{7}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)

	if len(e.transforms) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(e.transforms))
	}
	tr := e.transforms[0]
	if tr.mode != TransformResize {
		t.Errorf("mode = %v, want Resize", tr.mode)
	}
	if tr.vertexIndex != CornerTopRight {
		t.Errorf("handle index = %d, want %d", tr.vertexIndex, CornerTopRight)
	}
}

func TestSideHandleStartsSideResizeSession(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = PickResult{ID: 7, Kind: KindRect, SubTarget: SubTargetResizeHandle, SubIndex: sideHandleBase + SideEast}
	e.selected = []uint32{7}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)

	if len(e.transforms) != 1 || e.transforms[0].mode != TransformSideResize {
		t.Errorf("transforms = %+v, want one SideResize", e.transforms)
	}
}

func TestRotateHandleStartsRotateSession(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = PickResult{ID: 7, Kind: KindRect, SubTarget: SubTargetRotateHandle}
	e.selected = []uint32{7, 9}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)

	if len(e.transforms) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(e.transforms))
	}
	tr := e.transforms[0]
	if tr.mode != TransformRotate || !equalIDs(tr.ids, []uint32{7, 9}) {
		t.Errorf("transform = %+v, want Rotate over the whole selection", tr)
	}
}

func TestVertexDragOnPolygonContour(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = PickResult{ID: 4, Kind: KindPolygon, SubTarget: SubTargetVertex, SubIndex: 2}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)

	if len(e.transforms) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(e.transforms))
	}
	tr := e.transforms[0]
	if tr.mode != TransformVertexDrag || tr.specificID != 4 || tr.vertexIndex != 2 {
		t.Errorf("transform = %+v, want VertexDrag of entity 4 vertex 2", tr)
	}
}

func TestEscapeCancelsLiveTransform(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(140, 100, MouseButtonLeft, 0)
	c.HandleKeyDown(KeyEscape, 0)

	if last := e.calls[len(e.calls)-1]; last != "CancelTransform" {
		t.Errorf("last engine call = %s, want CancelTransform", last)
	}

	// The selection survives; only the move was abandoned.
	if len(e.deleted) != 0 {
		t.Errorf("deletions = %v, want none", e.deleted)
	}
}

func TestEscapeWithoutTransformClearsSelection(t *testing.T) {
	e := newFakeEngine()
	e.selected = []uint32{7}
	c := newSelectCore(e)

	c.HandleKeyDown(KeyEscape, 0)

	if len(e.selected) != 0 {
		t.Errorf("selection = %v, want cleared", e.selected)
	}
}

func TestDeleteRemovesSelection(t *testing.T) {
	e := newFakeEngine()
	e.selected = []uint32{7, 9}
	c := newSelectCore(e)

	c.HandleKeyDown(KeyDelete, 0)

	if len(e.deleted) != 1 || !equalIDs(e.deleted[0], []uint32{7, 9}) {
		t.Fatalf("deletions = %v, want [[7 9]]", e.deleted)
	}
	if len(e.selected) != 0 {
		t.Errorf("selection = %v, want cleared after delete", e.selected)
	}
}

func TestCtrlClickCyclesStackedEntities(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(5)
	e.pickAll = []PickResult{bodyPick(5), bodyPick(3)}
	c := newSelectCore(e)

	// First Ctrl-click selects the frontmost of the stack.
	c.HandlePointerDown(100, 100, MouseButtonLeft, ModCtrl)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModCtrl)
	if !equalIDs(e.selected, []uint32{5}) {
		t.Fatalf("selection after click 1 = %v, want [5]", e.selected)
	}

	// The second swaps in the next candidate rather than accumulating.
	c.HandlePointerDown(100, 100, MouseButtonLeft, ModCtrl)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModCtrl)
	if !equalIDs(e.selected, []uint32{3}) {
		t.Errorf("selection after click 2 = %v, want [3]", e.selected)
	}
}

func TestCtrlClickSingleCandidateToggles(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(5)
	e.pickAll = []PickResult{bodyPick(5)}
	e.selected = []uint32{5, 9}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, ModCtrl)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModCtrl)

	if !equalIDs(e.selected, []uint32{9}) {
		t.Errorf("selection = %v, want [9] after toggling 5 out", e.selected)
	}
}

func TestCtrlReleaseEndsCycle(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(5)
	e.pickAll = []PickResult{bodyPick(5), bodyPick(3)}
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, ModCtrl)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModCtrl)
	c.HandleKeyUp(KeyCtrl, 0)

	// After releasing Ctrl the next Ctrl-click starts a fresh cycle at the
	// front of the stack.
	c.HandlePointerDown(100, 100, MouseButtonLeft, ModCtrl)
	c.HandlePointerUp(100, 100, MouseButtonLeft, ModCtrl)
	if !equalIDs(e.selected, []uint32{5}) {
		t.Errorf("selection = %v, want [5] from a restarted cycle", e.selected)
	}
}

func TestHoverArmsResizeCursor(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = PickResult{ID: 7, Kind: KindRect, SubTarget: SubTargetResizeHandle, SubIndex: CornerTopRight}
	e.entityInfos[7] = EntityInfo{ID: 7, Kind: KindRect, RotationDeg: 10}
	c := newSelectCore(e)

	c.HandlePointerMove(100, 100, MouseButtonLeft, 0)

	if c.Cursor() != CursorNone {
		t.Errorf("cursor = %q, want %q while a glyph shows", c.Cursor(), CursorNone)
	}
	o := c.Overlay()
	if o.CursorGlyph != GlyphResize {
		t.Fatalf("glyph = %v, want resize", o.CursorGlyph)
	}
	if o.CursorAngleDeg != 45+10 {
		t.Errorf("glyph angle = %g, want base 45 plus rotation 10", o.CursorAngleDeg)
	}
}

func TestHoverEmptySpaceShowsDefaultCursor(t *testing.T) {
	e := newFakeEngine()
	c := newSelectCore(e)

	c.HandlePointerMove(100, 100, MouseButtonLeft, 0)

	if c.Cursor() != CursorDefault {
		t.Errorf("cursor = %q, want default", c.Cursor())
	}
	if o := c.Overlay(); o.CursorGlyph != GlyphNone {
		t.Errorf("glyph = %v, want none", o.CursorGlyph)
	}
}

func TestMarqueeOverlayPublishesWorldRect(t *testing.T) {
	e := newFakeEngine()
	c := newSelectCore(e)
	c.SetView(ViewTransform{X: 0, Y: 0, Scale: 2})

	c.HandlePointerDown(200, 200, MouseButtonLeft, 0)
	c.HandlePointerMove(100, 100, MouseButtonLeft, 0)

	o := c.Overlay()
	if !o.MarqueeVisible {
		t.Fatal("marquee not visible during drag")
	}
	want := Rect{X: 50, Y: 50, Width: 50, Height: 50}
	if o.Marquee != want {
		t.Errorf("marquee = %+v, want world-space %+v", o.Marquee, want)
	}
	if !o.MarqueeCrossing {
		t.Error("right-to-left sweep not flagged as crossing")
	}
}

func TestBlurCancelsTransform(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	c := newSelectCore(e)

	c.HandlePointerDown(100, 100, MouseButtonLeft, 0)
	c.HandlePointerMove(140, 100, MouseButtonLeft, 0)
	c.HandleBlur()

	if last := e.calls[len(e.calls)-1]; last != "CancelTransform" {
		t.Errorf("last engine call = %s, want CancelTransform on blur", last)
	}
}
