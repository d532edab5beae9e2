package draftbench

import "testing"

// A gesture is a scripted input sequence replayed against a Core, standing in
// for the real adapter in headless tests.
type gestureStep func(c *Core)

func down(x, y float64, mods KeyModifiers) gestureStep {
	return func(c *Core) { c.HandlePointerDown(x, y, MouseButtonLeft, mods) }
}

func move(x, y float64, mods KeyModifiers) gestureStep {
	return func(c *Core) { c.HandlePointerMove(x, y, MouseButtonLeft, mods) }
}

func up(x, y float64, mods KeyModifiers) gestureStep {
	return func(c *Core) { c.HandlePointerUp(x, y, MouseButtonLeft, mods) }
}

func press(k Key, mods KeyModifiers) gestureStep {
	return func(c *Core) { c.HandleKeyDown(k, mods) }
}

func runGesture(c *Core, steps ...gestureStep) {
	for _, s := range steps {
		s(c)
		c.Tick()
		c.FlushUpdate()
	}
}

func TestGestureSelectThenMoveThenDelete(t *testing.T) {
	e := newFakeEngine()
	e.pickResult = bodyPick(7)
	c := newSelectCore(e)

	runGesture(c,
		// Click selects the entity.
		down(100, 100, 0),
		up(100, 100, 0),
		// Drag it elsewhere.
		down(100, 100, 0),
		move(150, 130, 0),
		up(150, 130, 0),
		// Delete it.
		press(KeyDelete, 0),
	)

	if len(e.selected) != 0 {
		t.Errorf("selection = %v, want cleared after delete", e.selected)
	}
	if len(e.transforms) != 1 || e.transforms[0].mode != TransformMove {
		t.Fatalf("transforms = %+v, want one Move", e.transforms)
	}
	if len(e.deleted) != 1 || !equalIDs(e.deleted[0], []uint32{7}) {
		t.Errorf("deleted = %v, want [[7]]", e.deleted)
	}
}

func TestGestureDraftRectThenSwitchToSelect(t *testing.T) {
	e := newFakeEngine()
	c := newDraftCore(e, ToolRect)

	runGesture(c,
		down(10, 10, 0),
		move(110, 90, 0),
		up(110, 90, 0),
	)
	c.SetActiveTool(ToolSelect)

	commits := 0
	for _, call := range e.calls {
		if call == "CommitDraft" {
			commits++
		}
	}
	if commits != 1 {
		t.Errorf("commits = %d, want exactly 1", commits)
	}
	if c.ActiveHandlerName() != "select" {
		t.Errorf("handler = %s, want select", c.ActiveHandlerName())
	}
}

func TestGestureEscapeMidMarqueeLeavesSelectionIntact(t *testing.T) {
	e := newFakeEngine()
	e.selected = []uint32{4}
	c := newSelectCore(e)

	runGesture(c,
		down(300, 300, 0),
		move(400, 380, 0),
		press(KeyEscape, 0),
		up(400, 380, 0),
	)

	for _, call := range e.calls {
		if call == "QueryMarquee" {
			t.Fatal("aborted marquee still ran its query")
		}
	}
	if !equalIDs(e.selected, []uint32{4}) {
		t.Errorf("selection = %v, want untouched [4]", e.selected)
	}
}
