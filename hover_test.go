package draftbench

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for throttle tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func countingPick(n *int) HoverPickFunc {
	return func(x, y float64) PickResult {
		*n++
		return PickResult{ID: 1, HitX: x, HitY: y}
	}
}

func TestHoverThrottleDisabledPassesThrough(t *testing.T) {
	var picks int
	h := newHoverThrottle(false, 16*time.Millisecond, nil)

	for i := 0; i < 5; i++ {
		if _, ok := h.pick(countingPick(&picks), float64(i), 0); !ok {
			t.Fatalf("pick %d deferred with throttle disabled", i)
		}
	}
	if picks != 5 {
		t.Errorf("picks = %d, want 5", picks)
	}
}

func TestHoverThrottleLeadingEdge(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	var picks int
	h := newHoverThrottle(true, 16*time.Millisecond, clock.now)

	// First pick after an idle period fires immediately.
	res, ok := h.pick(countingPick(&picks), 10, 20)
	if !ok || picks != 1 {
		t.Fatalf("leading pick deferred: ok=%v picks=%d", ok, picks)
	}
	if res.HitX != 10 || res.HitY != 20 {
		t.Errorf("leading pick at (%g, %g), want (10, 20)", res.HitX, res.HitY)
	}

	// Inside the interval, picks are deferred.
	clock.advance(5 * time.Millisecond)
	if _, ok := h.pick(countingPick(&picks), 30, 40); ok {
		t.Fatal("pick inside interval was not deferred")
	}
	if picks != 1 {
		t.Errorf("picks = %d, want 1", picks)
	}
}

func TestHoverThrottleTrailingEdge(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	var picks int
	h := newHoverThrottle(true, 16*time.Millisecond, clock.now)

	h.pick(countingPick(&picks), 0, 0)
	clock.advance(5 * time.Millisecond)
	h.pick(countingPick(&picks), 1, 1)
	clock.advance(5 * time.Millisecond)
	h.pick(countingPick(&picks), 2, 2) // latest coordinates win

	// Still inside the interval: tick does nothing.
	if _, ok := h.tick(countingPick(&picks)); ok {
		t.Fatal("trailing edge fired early")
	}

	clock.advance(10 * time.Millisecond)
	res, ok := h.tick(countingPick(&picks))
	if !ok {
		t.Fatal("trailing edge did not fire after the interval")
	}
	if res.HitX != 2 || res.HitY != 2 {
		t.Errorf("trailing pick at (%g, %g), want the latest (2, 2)", res.HitX, res.HitY)
	}
	if picks != 2 {
		t.Errorf("picks = %d, want 2 (one leading, one trailing)", picks)
	}

	// The trailing fire consumed the pending query.
	if _, ok := h.tick(countingPick(&picks)); ok {
		t.Error("tick fired again with nothing pending")
	}
}

func TestHoverThrottleReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	var picks int
	h := newHoverThrottle(true, 16*time.Millisecond, clock.now)

	h.pick(countingPick(&picks), 0, 0)
	clock.advance(5 * time.Millisecond)
	h.pick(countingPick(&picks), 1, 1)
	h.reset()

	clock.advance(time.Second)
	if _, ok := h.tick(countingPick(&picks)); ok {
		t.Error("tick fired after reset")
	}
}
