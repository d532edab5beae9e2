package draftbench

import "time"

// hoverThrottle bounds hover picking to one engine query per interval with
// leading+trailing semantics: an idle throttle fires immediately (leading
// edge); picks arriving inside the interval are remembered and the latest
// one fires once the interval elapses (trailing edge, observed from the
// per-frame tick). Disabled, every pick goes straight through.
//
// The clock is injected so tests can drive the interval deterministically.
type hoverThrottle struct {
	enabled  bool
	interval time.Duration
	now      func() time.Time

	lastFire time.Time
	pending  bool
	pendingX float64
	pendingY float64
}

func newHoverThrottle(enabled bool, interval time.Duration, now func() time.Time) hoverThrottle {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	if now == nil {
		now = time.Now
	}
	return hoverThrottle{enabled: enabled, interval: interval, now: now}
}

// pick runs fn for a hover query, subject to throttling. Returns the result
// and true if the query ran now; false means it was deferred to the
// trailing edge.
func (h *hoverThrottle) pick(fn HoverPickFunc, x, y float64) (PickResult, bool) {
	if !h.enabled {
		return fn(x, y), true
	}
	t := h.now()
	if t.Sub(h.lastFire) >= h.interval {
		h.lastFire = t
		h.pending = false
		return fn(x, y), true
	}
	h.pending = true
	h.pendingX, h.pendingY = x, y
	return PickResult{}, false
}

// tick fires the trailing edge if a deferred query is due. Returns the
// result and true if a query ran.
func (h *hoverThrottle) tick(fn HoverPickFunc) (PickResult, bool) {
	if !h.enabled || !h.pending {
		return PickResult{}, false
	}
	t := h.now()
	if t.Sub(h.lastFire) < h.interval {
		return PickResult{}, false
	}
	h.lastFire = t
	h.pending = false
	return fn(h.pendingX, h.pendingY), true
}

// reset drops any deferred query.
func (h *hoverThrottle) reset() {
	h.pending = false
}
