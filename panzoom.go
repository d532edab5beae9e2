package draftbench

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom bounds and wheel step. One wheel notch multiplies the scale by
// wheelZoomStep, anchored at the cursor so the point under the pointer stays
// put.
const (
	minZoomScale  = 0.05
	maxZoomScale  = 40.0
	wheelZoomStep = 1.1
)

// PanZoom implements the pan/zoom mechanics shared across all tools: drag
// panning, wheel zoom anchored at the cursor, and animated zoom-to. It is
// invoked directly by the input adapter (middle-button or Alt-drag works
// regardless of the active tool) and publishes the view through onChange.
type PanZoom struct {
	view     ViewTransform
	onChange func(ViewTransform)

	panning   bool
	lastPanAt Vec2 // screen point of the previous pan update

	// Animated zoom state. The tween drives the scale; the anchor keeps a
	// fixed screen point stationary while the animation runs.
	zoomTween  *gween.Tween
	zoomAnchor Vec2
}

// NewPanZoom creates a pan/zoom controller. onChange may be nil; callers can
// also poll View.
func NewPanZoom(initial ViewTransform, onChange func(ViewTransform)) *PanZoom {
	if initial.Scale <= 0 {
		initial.Scale = 1
	}
	return &PanZoom{view: initial, onChange: onChange}
}

// View returns the current view transform.
func (p *PanZoom) View() ViewTransform { return p.view }

// SetView replaces the view transform outright (e.g. restoring a saved
// viewport) and cancels any running zoom animation.
func (p *PanZoom) SetView(v ViewTransform) {
	if v.Scale <= 0 {
		v.Scale = 1
	}
	p.zoomTween = nil
	p.view = v
	p.publish()
}

// Panning reports whether a pan drag is in progress.
func (p *PanZoom) Panning() bool { return p.panning }

// BeginPan starts a pan drag at a screen point.
func (p *PanZoom) BeginPan(screen Vec2) {
	p.panning = true
	p.lastPanAt = screen
}

// UpdatePan continues a pan drag; a no-op unless BeginPan ran.
func (p *PanZoom) UpdatePan(screen Vec2) {
	if !p.panning {
		return
	}
	p.view.X += screen.X - p.lastPanAt.X
	p.view.Y += screen.Y - p.lastPanAt.Y
	p.lastPanAt = screen
	p.publish()
}

// EndPan finishes a pan drag.
func (p *PanZoom) EndPan() {
	p.panning = false
}

// WheelZoom applies one or more wheel notches of zoom anchored at the given
// screen point. dy follows wheel convention: positive zooms in.
func (p *PanZoom) WheelZoom(anchor Vec2, dy float64) {
	if dy == 0 {
		return
	}
	p.zoomTween = nil
	p.applyZoom(math.Pow(wheelZoomStep, dy), anchor)
}

// ZoomTo animates the scale toward target over the given number of seconds,
// anchored at a screen point. Advance the animation with Tick.
func (p *PanZoom) ZoomTo(target float64, anchor Vec2, seconds float32) {
	target = clampZoom(target)
	if seconds <= 0 {
		p.zoomTween = nil
		p.applyZoom(target/p.view.Scale, anchor)
		return
	}
	p.zoomAnchor = anchor
	p.zoomTween = gween.New(float32(p.view.Scale), float32(target), seconds, ease.OutQuad)
}

// Tick advances the zoom animation by dt seconds.
func (p *PanZoom) Tick(dt float32) {
	if p.zoomTween == nil {
		return
	}
	scale, done := p.zoomTween.Update(dt)
	p.applyZoom(float64(scale)/p.view.Scale, p.zoomAnchor)
	if done {
		p.zoomTween = nil
	}
}

// applyZoom multiplies the scale by factor while keeping the anchor's world
// point under the same screen point.
func (p *PanZoom) applyZoom(factor float64, anchor Vec2) {
	oldScale := p.view.Scale
	newScale := clampZoom(oldScale * factor)
	if newScale == oldScale {
		return
	}
	wx, wy := p.view.ScreenToWorld(anchor.X, anchor.Y)
	p.view.Scale = newScale
	p.view.X = anchor.X - wx*newScale
	p.view.Y = anchor.Y - wy*newScale
	p.publish()
}

func (p *PanZoom) publish() {
	if p.onChange != nil {
		p.onChange(p.view)
	}
}

func clampZoom(s float64) float64 {
	if s < minZoomScale {
		return minZoomScale
	}
	if s > maxZoomScale {
		return maxZoomScale
	}
	return s
}
