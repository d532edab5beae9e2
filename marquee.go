package draftbench

// marqueeModeFor derives window-versus-crossing semantics from the sweep
// direction: a left-to-right sweep (release x at or right of press x, in
// screen space) selects fully-contained entities only; right-to-left selects
// anything the box touches.
func marqueeModeFor(pressScreenX, releaseScreenX float64) MarqueeMode {
	if releaseScreenX >= pressScreenX {
		return MarqueeWindow
	}
	return MarqueeCrossing
}

// marqueeCombine maps the modifier mask to the selection combination mode
// for a marquee commit: Shift adds, Ctrl/Cmd toggles, no modifier replaces.
func marqueeCombine(mods KeyModifiers) SelectMode {
	switch {
	case mods.Has(ModShift):
		return SelectAdd
	case mods.HasAny(ModCtrl | ModMeta):
		return SelectToggle
	}
	return SelectReplace
}

// commitMarquee runs the marquee query and applies the result to the
// selection. start and current are world-space corners; the sweep direction
// is decided in screen space by the caller.
func commitMarquee(e Engine, start, current Vec2, mode MarqueeMode, combine SelectMode) {
	ids := e.QueryMarquee(RectFromCorners(start, current), mode)
	e.SetSelection(ids, combine)
}
