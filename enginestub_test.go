package draftbench

// fakeEngine is the recording Engine double shared by the handler tests. Pick
// results are scripted per test; every session call is appended to the call
// log so tests can assert exact protocol sequences.
type fakeEngine struct {
	calls []string

	pickResult  PickResult
	pickAll     []PickResult
	marqueeIDs  []uint32
	selected    []uint32
	entityInfos map[uint32]EntityInfo

	draftActive    bool
	commitDraftID  uint32
	transformState TransformState

	drafts          []BeginDraftPayload
	draftUpdates    []Vec2
	appendedPoints  []Vec2
	selections      []selectionCall
	transforms      []transformCall
	deleted         [][]uint32
	styleCalls      []styleCall
	snapOpts        []SnapOptions
	lastMarquee     Rect
	lastMarqueeMode MarqueeMode
}

type selectionCall struct {
	ids  []uint32
	mode SelectMode
}

type transformCall struct {
	ids         []uint32
	mode        TransformMode
	specificID  uint32
	vertexIndex int32
}

type styleCall struct {
	id uint32
	o  TextStyleOverride
}

var _ Engine = (*fakeEngine)(nil)

func newFakeEngine() *fakeEngine {
	return &fakeEngine{entityInfos: map[uint32]EntityInfo{}, commitDraftID: 1}
}

func (f *fakeEngine) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeEngine) PickEx(x, y, tol, scale float64, mask PickMask) PickResult {
	f.record("PickEx")
	if mask&MaskFor(f.pickResult.Kind) == 0 {
		return PickResult{}
	}
	return f.pickResult
}

func (f *fakeEngine) PickAll(x, y, tol, scale float64, mask PickMask) []PickResult {
	f.record("PickAll")
	return f.pickAll
}

func (f *fakeEngine) BeginDraft(p BeginDraftPayload) {
	f.record("BeginDraft")
	f.draftActive = true
	f.drafts = append(f.drafts, p)
}

func (f *fakeEngine) UpdateDraft(x, y float64, mods KeyModifiers) {
	f.record("UpdateDraft")
	f.draftUpdates = append(f.draftUpdates, Vec2{X: x, Y: y})
}

func (f *fakeEngine) AppendDraftPoint(x, y float64, mods KeyModifiers) {
	f.record("AppendDraftPoint")
	f.appendedPoints = append(f.appendedPoints, Vec2{X: x, Y: y})
}

func (f *fakeEngine) CommitDraft() uint32 {
	f.record("CommitDraft")
	f.draftActive = false
	return f.commitDraftID
}

func (f *fakeEngine) CancelDraft() {
	f.record("CancelDraft")
	f.draftActive = false
}

func (f *fakeEngine) DraftActive() bool { return f.draftActive }

func (f *fakeEngine) BeginTransform(ids []uint32, mode TransformMode, specificID uint32, vertexIndex int32,
	sx, sy float64, view ViewTransform, cw, ch float64, mods KeyModifiers) {
	f.record("BeginTransform")
	f.transforms = append(f.transforms, transformCall{
		ids:         append([]uint32(nil), ids...),
		mode:        mode,
		specificID:  specificID,
		vertexIndex: vertexIndex,
	})
	f.transformState.Active = true
	f.transformState.Mode = mode
}

func (f *fakeEngine) UpdateTransform(sx, sy float64, view ViewTransform, cw, ch float64, mods KeyModifiers) {
	f.record("UpdateTransform")
}

func (f *fakeEngine) CommitTransform() {
	f.record("CommitTransform")
	f.transformState.Active = false
}

func (f *fakeEngine) CancelTransform() {
	f.record("CancelTransform")
	f.transformState.Active = false
}

func (f *fakeEngine) TransformState() TransformState { return f.transformState }

func (f *fakeEngine) QueryMarquee(r Rect, mode MarqueeMode) []uint32 {
	f.record("QueryMarquee")
	f.lastMarquee = r
	f.lastMarqueeMode = mode
	return f.marqueeIDs
}

func (f *fakeEngine) SelectedIDs() []uint32 {
	return append([]uint32(nil), f.selected...)
}

func (f *fakeEngine) SetSelection(ids []uint32, mode SelectMode) {
	f.record("SetSelection")
	f.selections = append(f.selections, selectionCall{ids: append([]uint32(nil), ids...), mode: mode})
	switch mode {
	case SelectReplace:
		f.selected = append([]uint32(nil), ids...)
	case SelectAdd:
		for _, id := range ids {
			if !containsID(f.selected, id) {
				f.selected = append(f.selected, id)
			}
		}
	case SelectRemove:
		f.selected = removeIDs(f.selected, ids)
	case SelectToggle:
		for _, id := range ids {
			if containsID(f.selected, id) {
				f.selected = removeIDs(f.selected, []uint32{id})
			} else {
				f.selected = append(f.selected, id)
			}
		}
	}
}

func (f *fakeEngine) ClearSelection() {
	f.record("ClearSelection")
	f.selected = nil
}

func (f *fakeEngine) EntityInfo(id uint32) (EntityInfo, bool) {
	info, ok := f.entityInfos[id]
	return info, ok
}

func (f *fakeEngine) DeleteEntities(ids []uint32) {
	f.record("DeleteEntities")
	f.deleted = append(f.deleted, append([]uint32(nil), ids...))
}

func (f *fakeEngine) ApplyTextStyle(id uint32, o TextStyleOverride) {
	f.record("ApplyTextStyle")
	f.styleCalls = append(f.styleCalls, styleCall{id: id, o: o})
}

func (f *fakeEngine) SetSnapOptions(o SnapOptions) {
	f.record("SetSnapOptions")
	f.snapOpts = append(f.snapOpts, o)
}

func removeIDs(ids, remove []uint32) []uint32 {
	var out []uint32
	for _, id := range ids {
		if !containsID(remove, id) {
			out = append(out, id)
		}
	}
	return out
}

func equalIDs(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
