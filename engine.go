package draftbench

// This file is the typed bridge to the external engine binary. The engine's
// internal algorithms (spatial index, transform math, snap solver, text
// layout) are out of scope here; the interaction layer only depends on the
// session protocol below. All calls are synchronous and must be side-effect
// free on failure.

// PickSubTarget identifies which part of an entity a pick hit.
type PickSubTarget uint8

const (
	SubTargetNone PickSubTarget = iota
	SubTargetBody
	SubTargetEdge
	SubTargetVertex
	SubTargetResizeHandle
	SubTargetRotateHandle
	SubTargetTextBody
	SubTargetTextCaret
)

// EntityKind identifies the shape family of an entity.
type EntityKind uint16

const (
	KindUnknown EntityKind = iota
	KindRect
	KindCircle
	KindLine
	KindPolyline
	KindPolygon
	KindArrow
	KindText
)

// PickMask filters pick queries by entity kind. Bit n corresponds to
// EntityKind value n.
type PickMask uint32

// PickMaskAll matches every entity kind.
const PickMaskAll = ^PickMask(0)

// MaskFor returns the pick mask bit for a single entity kind.
func MaskFor(kind EntityKind) PickMask {
	return 1 << uint(kind)
}

// PickResult is the outcome of a point hit test. A zero ID means nothing was
// hit. For SubTargetResizeHandle, SubIndex 0-3 are the corner handles
// (BL, BR, TR, TL) and 4-7 the side handles (S, E, N, W offset by 4).
// For vertices and edges SubIndex is the vertex/edge index.
type PickResult struct {
	ID        uint32
	Kind      EntityKind
	SubTarget PickSubTarget
	SubIndex  int32
	Distance  float64
	HitX      float64
	HitY      float64
}

// Hit reports whether the pick found anything.
func (p PickResult) Hit() bool { return p.ID != 0 }

// TransformMode selects what an engine transform session does with the
// pointer deltas it receives.
type TransformMode uint8

const (
	TransformMove TransformMode = iota
	TransformVertexDrag
	TransformEdgeDrag
	TransformResize
	TransformRotate
	TransformSideResize
)

// MarqueeMode selects box-select semantics.
type MarqueeMode uint8

const (
	// MarqueeWindow selects entities fully contained in the box.
	MarqueeWindow MarqueeMode = iota
	// MarqueeCrossing selects entities that overlap the box at all.
	MarqueeCrossing
)

// SelectMode says how a set of ids combines with the current selection.
type SelectMode uint8

const (
	SelectReplace SelectMode = iota
	SelectAdd
	SelectRemove
	SelectToggle
)

// DraftKind identifies the shape family of a draft session.
type DraftKind uint8

const (
	DraftNone DraftKind = iota
	DraftLine
	DraftRect
	DraftCircle
	DraftArrow
	DraftText
	DraftPolygon
	DraftPolyline
)

// DraftStyle is the fixed-shape style payload sent with every BeginDraft.
// Color channels are 0-1 floats. The ByLayer flags mark a channel as
// "inherit from layer"; when set, the corresponding RGB values are ignored.
type DraftStyle struct {
	FillR, FillG, FillB       float64
	StrokeR, StrokeG, StrokeB float64
	FillEnabled               bool
	StrokeEnabled             bool
	StrokeWidthPx             float64
	FillByLayer               bool
	StrokeByLayer             bool
}

// BeginDraftPayload parameterizes a new draft session. Sides is only
// meaningful for DraftPolygon, HeadSizePx only for DraftArrow.
type BeginDraftPayload struct {
	Kind       DraftKind
	X, Y       float64
	Style      DraftStyle
	Sides      int
	HeadSizePx float64
}

// TransformState is the engine's readout of the live transform session, used
// for UI feedback such as the rotation-angle readout.
type TransformState struct {
	Active           bool
	Mode             TransformMode
	RotationDeltaDeg float64
	PivotX, PivotY   float64
}

// SnapOptions is passed through to the engine's snap solver. The interaction
// layer never resolves snapping itself.
type SnapOptions struct {
	Enabled     bool
	GridEnabled bool
	GridSize    float64
}

// EntityInfo is the per-entity readout the interaction layer needs: transform
// and bounds for cursor math, box-mode for text editing.
type EntityInfo struct {
	ID          uint32
	Kind        EntityKind
	X, Y        float64
	RotationDeg float64
	Width       float64
	Height      float64
	TextBoxMode bool
}

// TextStyleOverride carries the optional per-entity text style overrides
// applied right after a text entity is created. Nil fields mean "no override,
// inherit from layer".
type TextStyleOverride struct {
	TextColor         *Color
	BackgroundColor   *Color
	BackgroundEnabled *bool
}

// Engine is the contract the interaction layer expects from the external
// engine binary. Implementations must not retain slices passed to them.
type Engine interface {
	// PickEx hit-tests the scene at a world point. Tolerance is in screen
	// pixels; the engine converts it to world units via viewScale.
	PickEx(x, y, tolerancePx, viewScale float64, mask PickMask) PickResult

	// PickAll returns every candidate overlapping the point, best first,
	// using the engine's candidate order (handles over vertices over edges
	// over bodies, then z, then distance). Used for Ctrl-click cycling.
	PickAll(x, y, tolerancePx, viewScale float64, mask PickMask) []PickResult

	// Draft session (new-shape creation).
	BeginDraft(p BeginDraftPayload)
	UpdateDraft(x, y float64, modifiers KeyModifiers)
	AppendDraftPoint(x, y float64, modifiers KeyModifiers)
	CommitDraft() uint32
	CancelDraft()
	DraftActive() bool

	// Transform session over a set of entity ids. specificID and vertexIndex
	// narrow VertexDrag/EdgeDrag to one entity feature; pass 0 and -1
	// otherwise. Screen coordinates plus the view let the engine resolve
	// snapping and thresholds in pixel space.
	BeginTransform(ids []uint32, mode TransformMode, specificID uint32, vertexIndex int32,
		screenX, screenY float64, view ViewTransform, canvasW, canvasH float64, modifiers KeyModifiers)
	UpdateTransform(screenX, screenY float64, view ViewTransform, canvasW, canvasH float64, modifiers KeyModifiers)
	CommitTransform()
	CancelTransform()
	TransformState() TransformState

	// Marquee query in world space.
	QueryMarquee(r Rect, mode MarqueeMode) []uint32

	// Selection set.
	SelectedIDs() []uint32
	SetSelection(ids []uint32, mode SelectMode)
	ClearSelection()

	// Entity readout and batch mutation.
	EntityInfo(id uint32) (EntityInfo, bool)
	DeleteEntities(ids []uint32)
	ApplyTextStyle(id uint32, o TextStyleOverride)

	// Snap solver pass-through.
	SetSnapOptions(o SnapOptions)
}

// Pick tolerances and handle metrics, in screen pixels. These mirror the
// engine's own constants so cursor feedback agrees with what a press would
// actually hit.
const (
	PickTolerancePx      = 10.0
	ResizeHandleSizePx   = 5.0
	RotateHandleOffsetPx = 15.0
	RotateHandleRadiusPx = 10.0
)

// Corner handle indices, clockwise from bottom-left. Engine authority.
const (
	CornerBottomLeft = iota
	CornerBottomRight
	CornerTopRight
	CornerTopLeft
)

// Side handle indices. In PickResult.SubIndex these appear offset by
// sideHandleBase.
const (
	SideSouth = iota
	SideEast
	SideNorth
	SideWest
)

// sideHandleBase offsets side handle indices within SubTargetResizeHandle
// results so corners and sides share one sub-target.
const sideHandleBase = 4

// cursorBaseAngleDeg returns the base direction (degrees, 0 = east) for the
// resize/rotate cursor at a given handle SubIndex, before the entity's own
// rotation is added.
func cursorBaseAngleDeg(subIndex int32) float64 {
	switch subIndex {
	case CornerBottomLeft:
		return 225
	case CornerBottomRight:
		return 315
	case CornerTopRight:
		return 45
	case CornerTopLeft:
		return 135
	case sideHandleBase + SideSouth:
		return 270
	case sideHandleBase + SideEast:
		return 0
	case sideHandleBase + SideNorth:
		return 90
	case sideHandleBase + SideWest:
		return 180
	}
	return 0
}
