package draftbench

// TextAlign controls horizontal text alignment.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextDefaults is the nested text block of the tool defaults. Nil colors are
// the ByLayer sentinel: no style override is sent and the entity inherits
// the layer style.
type TextDefaults struct {
	FontSize          float64
	FontFamily        string
	Align             TextAlign
	Bold              bool
	Italic            bool
	Underline         bool
	Strike            bool
	Color             *Color
	BackgroundColor   *Color
	BackgroundEnabled bool
}

// ToolDefaults is the read-only snapshot of tool-default settings handlers
// consume. Colors are hex strings ("#rrggbb" or "#rgb"); nil means ByLayer.
type ToolDefaults struct {
	StrokeColor   *string
	FillColor     *string
	StrokeWidth   float64
	StrokeEnabled bool
	FillEnabled   bool
	PolygonSides  int
	Text          TextDefaults
}

// SettingsStore is the injected capability handlers read tool defaults
// through. The store is externally owned; the only write the interaction
// layer ever performs is persisting the polygon side count on modal confirm.
type SettingsStore interface {
	ToolDefaults() ToolDefaults
	SetPolygonSides(n int)
}

// MemorySettings is an in-process SettingsStore, used by tests and the
// example. Hosts with a real settings panel provide their own store.
type MemorySettings struct {
	defaults ToolDefaults
}

// NewMemorySettings returns a store seeded with workable defaults.
func NewMemorySettings() *MemorySettings {
	stroke := "#1a1a1a"
	fill := "#d9e8f5"
	return &MemorySettings{defaults: ToolDefaults{
		StrokeColor:   &stroke,
		FillColor:     &fill,
		StrokeWidth:   2,
		StrokeEnabled: true,
		FillEnabled:   true,
		PolygonSides:  5,
		Text: TextDefaults{
			FontSize:   16,
			FontFamily: "sans-serif",
		},
	}}
}

// ToolDefaults returns the current defaults snapshot.
func (s *MemorySettings) ToolDefaults() ToolDefaults { return s.defaults }

// SetPolygonSides persists the polygon side count.
func (s *MemorySettings) SetPolygonSides(n int) { s.defaults.PolygonSides = n }

// SetDefaults replaces the whole defaults snapshot.
func (s *MemorySettings) SetDefaults(d ToolDefaults) { s.defaults = d }
