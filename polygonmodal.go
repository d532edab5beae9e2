package draftbench

// Polygon side-count bounds. Typed values clamp to the narrower typing
// range; the input widget itself enforces the wider one.
const (
	polygonSidesMin       = 3
	polygonSidesMaxTyping = 24
	polygonSidesMaxWidget = 30
)

// polygonModal is the inline numeric input opened by a qualifying click with
// the polygon tool active. While open, all other drafting input is
// suppressed. Lifecycle: opened on click, closed on confirm or cancel.
type polygonModal struct {
	open   bool
	center Vec2 // world-space polygon center
	anchor Vec2 // screen-space input anchor
	sides  int
}

// openAt opens the modal at the click's position, seeded with the last-used
// side count.
func (m *polygonModal) openAt(center, anchor Vec2, seedSides int) {
	m.open = true
	m.center = center
	m.anchor = anchor
	m.sides = clampSides(seedSides, polygonSidesMaxTyping)
}

func (m *polygonModal) close() {
	*m = polygonModal{}
}

func clampSides(n, max int) int {
	if n < polygonSidesMin {
		return polygonSidesMin
	}
	if n > max {
		return max
	}
	return n
}
