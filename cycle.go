package draftbench

import (
	"sort"
	"strconv"
	"strings"
)

// cycleState implements Ctrl-click disambiguation over overlapping entities.
// Repeated Ctrl-clicks at the same spot rotate through the candidate stack
// instead of always picking the frontmost. The state is keyed by the sorted
// candidate id list: a different candidate set, or releasing the modifier,
// starts a fresh cycle.
type cycleState struct {
	key       string   // sorted candidate ids, the cycle identity
	base      []uint32 // selection snapshot captured before cycling began
	lastAdded uint32
	index     int
}

// cycleKey derives the cycle identity from a candidate set.
func cycleKey(ids []uint32) string {
	sorted := make([]uint32, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

func (c *cycleState) reset() {
	*c = cycleState{}
}

// active reports whether a cycle is in progress.
func (c *cycleState) active() bool { return c.key != "" }

// step advances the cycle for a Ctrl-click over the given candidates and
// applies the resulting selection. candidates must be in the engine's
// candidate order (frontmost first). With Shift also held, the chosen
// candidate is toggled into the selection instead of replacing the cycled
// one. Returns the id chosen this step.
func (c *cycleState) step(e Engine, candidates []uint32, shift bool) uint32 {
	key := cycleKey(candidates)
	if key != c.key {
		// New candidate set: snapshot the selection as it was before any
		// cycling and start from the front.
		c.key = key
		c.base = append([]uint32(nil), e.SelectedIDs()...)
		c.lastAdded = 0
		c.index = 0
	}
	chosen := candidates[c.index%len(candidates)]
	c.index++

	if shift {
		e.SetSelection([]uint32{chosen}, SelectToggle)
	} else {
		// Replace with the pre-cycle selection plus the chosen candidate.
		// The previously cycled-in id drops out because it is not part of
		// the base snapshot.
		sel := c.base
		if !containsID(sel, chosen) {
			sel = append(append([]uint32(nil), c.base...), chosen)
		}
		e.SetSelection(sel, SelectReplace)
	}
	c.lastAdded = chosen
	return chosen
}

func containsID(ids []uint32, id uint32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
