package draftbench

import (
	"fmt"
	"math"
)

// Stroke width bounds for draft style payloads, in pixels.
const (
	minStrokeWidthPx = 1.0
	maxStrokeWidthPx = 100.0
)

// ParseHexColor parses "#rrggbb" or "#rgb" into a Color with alpha 1.
func ParseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("parse hex color %q: missing '#'", s)
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		var err error
		if r, err = hexNibble(hex[0]); err == nil {
			r *= 17
			if g, err = hexNibble(hex[1]); err == nil {
				g *= 17
				b, err = hexNibble(hex[2])
				b *= 17
			}
		}
		if err != nil {
			return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
		}
	case 6:
		for i, dst := range []*uint8{&r, &g, &b} {
			hi, err := hexNibble(hex[i*2])
			if err != nil {
				return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
			}
			lo, err := hexNibble(hex[i*2+1])
			if err != nil {
				return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
			}
			*dst = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("parse hex color %q: bad length", s)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}, nil
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("bad hex digit %q", c)
}

// BuildDraftStyle turns tool defaults into the style payload the engine
// expects when beginning a draft. A nil color means ByLayer: the flag is set
// and the RGB channels are left at zero. Unparseable hex strings degrade to
// ByLayer rather than failing the gesture.
func BuildDraftStyle(d ToolDefaults) DraftStyle {
	style := DraftStyle{
		FillEnabled:   d.FillEnabled,
		StrokeEnabled: d.StrokeEnabled,
		StrokeWidthPx: clampStrokeWidth(d.StrokeWidth),
	}
	if d.StrokeColor == nil {
		style.StrokeByLayer = true
	} else if c, err := ParseHexColor(*d.StrokeColor); err == nil {
		style.StrokeR, style.StrokeG, style.StrokeB = c.R, c.G, c.B
	} else {
		style.StrokeByLayer = true
	}
	if d.FillColor == nil {
		style.FillByLayer = true
	} else if c, err := ParseHexColor(*d.FillColor); err == nil {
		style.FillR, style.FillG, style.FillB = c.R, c.G, c.B
	} else {
		style.FillByLayer = true
	}
	return style
}

func clampStrokeWidth(w float64) float64 {
	if w < minStrokeWidthPx {
		return minStrokeWidthPx
	}
	if w > maxStrokeWidthPx {
		return maxStrokeWidthPx
	}
	return w
}

// ArrowHeadSize derives the arrowhead size from the stroke width. The head
// stays proportional to the stroke and never collapses below a usable
// minimum.
func ArrowHeadSize(strokeWidthPx float64) float64 {
	return math.Round(math.Max(16, strokeWidthPx*10) * 1.1)
}
