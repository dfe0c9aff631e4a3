// Package ui renders monitor frames to the terminal. It owns everything the
// core does not: byte humanization, trend glyphs, screen clearing and the
// full-screen widget layer.
package ui

import (
	"fmt"

	"github.com/irctrakz/netwatch/pkg/core"
)

// FormatBytes converts a byte count to a human-readable string with 1024-step
// units.
func FormatBytes(n float64) string {
	const step = 1024.0
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB"} {
		if n < step {
			return fmt.Sprintf("%.2f %s", n, unit)
		}
		n /= step
	}
	return fmt.Sprintf("%.2f YB", n)
}

// FormatRate is FormatBytes with a per-second suffix.
func FormatRate(n float64) string {
	return FormatBytes(n) + "/s"
}

// TrendSymbol maps a trend onto its display glyph. The classification itself
// is glyph-agnostic; only the presentation layer knows about arrows.
func TrendSymbol(t core.Trend) string {
	switch t {
	case core.TrendRising:
		return "↑"
	case core.TrendFalling:
		return "↓"
	default:
		return "→"
	}
}
