package ui

import (
	"fmt"
	"strings"

	"github.com/irctrakz/netwatch/pkg/monitor"
)

// RenderText lays out a frame as plain text. Every presenter shares this
// layout; they differ only in how they put it on the screen.
func RenderText(f *monitor.Frame) string {
	var b strings.Builder
	rule := strings.Repeat("=", 78)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "netwatch - %s\n", f.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Monitoring %d interface(s) - press q or Ctrl+C to stop\n", len(f.Interfaces))
	b.WriteString(rule + "\n")

	for _, iff := range f.Interfaces {
		fmt.Fprintf(&b, "\nInterface: %s  %s %s\n", iff.Name, TrendSymbol(iff.Trend), iff.Trend)
		if iff.Samples == 0 {
			b.WriteString("  No data yet...\n")
			continue
		}
		fmt.Fprintf(&b, "  Rate:   up %-14s down %s\n",
			FormatRate(iff.SentPerSec), FormatRate(iff.RecvPerSec))
		fmt.Fprintf(&b, "  Total:  sent %-12s recv %s\n",
			FormatBytes(float64(iff.Totals.TotalSent)), FormatBytes(float64(iff.Totals.TotalRecv)))
		fmt.Fprintf(&b, "  Traffic (last %d second(s), sent=█ recv=░ both=▓):\n", iff.Samples)
		writeBoxed(&b, iff.GraphRows)
		if iff.GraphMax > 0 {
			fmt.Fprintf(&b, "  Max: %s\n", FormatRate(iff.GraphMax))
		} else {
			b.WriteString("  No activity\n")
		}
	}
	return b.String()
}

// writeBoxed draws the grid inside a box border, like the classic watch-style
// monitors.
func writeBoxed(b *strings.Builder, rows []string) {
	if len(rows) == 0 {
		return
	}
	width := len([]rune(rows[0]))
	bar := strings.Repeat("─", width)
	fmt.Fprintf(b, "  ┌%s┐\n", bar)
	for _, row := range rows {
		fmt.Fprintf(b, "  │%s│\n", row)
	}
	fmt.Fprintf(b, "  └%s┘\n", bar)
}
