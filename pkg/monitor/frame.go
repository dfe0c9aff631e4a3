package monitor

import (
	"time"

	"github.com/irctrakz/netwatch/pkg/core"
)

// Frame is the complete payload for one terminal redraw, produced atomically
// each tick. Presenters own all formatting: byte humanization, trend glyphs,
// screen clearing and cursor control happen on their side of the boundary.
type Frame struct {
	// Time is when the frame was built.
	Time time.Time

	// Interfaces holds one entry per monitored interface, in selection
	// order.
	Interfaces []InterfaceFrame
}

// InterfaceFrame is one interface's slice of a frame.
type InterfaceFrame struct {
	// Name is the interface name.
	Name core.InterfaceName

	// SentPerSec and RecvPerSec are the most recent rates in bytes/second.
	SentPerSec float64
	RecvPerSec float64

	// Totals are the latest raw cumulative counters.
	Totals core.CumulativeTotals

	// Trend is the current classification of recent rate movement.
	Trend core.Trend

	// GraphRows is the rendered traffic grid, top row first.
	GraphRows []string

	// GraphMax is the peak rate over the rendered window, for scale
	// captions.
	GraphMax float64

	// Samples is the history length backing the graph.
	Samples int
}
