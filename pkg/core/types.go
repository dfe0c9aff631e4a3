// Package core defines the shared types, collaborator interfaces and error
// taxonomy of the network monitor.
package core

import "time"

// InterfaceName identifies a network interface. It is the key into every
// per-interface map in the monitor.
type InterfaceName string

// CounterSnapshot is one reading of an interface's cumulative byte counters.
// Counters are monotonically non-decreasing while the interface is up, but may
// drop to a smaller value after an interface restart or a counter wraparound.
type CounterSnapshot struct {
	// Interface is the interface the counters belong to.
	Interface InterfaceName

	// BytesSent is the cumulative number of bytes sent.
	BytesSent uint64

	// BytesRecv is the cumulative number of bytes received.
	BytesRecv uint64

	// Timestamp is when the counters were read.
	Timestamp time.Time
}

// RateSample is a derived per-second throughput measurement. Rates are always
// non-negative.
type RateSample struct {
	// SentPerSec is the outbound rate in bytes per second.
	SentPerSec float64

	// RecvPerSec is the inbound rate in bytes per second.
	RecvPerSec float64

	// Timestamp is when the sample was taken.
	Timestamp time.Time
}

// Combined returns the total throughput of the sample in both directions.
func (s RateSample) Combined() float64 {
	return s.SentPerSec + s.RecvPerSec
}

// CumulativeTotals holds the latest raw counters for an interface, exposed for
// display alongside the derived rates.
type CumulativeTotals struct {
	// TotalSent is the cumulative number of bytes sent.
	TotalSent uint64

	// TotalRecv is the cumulative number of bytes received.
	TotalRecv uint64
}

// Trend is a coarse three-way classification of recent rate movement.
type Trend int

const (
	// TrendStable means recent traffic is flat within the tolerance band.
	TrendStable Trend = iota

	// TrendRising means recent traffic is increasing beyond the band.
	TrendRising

	// TrendFalling means recent traffic is decreasing beyond the band.
	TrendFalling
)

// String returns the lowercase name of the trend.
func (t Trend) String() string {
	switch t {
	case TrendRising:
		return "rising"
	case TrendFalling:
		return "falling"
	default:
		return "stable"
	}
}
