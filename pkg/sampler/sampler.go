// Package sampler derives per-second throughput from successive counter
// snapshots.
package sampler

import "github.com/irctrakz/netwatch/pkg/core"

// ComputeRate derives a rate sample from two successive snapshots of the same
// interface. It returns core.ErrInvalidInterval when the clock did not advance
// between the snapshots; the caller must skip the tick and keep prev as the
// baseline. A counter that dropped below its previous value (interface restart
// or wraparound) contributes a zero rate instead of a negative or wrapped-huge
// one, so a device reset never shows up as a spike.
func ComputeRate(prev, cur core.CounterSnapshot) (core.RateSample, error) {
	dt := cur.Timestamp.Sub(prev.Timestamp).Seconds()
	if dt <= 0 {
		return core.RateSample{}, core.ErrInvalidInterval
	}
	return core.RateSample{
		SentPerSec: float64(counterDelta(prev.BytesSent, cur.BytesSent)) / dt,
		RecvPerSec: float64(counterDelta(prev.BytesRecv, cur.BytesRecv)) / dt,
		Timestamp:  cur.Timestamp,
	}, nil
}

// counterDelta clamps a counter reset to zero.
func counterDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}
