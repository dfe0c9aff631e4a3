// Package history implements the bounded rolling window of rate samples kept
// for each monitored interface.
package history

import "github.com/irctrakz/netwatch/pkg/core"

// DefaultCapacity is the number of samples retained per interface, one per
// tick: sixty seconds of history at the default cadence.
const DefaultCapacity = 60

// Buffer is a fixed-capacity FIFO ring of rate samples. Pushing into a full
// buffer evicts the single oldest entry. The zero value is not usable;
// construct with New. Buffer is not safe for concurrent use.
type Buffer struct {
	samples []core.RateSample
	head    int
	size    int
}

// New returns an empty buffer. A capacity below 1 falls back to
// DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{samples: make([]core.RateSample, capacity)}
}

// Push appends a sample, evicting the oldest one when full.
func (b *Buffer) Push(s core.RateSample) {
	if b.size == len(b.samples) {
		b.samples[b.head] = s
		b.head = (b.head + 1) % len(b.samples)
		return
	}
	b.samples[(b.head+b.size)%len(b.samples)] = s
	b.size++
}

// Len returns the number of samples currently held.
func (b *Buffer) Len() int {
	return b.size
}

// Capacity returns the fixed capacity set at construction.
func (b *Buffer) Capacity() int {
	return len(b.samples)
}

// Snapshot returns the samples in chronological order, oldest first. The
// returned slice is a copy; later pushes do not affect it.
func (b *Buffer) Snapshot() []core.RateSample {
	out := make([]core.RateSample, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.samples[(b.head+i)%len(b.samples)]
	}
	return out
}

// Last returns the most recent sample, or false when the buffer is empty.
func (b *Buffer) Last() (core.RateSample, bool) {
	if b.size == 0 {
		return core.RateSample{}, false
	}
	return b.samples[(b.head+b.size-1)%len(b.samples)], true
}
