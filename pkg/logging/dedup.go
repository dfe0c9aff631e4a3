package logging

import (
	"fmt"
	"sync"
	"time"
)

// DefaultDedupWindow is how long a repeated identical message stays
// suppressed.
const DefaultDedupWindow = 30 * time.Second

// Deduper suppresses repeats of an identical message within a window, so a
// collaborator that fails every tick logs once per window instead of flooding.
type Deduper struct {
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	seen map[string]time.Time
}

// NewDeduper returns a deduper with the given suppression window. A
// non-positive window falls back to DefaultDedupWindow.
func NewDeduper(window time.Duration) *Deduper {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &Deduper{
		window: window,
		now:    time.Now,
		seen:   make(map[string]time.Time),
	}
}

// Errorf logs the formatted message unless the identical message was already
// logged within the window.
func (d *Deduper) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if d.record(msg) {
		Errorf("%s", msg)
	}
}

// Warnf is Errorf at warning level.
func (d *Deduper) Warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if d.record(msg) {
		Warnf("%s", msg)
	}
}

// record reports whether msg should be logged now and marks it as seen.
func (d *Deduper) record(msg string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if last, ok := d.seen[msg]; ok && now.Sub(last) < d.window {
		return false
	}
	// Expire old entries so the map stays bounded by distinct recent
	// messages.
	for k, t := range d.seen {
		if now.Sub(t) >= d.window {
			delete(d.seen, k)
		}
	}
	d.seen[msg] = now
	return true
}
