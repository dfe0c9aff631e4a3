// Package monitor ties the sampling loop together: it pulls counters from the
// source, advances the per-interface state and hands finished frames to a
// presenter.
package monitor

import (
	"context"
	"time"

	"github.com/irctrakz/netwatch/pkg/core"
	"github.com/irctrakz/netwatch/pkg/graph"
	"github.com/irctrakz/netwatch/pkg/logging"
)

// Presenter consumes finished frames. Implementations own the terminal; Close
// must restore it and is called on every exit path, including interrupts.
type Presenter interface {
	// Present draws one frame.
	Present(*Frame) error

	// Close releases any held terminal state.
	Close()
}

// Options configures the dashboard tick loop.
type Options struct {
	// Interval is the tick cadence. Defaults to one second.
	Interval time.Duration

	// SampleTimeout bounds a single counter-source call. Defaults to half
	// the interval.
	SampleTimeout time.Duration
}

// Dashboard drives the monitor: each tick pulls a sample, advances the state,
// builds a frame and presents it. Per-tick failures are logged (deduplicated)
// and contained at the tick boundary; they never abort the loop.
type Dashboard struct {
	source    core.CounterSource
	state     *State
	renderer  *graph.Renderer
	presenter Presenter
	opts      Options
	errlog    *logging.Deduper
}

// New returns a dashboard over the given collaborators.
func New(source core.CounterSource, state *State, renderer *graph.Renderer, presenter Presenter, opts Options) *Dashboard {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.SampleTimeout <= 0 {
		opts.SampleTimeout = opts.Interval / 2
	}
	return &Dashboard{
		source:    source,
		state:     state,
		renderer:  renderer,
		presenter: presenter,
		opts:      opts,
		errlog:    logging.NewDeduper(logging.DefaultDedupWindow),
	}
}

// Run executes the tick loop until ctx is cancelled. Each tick completes
// before the next begins and cancellation is honored between ticks, never
// mid-render, so the last frame is always fully presented. Run returns nil on
// a clean cancellation.
func (d *Dashboard) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	// First tick immediately so the display isn't blank for a full
	// interval.
	d.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick runs one complete sample-update-render iteration. When the source
// fails, the previous state is re-rendered: stale-but-valid data beats a
// crash.
func (d *Dashboard) Tick(ctx context.Context) {
	sctx, cancel := context.WithTimeout(ctx, d.opts.SampleTimeout)
	counters, err := d.source.Sample(sctx, d.state.Selected())
	cancel()
	if err != nil {
		d.errlog.Errorf("sample failed: %v", err)
	} else {
		d.state.Advance(counters)
	}

	if err := d.presenter.Present(d.BuildFrame(time.Now())); err != nil {
		d.errlog.Errorf("present failed: %v", err)
	}
}

// BuildFrame materializes the current state into a frame payload.
func (d *Dashboard) BuildFrame(now time.Time) *Frame {
	f := &Frame{Time: now}
	for _, name := range d.state.Selected() {
		samples := d.state.History(name)
		iff := InterfaceFrame{
			Name:    name,
			Trend:   d.state.Trend(name),
			Samples: len(samples),
		}
		if last, ok := d.state.LastSample(name); ok {
			iff.SentPerSec = last.SentPerSec
			iff.RecvPerSec = last.RecvPerSec
		}
		if totals, ok := d.state.Totals(name); ok {
			iff.Totals = totals
		}
		iff.GraphRows = d.renderer.Render(samples)
		iff.GraphMax = d.renderer.Max(samples)
		f.Interfaces = append(f.Interfaces, iff)
	}
	return f
}
