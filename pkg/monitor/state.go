package monitor

import (
	"github.com/irctrakz/netwatch/pkg/core"
	"github.com/irctrakz/netwatch/pkg/history"
	"github.com/irctrakz/netwatch/pkg/sampler"
	"github.com/irctrakz/netwatch/pkg/trend"
)

// State owns everything the monitor knows about the selected interfaces: the
// last raw snapshot, the rolling rate history, cumulative totals and the
// current trend, keyed by interface name. It is an explicit object passed
// into each call rather than package state, and it is not safe for concurrent
// use: the tick loop is its only writer.
type State struct {
	selected   []core.InterfaceName
	capacity   int
	classifier *trend.Classifier

	last    map[core.InterfaceName]core.CounterSnapshot
	buffers map[core.InterfaceName]*history.Buffer
	totals  map[core.InterfaceName]core.CumulativeTotals
	trends  map[core.InterfaceName]core.Trend
}

// NewState returns a state tracking the given interfaces in order. capacity is
// the per-interface history window; a nil classifier falls back to the
// defaults.
func NewState(selected []core.InterfaceName, capacity int, classifier *trend.Classifier) *State {
	if classifier == nil {
		classifier = trend.New(trend.DefaultWindow, trend.DefaultTolerance)
	}
	return &State{
		selected:   append([]core.InterfaceName(nil), selected...),
		capacity:   capacity,
		classifier: classifier,
		last:       make(map[core.InterfaceName]core.CounterSnapshot),
		buffers:    make(map[core.InterfaceName]*history.Buffer),
		totals:     make(map[core.InterfaceName]core.CumulativeTotals),
		trends:     make(map[core.InterfaceName]core.Trend),
	}
}

// Selected returns the monitored interface names in selection order.
func (s *State) Selected() []core.InterfaceName {
	return append([]core.InterfaceName(nil), s.selected...)
}

// update is one interface's fully computed result for a tick, staged so the
// whole tick commits together.
type update struct {
	name   core.InterfaceName
	snap   core.CounterSnapshot
	sample core.RateSample
}

// Advance applies one tick's counters. Every update is computed first and then
// committed in one pass, so a frame never sees fresh totals next to a stale
// trend. Interfaces missing from counters (down, or omitted by the source)
// keep their previous state untouched. A snapshot whose clock did not advance
// is skipped and the old baseline kept.
//
// The first observation of an interface emits a zero-valued sample and stores
// the snapshot as baseline; no rate is synthesized from absolute totals.
func (s *State) Advance(counters map[core.InterfaceName]core.CounterSnapshot) {
	updates := make([]update, 0, len(s.selected))
	for _, name := range s.selected {
		snap, ok := counters[name]
		if !ok {
			continue
		}
		prev, seen := s.last[name]
		if !seen {
			updates = append(updates, update{
				name:   name,
				snap:   snap,
				sample: core.RateSample{Timestamp: snap.Timestamp},
			})
			continue
		}
		rate, err := sampler.ComputeRate(prev, snap)
		if err != nil {
			// Non-advancing clock: skip the tick, keep prev as baseline.
			continue
		}
		updates = append(updates, update{name: name, snap: snap, sample: rate})
	}

	for _, u := range updates {
		buf, ok := s.buffers[u.name]
		if !ok {
			buf = history.New(s.capacity)
			s.buffers[u.name] = buf
		}
		buf.Push(u.sample)
		s.last[u.name] = u.snap
		s.totals[u.name] = core.CumulativeTotals{
			TotalSent: u.snap.BytesSent,
			TotalRecv: u.snap.BytesRecv,
		}
		s.trends[u.name] = s.classifier.Classify(buf.Snapshot())
	}
}

// History returns a chronological copy of the rate history for name, or nil if
// the interface has never been observed.
func (s *State) History(name core.InterfaceName) []core.RateSample {
	buf, ok := s.buffers[name]
	if !ok {
		return nil
	}
	return buf.Snapshot()
}

// LastSample returns the most recent rate sample for name.
func (s *State) LastSample(name core.InterfaceName) (core.RateSample, bool) {
	buf, ok := s.buffers[name]
	if !ok {
		return core.RateSample{}, false
	}
	return buf.Last()
}

// Totals returns the latest cumulative totals for name.
func (s *State) Totals(name core.InterfaceName) (core.CumulativeTotals, bool) {
	t, ok := s.totals[name]
	return t, ok
}

// Trend returns the current trend for name. An unobserved interface is stable.
func (s *State) Trend(name core.InterfaceName) core.Trend {
	return s.trends[name]
}
