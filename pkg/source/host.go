// Package source provides counter sources backed by the host's per-interface
// network statistics, plus a scriptable mock for tests.
package source

import (
	"context"
	"fmt"
	"sort"
	"time"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/irctrakz/netwatch/pkg/core"
)

// HostSource reads cumulative per-NIC byte counters from the operating system
// via gopsutil. It implements core.CounterSource.
type HostSource struct{}

// NewHost returns a counter source for the local host.
func NewHost() *HostSource {
	return &HostSource{}
}

// Interfaces returns the discoverable interface names, sorted so selection
// indices stay stable across calls.
func (s *HostSource) Interfaces(ctx context.Context) ([]core.InterfaceName, error) {
	stats, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}
	names := make([]core.InterfaceName, 0, len(stats))
	for _, st := range stats {
		names = append(names, core.InterfaceName(st.Name))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

// Sample returns current counters for the selected interfaces. Interfaces that
// are down or no longer present are omitted from the result.
func (s *HostSource) Sample(ctx context.Context, selected []core.InterfaceName) (map[core.InterfaceName]core.CounterSnapshot, error) {
	stats, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrCounterUnavailable, err)
	}
	now := time.Now()
	want := make(map[core.InterfaceName]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}
	out := make(map[core.InterfaceName]core.CounterSnapshot, len(selected))
	for _, st := range stats {
		name := core.InterfaceName(st.Name)
		if !want[name] {
			continue
		}
		out[name] = core.CounterSnapshot{
			Interface: name,
			BytesSent: st.BytesSent,
			BytesRecv: st.BytesRecv,
			Timestamp: now,
		}
	}
	return out, nil
}
