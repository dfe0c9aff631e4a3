package core

import "context"

// CounterSource exposes cumulative per-interface byte counters. It is treated
// as a black box: counters may reset when an interface restarts, and a call
// may fail or hang, so callers bound it with the context.
type CounterSource interface {
	// Interfaces returns the discoverable interface names in a stable order.
	// Selection indices are 1-based positions into the returned slice.
	Interfaces(ctx context.Context) ([]InterfaceName, error)

	// Sample returns the current counters for the selected interfaces,
	// called once per tick. An interface that is down may be omitted from
	// the result.
	Sample(ctx context.Context, selected []InterfaceName) (map[InterfaceName]CounterSnapshot, error)
}
