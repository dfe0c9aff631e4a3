package source

import (
	"context"

	"github.com/irctrakz/netwatch/pkg/core"
)

// MockSource is a scriptable implementation of core.CounterSource for testing
// that doesn't touch the operating system. Each Sample call consumes the next
// entry of Ticks; the last entry repeats once the script runs out. Setting Err
// makes every call fail.
type MockSource struct {
	Names []core.InterfaceName
	Ticks []map[core.InterfaceName]core.CounterSnapshot
	Err   error

	calls int
}

// Interfaces returns the scripted interface names.
func (m *MockSource) Interfaces(ctx context.Context) ([]core.InterfaceName, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]core.InterfaceName(nil), m.Names...), nil
}

// Sample returns the next scripted tick, filtered to the selected interfaces.
func (m *MockSource) Sample(ctx context.Context, selected []core.InterfaceName) (map[core.InterfaceName]core.CounterSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Ticks) == 0 {
		return map[core.InterfaceName]core.CounterSnapshot{}, nil
	}
	i := m.calls
	if i >= len(m.Ticks) {
		i = len(m.Ticks) - 1
	}
	m.calls++

	tick := m.Ticks[i]
	out := make(map[core.InterfaceName]core.CounterSnapshot, len(selected))
	for _, name := range selected {
		if snap, ok := tick[name]; ok {
			out[name] = snap
		}
	}
	return out, nil
}

// Calls returns how many times Sample has been invoked.
func (m *MockSource) Calls() int {
	return m.calls
}
