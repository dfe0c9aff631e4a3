package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/irctrakz/netwatch/pkg/core"
)

// ParseSelection parses the startup interface selection against count
// discovered interfaces. "0" selects every interface; a comma-separated list
// of 1-based indices selects a subset. Duplicate indices collapse to one.
// Anything else is rejected with a core.SelectionError — invalid indices are
// never silently dropped.
func ParseSelection(input string, count int) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &core.SelectionError{Input: input, Reason: "empty selection"}
	}
	if trimmed == "0" {
		all := make([]int, count)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	parts := strings.Split(trimmed, ",")
	seen := make(map[int]bool, len(parts))
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		idx, err := strconv.Atoi(token)
		if err != nil {
			return nil, &core.SelectionError{Input: input, Reason: fmt.Sprintf("%q is not a number", token)}
		}
		if idx < 1 || idx > count {
			return nil, &core.SelectionError{Input: input, Reason: fmt.Sprintf("index %d out of range 1..%d", idx, count)}
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out, nil
}

// Pick resolves 1-based indices, as returned by ParseSelection, to interface
// names.
func Pick(names []core.InterfaceName, indices []int) []core.InterfaceName {
	out := make([]core.InterfaceName, 0, len(indices))
	for _, idx := range indices {
		out = append(out, names[idx-1])
	}
	return out
}
