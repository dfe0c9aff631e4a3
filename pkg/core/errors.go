package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval reports a snapshot pair whose elapsed time is not
// positive. The tick is skipped for that interface and the previous snapshot
// stays the baseline.
var ErrInvalidInterval = errors.New("elapsed time between snapshots is not positive")

// ErrCounterUnavailable reports that the counter source failed for a tick.
// The affected interfaces keep their last-known history, totals and trend.
var ErrCounterUnavailable = errors.New("counter source unavailable")

// ErrNoInterfaces reports that interface discovery returned nothing. It is
// fatal at startup.
var ErrNoInterfaces = errors.New("no network interfaces found")

// SelectionError reports an invalid interface selection. It is fatal at
// startup; selections are never silently corrected.
type SelectionError struct {
	// Input is the selection string as provided by the user.
	Input string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid interface selection %q: %s", e.Input, e.Reason)
}
