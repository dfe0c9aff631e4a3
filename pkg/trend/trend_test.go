package trend

import (
	"testing"

	"github.com/irctrakz/netwatch/pkg/core"
)

func rates(values ...float64) []core.RateSample {
	out := make([]core.RateSample, len(values))
	for i, v := range values {
		// Split evenly across directions; the classifier uses the
		// combined rate.
		out[i] = core.RateSample{SentPerSec: v / 2, RecvPerSec: v / 2}
	}
	return out
}

// TestShortHistoryStable checks that fewer than two samples always classify
// as stable.
func TestShortHistoryStable(t *testing.T) {
	c := New(DefaultWindow, DefaultTolerance)
	if got := c.Classify(nil); got != core.TrendStable {
		t.Errorf("Expected stable for empty history, got %v", got)
	}
	if got := c.Classify(rates(1000)); got != core.TrendStable {
		t.Errorf("Expected stable for single sample, got %v", got)
	}
}

func TestRising(t *testing.T) {
	c := New(5, 0.10)
	if got := c.Classify(rates(100, 100, 1000, 1000, 1000)); got != core.TrendRising {
		t.Errorf("Expected rising, got %v", got)
	}
}

func TestFalling(t *testing.T) {
	c := New(5, 0.10)
	if got := c.Classify(rates(1000, 1000, 1000, 100, 100)); got != core.TrendFalling {
		t.Errorf("Expected falling, got %v", got)
	}
}

// TestStableWithinBand checks that a change inside the tolerance band does not
// flip the classification.
func TestStableWithinBand(t *testing.T) {
	c := New(5, 0.10)
	// First half averages 1000, second half 1050: +5%, inside ±10%.
	if got := c.Classify(rates(1000, 1000, 1000, 1000, 1100)); got != core.TrendStable {
		t.Errorf("Expected stable inside the band, got %v", got)
	}
	if got := c.Classify(rates(1000, 1000, 1000, 1000, 1000)); got != core.TrendStable {
		t.Errorf("Expected stable for flat traffic, got %v", got)
	}
}

// TestZeroBaseline checks the silent-then-active and fully silent cases.
func TestZeroBaseline(t *testing.T) {
	c := New(4, 0.10)
	if got := c.Classify(rates(0, 0, 0, 0)); got != core.TrendStable {
		t.Errorf("Expected stable for silence, got %v", got)
	}
	if got := c.Classify(rates(0, 0, 500, 500)); got != core.TrendRising {
		t.Errorf("Expected rising after silence, got %v", got)
	}
}

// TestWindowRestriction checks that history before the window has no effect.
func TestWindowRestriction(t *testing.T) {
	c := New(5, 0.10)
	old := rates(99999, 88888, 12345)
	flat := rates(500, 500, 500, 500, 500)
	if got := c.Classify(append(old, flat...)); got != core.TrendStable {
		t.Errorf("Expected stable: samples before the window must be ignored, got %v", got)
	}
}

// TestDeterministic checks that classification is pure: the same input always
// yields the same trend.
func TestDeterministic(t *testing.T) {
	c := New(5, 0.10)
	input := rates(10, 400, 30, 800, 120, 90, 700)
	first := c.Classify(input)
	for i := 0; i < 10; i++ {
		if got := c.Classify(input); got != first {
			t.Fatalf("Classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestNewFallbacks(t *testing.T) {
	c := New(0, -1)
	if c.window != DefaultWindow {
		t.Errorf("Expected window fallback %d, got %d", DefaultWindow, c.window)
	}
	if c.tolerance != DefaultTolerance {
		t.Errorf("Expected tolerance fallback %v, got %v", DefaultTolerance, c.tolerance)
	}
}
